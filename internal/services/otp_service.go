package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/carty/internal/models"
	"github.com/terraincognita07/carty/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type OTPRepository interface {
	FindByEmail(email string) (models.OTPRequest, error)
	Upsert(email string, codeHash string, issuedAt time.Time) (bool, error)
}

// NormalizeEmail maps addresses to a canonical lookup key so case and
// whitespace variants cannot create duplicate accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type OTPService struct {
	otps     OTPRepository
	generate func() (string, error)
	now      func() time.Time
	ttl      time.Duration
}

func NewOTPService(otps OTPRepository, ttl time.Duration) *OTPService {
	return &OTPService{
		otps:     otps,
		generate: security.GenerateOTPCode,
		now:      time.Now,
		ttl:      ttl,
	}
}

// Request issues a fresh code for the email, creating the challenge row on
// first contact and refreshing it afterwards. The plaintext code is returned
// for delivery only; the store keeps a bcrypt hash.
func (service *OTPService) Request(email string) (string, bool, error) {
	code, err := service.generate()
	if err != nil {
		return "", false, err
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", false, err
	}

	created, err := service.otps.Upsert(NormalizeEmail(email), string(codeHash), service.now())
	if err != nil {
		return "", false, err
	}
	return code, created, nil
}

// IsValid reports whether the code matches the outstanding challenge and was
// issued strictly within the validity window. A missing row, an expired code
// and a wrong code are indistinguishable.
func (service *OTPService) IsValid(email string, code string) (bool, error) {
	request, err := service.otps.FindByEmail(NormalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	now := service.now()
	if !request.CreatedAt.After(now.Add(-service.ttl)) {
		return false, nil
	}
	if !request.CreatedAt.Before(now) {
		return false, nil
	}

	return bcrypt.CompareHashAndPassword([]byte(request.CodeHash), []byte(code)) == nil, nil
}

// Refresh replaces the outstanding code so the previous one can never be
// reused. Invoked on every re-request and right after a successful verify.
func (service *OTPService) Refresh(email string) error {
	_, _, err := service.Request(email)
	return err
}
