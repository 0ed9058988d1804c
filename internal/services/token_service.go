package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	tokenPurposeAccess  = "access"
	tokenPurposeRefresh = "refresh"
)

type TokenClaims struct {
	UserID  uint   `json:"uid"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Refresh string
	Access  string
}

// TokenService issues and validates the HS256 session token pair.
type TokenService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(secret string, accessTTL time.Duration, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secretKey:  []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (service *TokenService) IssuePair(userID uint) (TokenPair, error) {
	refresh, err := service.sign(userID, tokenPurposeRefresh, service.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	access, err := service.sign(userID, tokenPurposeAccess, service.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Refresh: refresh, Access: access}, nil
}

// RefreshPair exchanges a valid refresh token for a fresh pair.
func (service *TokenService) RefreshPair(refreshToken string) (TokenPair, error) {
	claims, err := service.parse(refreshToken, tokenPurposeRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return service.IssuePair(claims.UserID)
}

func (service *TokenService) ParseAccess(token string) (*TokenClaims, error) {
	return service.parse(token, tokenPurposeAccess)
}

func (service *TokenService) sign(userID uint, purpose string, ttl time.Duration) (string, error) {
	now := service.now()
	claims := TokenClaims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(service.secretKey)
}

func (service *TokenService) parse(rawToken string, purpose string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return service.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(service.now()) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
