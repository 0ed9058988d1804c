package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/carty/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OTPRepository struct {
	database *gorm.DB
}

func NewOTPRepository(database *gorm.DB) *OTPRepository {
	return &OTPRepository{database: database}
}

func (repo *OTPRepository) FindByEmail(email string) (models.OTPRequest, error) {
	var request models.OTPRequest
	if err := repo.database.Where("email = ?", email).First(&request).Error; err != nil {
		return models.OTPRequest{}, err
	}
	return request, nil
}

// Upsert writes the current challenge for an email, reporting whether a new
// row was created. The ON CONFLICT clause makes the refresh atomic, so two
// concurrent requests for the same email can never produce two rows.
func (repo *OTPRepository) Upsert(email string, codeHash string, issuedAt time.Time) (bool, error) {
	created := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.OTPRequest
		findErr := tx.Where("email = ?", email).First(&existing).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			created = true
		} else if findErr != nil {
			return findErr
		}

		request := models.OTPRequest{Email: email, CodeHash: codeHash, CreatedAt: issuedAt}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(map[string]any{
				"code_hash":  codeHash,
				"created_at": issuedAt,
			}),
		}).Create(&request).Error
	})
	return created, err
}
