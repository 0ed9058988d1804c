package db

import (
	"errors"

	"github.com/terraincognita07/carty/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetOrCreateByEmail reports whether the user was created. A concurrent
// create for the same email is absorbed by the unique index: the conflicting
// insert is a no-op and the existing row is re-read.
func (repo *UserRepository) GetOrCreateByEmail(email string) (models.User, bool, error) {
	var user models.User
	err := repo.database.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, err
	}

	user = models.User{Email: email}
	result := repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		existing, findErr := repo.FindByEmail(email)
		return existing, false, findErr
	}
	return user, true, nil
}
