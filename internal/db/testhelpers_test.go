package db

import (
	"path/filepath"
	"testing"

	"github.com/terraincognita07/carty/internal/models"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "carty-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{Email: email}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create test user %s: %v", email, err)
	}
	return user
}
