package db

import (
	"github.com/terraincognita07/carty/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListRepository struct {
	database *gorm.DB
}

func NewListRepository(database *gorm.DB) *ListRepository {
	return &ListRepository{database: database}
}

// itemOrder is the default item ordering: pending items first, newest first
// within each group.
func itemOrder(database *gorm.DB) *gorm.DB {
	return database.Order("is_purchased ASC, id DESC")
}

func (repo *ListRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ShoppingList{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ListRepository) ListPageByUser(userID uint, offset int, limit int) ([]models.ShoppingList, error) {
	lists := make([]models.ShoppingList, 0)
	if err := repo.database.
		Preload("Items", itemOrder).
		Where("user_id = ?", userID).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (repo *ListRepository) ListWithItemsByUser(userID uint) ([]models.ShoppingList, error) {
	lists := make([]models.ShoppingList, 0)
	if err := repo.database.
		Preload("Items", itemOrder).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (repo *ListRepository) FindBySlugForUser(userID uint, slug string) (models.ShoppingList, error) {
	var list models.ShoppingList
	if err := repo.database.
		Preload("Items", itemOrder).
		Where("slug = ? AND user_id = ?", slug, userID).
		First(&list).Error; err != nil {
		return models.ShoppingList{}, err
	}
	return list, nil
}

func (repo *ListRepository) Create(list *models.ShoppingList) error {
	return repo.database.Create(list).Error
}

// Save persists list fields only; the item collection is managed through its
// own endpoints.
func (repo *ListRepository) Save(list *models.ShoppingList) error {
	return repo.database.Omit(clause.Associations).Save(list).Error
}

// Delete removes the list together with its items.
func (repo *ListRepository) Delete(list *models.ShoppingList) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", list.ID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(list).Error
	})
}

func (repo *ListRepository) SlugExists(slug string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.ShoppingList{}).
		Where("slug = ?", slug).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
