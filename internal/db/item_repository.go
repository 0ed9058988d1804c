package db

import (
	"github.com/terraincognita07/carty/internal/models"
	"gorm.io/gorm"
)

type ItemRepository struct {
	database *gorm.DB
}

func NewItemRepository(database *gorm.DB) *ItemRepository {
	return &ItemRepository{database: database}
}

func (repo *ItemRepository) Create(item *models.Item) error {
	return repo.database.Create(item).Error
}

// FindBySlugForUser resolves an item by slug only when its parent list belongs
// to the given user, so a foreign item is indistinguishable from a missing one.
func (repo *ItemRepository) FindBySlugForUser(userID uint, slug string) (models.Item, error) {
	var item models.Item
	if err := repo.database.
		Joins("JOIN shopping_lists ON shopping_lists.id = items.list_id").
		Where("items.slug = ? AND shopping_lists.user_id = ?", slug, userID).
		First(&item).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (repo *ItemRepository) Save(item *models.Item) error {
	return repo.database.Save(item).Error
}

func (repo *ItemRepository) Delete(item *models.Item) error {
	return repo.database.Delete(item).Error
}

func (repo *ItemRepository) SlugExists(slug string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Item{}).
		Where("slug = ?", slug).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
