package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/terraincognita07/carty/internal/models"
	"github.com/terraincognita07/carty/internal/services"
	"gorm.io/gorm"
)

type createItemInput struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	IsPurchased bool            `json:"is_purchased"`
}

type updateItemInput struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	IsPurchased *bool            `json:"is_purchased"`
}

func (handler *Handler) CreateItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	list, err := handler.repositories.Lists.FindBySlugForUser(user.ID, c.Params("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}

	var input createItemInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, fieldErrors{"body": "invalid request body"})
	}

	errs := fieldErrors{}
	validateNameField(input.Name, errs)
	validateQuantityField(input.Quantity, errs)
	validatePriceField(input.Price, errs)
	if len(errs) > 0 {
		return badRequest(c, errs)
	}

	name := strings.TrimSpace(input.Name)
	itemSlug, err := services.EnsureSlug(handler.repositories.Items, name, "")
	if err != nil {
		return err
	}

	item := models.Item{
		Name:        name,
		Slug:        itemSlug,
		Quantity:    input.Quantity,
		Price:       input.Price,
		IsPurchased: input.IsPurchased,
		ListID:      list.ID,
	}
	if err := handler.repositories.Items.Create(&item); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newItemResponse(item))
}

// UpdateItem resolves the item through its parent list's owner, so one user's
// item slugs are invisible to another.
func (handler *Handler) UpdateItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	item, err := handler.repositories.Items.FindBySlugForUser(user.ID, c.Params("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}

	var input updateItemInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, fieldErrors{"body": "invalid request body"})
	}

	errs := fieldErrors{}
	if input.Name != nil {
		validateNameField(*input.Name, errs)
	}
	if input.Quantity != nil {
		validateQuantityField(*input.Quantity, errs)
	}
	if input.Price != nil {
		validatePriceField(*input.Price, errs)
	}
	if len(errs) > 0 {
		return badRequest(c, errs)
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
		updatedSlug, err := services.EnsureSlug(handler.repositories.Items, item.Name, item.Slug)
		if err != nil {
			return err
		}
		item.Slug = updatedSlug
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.IsPurchased != nil {
		item.IsPurchased = *input.IsPurchased
	}

	if err := handler.repositories.Items.Save(&item); err != nil {
		return err
	}

	return c.JSON(newItemResponse(item))
}

func (handler *Handler) DeleteItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	item, err := handler.repositories.Items.FindBySlugForUser(user.ID, c.Params("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}

	if err := handler.repositories.Items.Delete(&item); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
