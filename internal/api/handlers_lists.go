package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/carty/internal/models"
	"github.com/terraincognita07/carty/internal/services"
	"gorm.io/gorm"
)

type createListInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateListInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (handler *Handler) GetLists(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	params := handler.pageParams(c)
	total, err := handler.repositories.Lists.CountByUser(user.ID)
	if err != nil {
		return err
	}

	lists, err := handler.repositories.Lists.ListPageByUser(user.ID, (params.Page-1)*params.PageSize, params.PageSize)
	if err != nil {
		return err
	}

	results := make([]listResponse, 0, len(lists))
	for _, list := range lists {
		results = append(results, newListResponse(list))
	}

	next, previous := pageLinks(c, params, total)
	return c.JSON(fiber.Map{
		"links":      fiber.Map{"next": next, "previous": previous},
		"list_count": total,
		"results":    results,
	})
}

func (handler *Handler) CreateList(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var input createListInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, fieldErrors{"body": "invalid request body"})
	}

	errs := fieldErrors{}
	validateNameField(input.Name, errs)
	if len(errs) > 0 {
		return badRequest(c, errs)
	}

	name := strings.TrimSpace(input.Name)
	listSlug, err := services.EnsureSlug(handler.repositories.Lists, name, "")
	if err != nil {
		return err
	}

	list := models.ShoppingList{
		Name:        name,
		Slug:        listSlug,
		Description: input.Description,
		UserID:      user.ID,
	}
	if err := handler.repositories.Lists.Create(&list); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newListResponse(list))
}

func (handler *Handler) GetList(c *fiber.Ctx) error {
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

	return c.JSON(newListResponse(list))
}

func (handler *Handler) UpdateList(c *fiber.Ctx) error {
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

	var input updateListInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, fieldErrors{"body": "invalid request body"})
	}

	errs := fieldErrors{}
	if input.Name != nil {
		validateNameField(*input.Name, errs)
	}
	if len(errs) > 0 {
		return badRequest(c, errs)
	}

	if input.Name != nil {
		list.Name = strings.TrimSpace(*input.Name)
		updatedSlug, err := services.EnsureSlug(handler.repositories.Lists, list.Name, list.Slug)
		if err != nil {
			return err
		}
		list.Slug = updatedSlug
	}
	if input.Description != nil {
		list.Description = *input.Description
	}

	if err := handler.repositories.Lists.Save(&list); err != nil {
		return err
	}

	return c.JSON(newListResponse(list))
}

func (handler *Handler) DeleteList(c *fiber.Ctx) error {
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

	if err := handler.repositories.Lists.Delete(&list); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
