package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type pageParams struct {
	Page     int
	PageSize int
}

func (handler *Handler) pageParams(c *fiber.Ctx) pageParams {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("page_size", handler.cfg.DefaultPageSize)
	if pageSize < 1 {
		pageSize = handler.cfg.DefaultPageSize
	}
	if pageSize > handler.cfg.MaxPageSize {
		pageSize = handler.cfg.MaxPageSize
	}

	return pageParams{Page: page, PageSize: pageSize}
}

// pageLinks builds absolute next/previous URLs; either is nil at the
// respective end of the collection.
func pageLinks(c *fiber.Ctx, params pageParams, total int64) (next *string, previous *string) {
	buildLink := func(page int) *string {
		link := fmt.Sprintf("%s%s?page=%d&page_size=%d", c.BaseURL(), c.Path(), page, params.PageSize)
		return &link
	}

	if int64(params.Page*params.PageSize) < total {
		next = buildLink(params.Page + 1)
	}
	if params.Page > 1 {
		previous = buildLink(params.Page - 1)
	}
	return next, previous
}
