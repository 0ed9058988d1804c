package api

import "github.com/gofiber/fiber/v2"

// SearchLists returns the requester's lists ranked by lexical relevance and
// trigram similarity, as a lightweight name/slug projection.
func (handler *Handler) SearchLists(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	results, err := handler.searchService.Search(user.ID, c.Query("search"))
	if err != nil {
		return err
	}

	return c.JSON(results)
}
