package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	otp := app.Group("/otp")
	otp.Post("/request", handler.RequestOTP)
	otp.Post("/verify", handler.VerifyOTP)
	otp.Post("/refresh", handler.RefreshTokens)

	lists := app.Group("/lists", handler.AuthRequired)
	lists.Get("", handler.GetLists)
	lists.Post("", handler.CreateList)
	lists.Get("/:slug", handler.GetList)
	lists.Patch("/:slug", handler.UpdateList)
	lists.Delete("/:slug", handler.DeleteList)
	lists.Post("/:slug/items", handler.CreateItem)

	items := app.Group("/items", handler.AuthRequired)
	items.Patch("/:slug", handler.UpdateItem)
	items.Delete("/:slug", handler.DeleteItem)

	app.Get("/search", handler.AuthRequired, handler.SearchLists)
}
