package controller

import "github.com/gofiber/fiber/v2"

func RegisterIndex(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusTemporaryRedirect)
	})
}
