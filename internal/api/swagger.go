package api

import (
	docs "github.com/GlobalPath/cms_service/docs"
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

func RegisterSwagger(app *fiber.App) {
	// keep the generated spec's host/scheme in sync with how the client
	// reached us (http locally, https behind the proxy)
	app.Use(func(c *fiber.Ctx) error {
		docs.SwaggerInfo.Host = c.Hostname()
		docs.SwaggerInfo.Schemes = []string{c.Protocol()}
		return c.Next()
	})

	app.Get("/swagger/*", fiberSwagger.WrapHandler)
}
