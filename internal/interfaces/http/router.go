package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/kmehta/stockview/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema  graphql.Schema
	Log     *logger.Logger
	AppName string
}

// Router registra las rutas del servicio. La superficie externa es mínima:
// un único endpoint GraphQL más un healthcheck.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	gql := NewGraphQLHandler(deps.Schema, deps.Log)
	app.Post("/graphql", gql.Execute)
	app.Get("/graphql", Playground)
}
