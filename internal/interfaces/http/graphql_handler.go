package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/kmehta/stockview/pkg/logger"
)

// graphqlRequest cuerpo esperado del POST /graphql.
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// graphqlError un error serializado en la respuesta ({errors:[{message}]}).
type graphqlError struct {
	Message string `json:"message"`
}

// GraphQLHandler ejecuta documentos GraphQL contra el esquema del catálogo.
// Siempre responde 200 con {data} o {errors}, salvo cuerpo no parseable (400).
type GraphQLHandler struct {
	schema graphql.Schema
	log    *logger.Logger
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema graphql.Schema, log *logger.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, log: log}
}

// Execute maneja POST /graphql.
func (h *GraphQLHandler) Execute(c *fiber.Ctx) error {
	var req graphqlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []graphqlError{{Message: "cuerpo inválido: se espera JSON {query, variables}"}},
		})
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		Context:        c.UserContext(),
	})

	if result.HasErrors() {
		// Los mensajes de los usecases se exponen tal cual (contrato del cliente).
		errs := make([]graphqlError, 0, len(result.Errors))
		for _, e := range result.Errors {
			errs = append(errs, graphqlError{Message: e.Message})
		}
		h.log.Warn().
			Str("request_id", RequestID(c)).
			Str("first_error", errs[0].Message).
			Int("error_count", len(errs)).
			Msg("documento GraphQL con errores")
		return c.JSON(fiber.Map{"errors": errs})
	}

	h.log.Debug().
		Str("request_id", RequestID(c)).
		Msg("documento GraphQL resuelto")
	return c.JSON(fiber.Map{"data": result.Data})
}
