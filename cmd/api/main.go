package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kmehta/stockview/internal/application/catalog"
	"github.com/kmehta/stockview/internal/infrastructure/memory"
	gqlschema "github.com/kmehta/stockview/internal/interfaces/graphql"
	httpRouter "github.com/kmehta/stockview/internal/interfaces/http"
	"github.com/kmehta/stockview/pkg/config"
	"github.com/kmehta/stockview/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Store en memoria con los datos de demostración. Se pierde al reiniciar:
	// no hay persistencia en este servicio.
	store := memory.NewSeededStore()

	queryUC := catalog.NewQueryUseCase(store.Products(), store.Warehouses(), catalog.NewRandomJitter())
	mutationUC := catalog.NewMutationUseCase(store.Products())

	schema, err := gqlschema.NewSchema(gqlschema.Resolvers{
		Query:    queryUC,
		Mutation: mutationUC,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construir esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORS.AllowOrigins}))
	app.Use(httpRouter.RequestIDMiddleware())
	app.Use(httpRouter.RequestLogger(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Schema:  schema,
		Log:     log,
		AppName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("GraphQL disponible en /graphql")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
