package main

import (
	"fmt"

	"ai-adapt-reader/config"
	adaptapi "ai-adapt-reader/internal/api/adapt"
	"ai-adapt-reader/internal/api/healthcheck"
	parseapi "ai-adapt-reader/internal/api/parse"
	speechapi "ai-adapt-reader/internal/api/speech"
	coreadapt "ai-adapt-reader/internal/core/adapt"
	"ai-adapt-reader/internal/core/extract"
	corespeech "ai-adapt-reader/internal/core/speech"
	"ai-adapt-reader/internal/llm"
	"ai-adapt-reader/internal/middleware"
	"ai-adapt-reader/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName:   config.Cfg.Server.AppName,
		BodyLimit: config.Cfg.Server.BodyLimit,
	})

	app.Use(middleware.PanicRecovery())
	app.Use(middleware.Cors())
	app.Use(middleware.ConnectionLimit(middleware.NewConnectionLimiter(config.Cfg.Server.Concurrency)))

	client, err := llm.NewAnthropic()
	if err != nil {
		logger.Fatal(err, "generation provider init failed")
	}

	dispatcher := coreadapt.NewDispatcher(client)
	speechService := corespeech.NewService()
	extractService := extract.NewService(client)

	// routes
	healthcheck.RegisterRoutes(app, healthcheck.NewHandler(client))
	adaptapi.RegisterRoutes(app, adaptapi.NewHandler(dispatcher))
	speechapi.RegisterRoutes(app, speechapi.NewHandler(speechService))
	parseapi.RegisterRoutes(app, parseapi.NewHandler(extractService))

	addr := fmt.Sprintf(":%d", config.Cfg.Server.Port)
	if err := app.Listen(addr); err != nil {
		logger.Error(err, "server error")
	}
}
