package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"os-simulator/api"
	"os-simulator/config"
	"os-simulator/internal/logging"
)

func main() {
	cfg := config.GetSchedulerConfig()
	slog.SetDefault(logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr))

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())

	api.Register(app, api.NewSchedulerHandlerImpl(cfg), cfg)

	slog.Info("scheduler simulator listening", "port", cfg.Port, "round_robin_time_quantum", cfg.RoundRobinTimeQuantum)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
