package api

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"os-simulator/config"
)

// Register mounts the scheduler API on app.
func Register(app *fiber.App, handler SchedulerHandler, cfg *config.SchedulerConfig) {
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	api := app.Group("/api")

	v1 := api.Group("/v1", RateLimiter(cfg.RateLimit, cfg.RateBurst))
	{
		v1.Get("/algorithms", handler.Algorithms)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/bankers", handler.Bankers)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

// RateLimiter rejects requests beyond limit per second with 429. A
// non-positive limit disables it.
func RateLimiter(limit float64, burst int) fiber.Handler {
	if limit <= 0 {
		return func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}
	limiter := rate.NewLimiter(rate.Limit(limit), max(burst, 1))
	return func(ctx *fiber.Ctx) error {
		if !limiter.Allow() {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded"})
		}
		return ctx.Next()
	}
}
