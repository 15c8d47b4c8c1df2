package handlers

import (
	"eventaggregator/config"
	"eventaggregator/internal/services"

	"github.com/gofiber/fiber/v2"
)

func HealthHandler(router fiber.Router, config config.Config, budget *services.RateBudgetService) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":     "ok",
			"version":    config.GeneralVersion,
			"service":    "event_aggregator_api",
			"rateBudget": budget.Snapshot(),
		})
	})
}
