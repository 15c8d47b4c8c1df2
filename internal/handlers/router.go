package handlers

import (
	"eventaggregator/internal/app"
	"eventaggregator/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	router.Use(app.Middleware.TraceID())
	router.Use(app.Middleware.Authenticate())

	router.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := router.Group("/api")
	HealthHandler(api, app.Config, app.Services.RateBudget)

	NewArtistHandler(*app, router).Register()
	NewVenueHandler(*app, router).Register()
	NewEventHandler(*app, router).Register()
	NewClassificationHandler(*app, router).Register()
	NewSuggestHandler(*app, router).Register()
	NewUserHandler(*app, router).Register()

	return nil
}
