package handlers

import (
	"eventaggregator/internal/app"
	venueController "eventaggregator/internal/controllers/venues"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

const noVenuesMessage = "No venues found for the provided search term."

type VenueHandler struct {
	Handler
	controller venueController.VenueControllerInterface
}

func NewVenueHandler(app app.App, router fiber.Router) *VenueHandler {
	log := logger.New("handlers").File("venue_handler")
	return &VenueHandler{
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
		controller: app.Controllers.Venue,
	}
}

func (h *VenueHandler) Register() {
	venues := h.router.Group("/venues")
	venues.Get("/", h.listVenues)
	venues.Get("/:id", h.getVenue)
}

func (h *VenueHandler) listVenues(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listVenues")

	venues, err := h.controller.List(c.UserContext(), c.Query("term"))
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "venues", venues, noVenuesMessage)
}

func (h *VenueHandler) getVenue(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("getVenue")

	venue, err := h.controller.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"venue": venue})
}
