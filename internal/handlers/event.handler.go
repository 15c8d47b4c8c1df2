package handlers

import (
	"eventaggregator/internal/app"
	eventController "eventaggregator/internal/controllers/events"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

const (
	noEventsMessage          = "No events found for the provided search term."
	noEventsForArtistMessage = "No events found for this artist."
)

type EventHandler struct {
	Handler
	controller eventController.EventControllerInterface
}

func NewEventHandler(app app.App, router fiber.Router) *EventHandler {
	log := logger.New("handlers").File("event_handler")
	return &EventHandler{
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
		controller: app.Controllers.Event,
	}
}

func (h *EventHandler) Register() {
	events := h.router.Group("/events")
	events.Get("/", h.listEvents)
	events.Get("/events-by-artist/:artistId", h.eventsByArtist)
	events.Get("/events-by-venue/:venueId", h.eventsByVenue)
	events.Get("/events-by-category/:categoryName", h.eventsByCategory)
	events.Get("/:id", h.getEvent)
}

func (h *EventHandler) listEvents(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listEvents")

	events, err := h.controller.List(c.UserContext(), c.Query("term"))
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "events", events, noEventsMessage)
}

func (h *EventHandler) getEvent(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("getEvent")

	event, err := h.controller.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"event": event})
}

func (h *EventHandler) eventsByArtist(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("eventsByArtist")

	events, err := h.controller.ByArtist(c.UserContext(), c.Params("artistId"))
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "events", events, noEventsForArtistMessage)
}

func (h *EventHandler) eventsByVenue(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("eventsByVenue")

	events, err := h.controller.ByVenue(c.UserContext(), c.Params("venueId"))
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "events", events, "")
}

func (h *EventHandler) eventsByCategory(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("eventsByCategory")

	events, err := h.controller.ByCategory(c.UserContext(), c.Params("categoryName"))
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "events", events, "")
}
