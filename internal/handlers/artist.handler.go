package handlers

import (
	"eventaggregator/internal/app"
	artistController "eventaggregator/internal/controllers/artists"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

const noArtistsMessage = "No artists found for the provided search term."

type ArtistHandler struct {
	Handler
	controller artistController.ArtistControllerInterface
}

func NewArtistHandler(app app.App, router fiber.Router) *ArtistHandler {
	log := logger.New("handlers").File("artist_handler")
	return &ArtistHandler{
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
		controller: app.Controllers.Artist,
	}
}

func (h *ArtistHandler) Register() {
	artists := h.router.Group("/artists")
	artists.Get("/", h.listArtists)
	artists.Get("/:id", h.getArtist)
}

func (h *ArtistHandler) listArtists(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listArtists")

	artists, err := h.controller.List(c.UserContext(), artistController.ListQuery{
		Term: c.Query("term"),
		Name: c.Query("name"),
	})
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "artists", artists, noArtistsMessage)
}

func (h *ArtistHandler) getArtist(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("getArtist")

	artist, err := h.controller.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"artist": artist})
}
