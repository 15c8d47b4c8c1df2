package handlers

import (
	"eventaggregator/internal/app"
	classificationController "eventaggregator/internal/controllers/classifications"
	suggestController "eventaggregator/internal/controllers/suggest"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type ClassificationHandler struct {
	Handler
	controller classificationController.ClassificationControllerInterface
}

func NewClassificationHandler(app app.App, router fiber.Router) *ClassificationHandler {
	log := logger.New("handlers").File("classification_handler")
	return &ClassificationHandler{
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
		controller: app.Controllers.Classification,
	}
}

func (h *ClassificationHandler) Register() {
	h.router.Get("/categories", h.listCategories)
	h.router.Get("/genres", h.listGenres)
}

func (h *ClassificationHandler) listCategories(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listCategories")

	categories, err := h.controller.Categories(c.UserContext())
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "classifications", categories, "")
}

func (h *ClassificationHandler) listGenres(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listGenres")

	genres, err := h.controller.Genres(c.UserContext())
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "genres", genres, "")
}

type SuggestHandler struct {
	Handler
	controller suggestController.SuggestControllerInterface
}

func NewSuggestHandler(app app.App, router fiber.Router) *SuggestHandler {
	log := logger.New("handlers").File("suggest_handler")
	return &SuggestHandler{
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
		controller: app.Controllers.Suggest,
	}
}

func (h *SuggestHandler) Register() {
	h.router.Get("/suggest", h.suggest)
}

func (h *SuggestHandler) suggest(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("suggest")

	events, err := h.controller.Suggest(c.UserContext())
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "suggest", events, "")
}
