package handlers

import (
	"eventaggregator/internal/app"
	favoriteController "eventaggregator/internal/controllers/favorites"
	reviewController "eventaggregator/internal/controllers/reviews"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

const noReviewsForArtistMessage = "No reviews found for this artist."

type UserHandler struct {
	Handler
	favoriteController favoriteController.FavoriteControllerInterface
	reviewController   reviewController.ReviewControllerInterface
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	log := logger.New("handlers").File("user_handler")
	return &UserHandler{
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
		favoriteController: app.Controllers.Favorite,
		reviewController:   app.Controllers.Review,
	}
}

func (h *UserHandler) Register() {
	users := h.router.Group("/users")
	users.Get("/reviews-by-artist/:artistId", h.reviewsByArtist)

	user := users.Group("/:username", h.middleware.EnsureCorrectUserOrAdmin())

	favorites := user.Group("/favorites")
	favorites.Get("/", h.listFavorites)
	favorites.Post("/:artistId", h.addFavorite)
	favorites.Delete("/:artistId", h.removeFavorite)

	reviews := user.Group("/reviews")
	reviews.Get("/", h.listReviews)
	reviews.Post("/:artistId", h.addReview)
	reviews.Patch("/:reviewId", h.editReview)
	reviews.Delete("/:artistId", h.removeReview)
}

// parseOptionalBody decodes the JSON body when one was sent.
func parseOptionalBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return types.NewValidationError("body", "must be a valid JSON object")
	}
	return nil
}

func (h *UserHandler) addFavorite(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("addFavorite")

	var req favoriteController.AddFavoriteRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return sendError(c, log, err)
	}

	favorite, outcome, err := h.favoriteController.Add(
		c.UserContext(),
		c.Params("username"),
		c.Params("artistId"),
		req,
	)
	if err != nil {
		return sendError(c, log, err)
	}

	if outcome == types.OutcomeAlreadyExists {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Favorite already exists"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"favorite": favorite,
		"message":  "Favorite added successfully",
	})
}

func (h *UserHandler) listFavorites(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listFavorites")

	favorites, err := h.favoriteController.ListForUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "favorites", favorites, "")
}

func (h *UserHandler) removeFavorite(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("removeFavorite")

	if _, err := h.favoriteController.Remove(
		c.UserContext(),
		c.Params("username"),
		c.Params("artistId"),
	); err != nil {
		return sendError(c, log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Favorite removed successfully"})
}

func (h *UserHandler) addReview(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("addReview")

	var req reviewController.AddReviewRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return sendError(c, log, err)
	}

	review, outcome, err := h.reviewController.Add(
		c.UserContext(),
		c.Params("username"),
		c.Params("artistId"),
		req,
	)
	if err != nil {
		return sendError(c, log, err)
	}

	if outcome == types.OutcomeAlreadyExists {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Review already exists"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"review":  review,
		"message": "Review added successfully",
	})
}

func (h *UserHandler) listReviews(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listReviews")

	reviews, err := h.reviewController.ListForUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "reviews", reviews, "")
}

func (h *UserHandler) reviewsByArtist(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("reviewsByArtist")

	reviews, err := h.reviewController.ListForArtist(c.UserContext(), c.Params("artistId"))
	if err != nil {
		return sendError(c, log, err)
	}

	return sendList(c, "reviews", reviews, noReviewsForArtistMessage)
}

func (h *UserHandler) editReview(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("editReview")

	reviewID, err := c.ParamsInt("reviewId")
	if err != nil {
		return sendError(c, log, types.NewValidationError("reviewId", "must be an integer"))
	}

	var req reviewController.EditReviewRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return sendError(c, log, err)
	}

	review, err := h.reviewController.Edit(c.UserContext(), c.Params("username"), reviewID, req)
	if err != nil {
		return sendError(c, log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"review":  review,
		"message": "Review updated successfully",
	})
}

func (h *UserHandler) removeReview(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("removeReview")

	if _, err := h.reviewController.Remove(
		c.UserContext(),
		c.Params("username"),
		c.Params("artistId"),
	); err != nil {
		return sendError(c, log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Review removed successfully"})
}
