package reviewController

import (
	"context"
	"strings"
	"time"

	"eventaggregator/internal/metrics"
	. "eventaggregator/internal/models"
	"eventaggregator/internal/repositories"
	"eventaggregator/internal/services"
	"eventaggregator/internal/types"
	"eventaggregator/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const MaxCommentLength = 2000

type AddReviewRequest struct {
	Comment   string     `json:"comment"   validate:"required,max=2000"`
	CreatedAt *time.Time `json:"createdAt"`
}

// EditReviewRequest lists the fields a review edit may change.
type EditReviewRequest struct {
	Comment *string `json:"comment" validate:"required,max=2000"`
}

type ReviewControllerInterface interface {
	Add(ctx context.Context, username, artistID string, req AddReviewRequest) (*Review, types.Outcome, error)
	ListForUser(ctx context.Context, username string) ([]*Review, error)
	ListForArtist(ctx context.Context, artistID string) ([]*Review, error)
	Edit(ctx context.Context, username string, reviewID int, req EditReviewRequest) (*Review, error)
	Remove(ctx context.Context, username, artistID string) (types.Outcome, error)
}

type ReviewController struct {
	userRepo    repositories.UserRepository
	reviewRepo  repositories.ReviewRepository
	transaction services.Transactor
	now         func() time.Time
	log         logger.Logger
}

func New(repos repositories.Repository, svc services.Service) ReviewControllerInterface {
	return NewWithDeps(repos.User, repos.Review, svc.Transaction)
}

func NewWithDeps(
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
	transaction services.Transactor,
) ReviewControllerInterface {
	return &ReviewController{
		userRepo:    userRepo,
		reviewRepo:  reviewRepo,
		transaction: transaction,
		now:         time.Now,
		log:         logger.New("reviewController"),
	}
}

func (rc *ReviewController) Add(
	ctx context.Context,
	username, artistID string,
	req AddReviewRequest,
) (*Review, types.Outcome, error) {
	log := rc.log.TraceFromContext(ctx).Function("Add")

	artistID = strings.TrimSpace(artistID)
	if artistID == "" {
		return nil, types.OutcomeAlreadyExists, types.NewValidationError("artistId", "is required")
	}

	req.Comment = utils.CleanText(req.Comment)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, types.OutcomeAlreadyExists, err
	}

	review := &Review{
		UserID:   username,
		ArtistID: artistID,
		Comment:  req.Comment,
	}
	review.CreatedAt = rc.now().UTC()
	if req.CreatedAt != nil {
		review.CreatedAt = req.CreatedAt.UTC()
	}

	var outcome types.Outcome
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.userRepo.RequireExists(ctx, tx, username); err != nil {
			return err
		}

		var err error
		outcome, err = rc.reviewRepo.Add(ctx, tx, review)
		return err
	})
	if err != nil {
		return nil, types.OutcomeAlreadyExists, log.Err(
			"failed to add review",
			err,
			"username", username,
			"artistID", artistID,
		)
	}

	metrics.RelationshipWrites.WithLabelValues("review", outcome.String()).Inc()
	log.Info("Review written", "username", username, "artistID", artistID, "outcome", outcome.String())

	return review, outcome, nil
}

func (rc *ReviewController) ListForUser(ctx context.Context, username string) ([]*Review, error) {
	log := rc.log.TraceFromContext(ctx).Function("ListForUser")

	var reviews []*Review
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.userRepo.RequireExists(ctx, tx, username); err != nil {
			return err
		}

		var err error
		reviews, err = rc.reviewRepo.ListForUser(ctx, tx, username)
		return err
	})
	if err != nil {
		return nil, log.Err("failed to list reviews", err, "username", username)
	}

	return reviews, nil
}

// ListForArtist is public and does not check any user.
func (rc *ReviewController) ListForArtist(ctx context.Context, artistID string) ([]*Review, error) {
	log := rc.log.TraceFromContext(ctx).Function("ListForArtist")

	var reviews []*Review
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		reviews, err = rc.reviewRepo.ListForArtist(ctx, tx, artistID)
		return err
	})
	if err != nil {
		return nil, log.Err("failed to list artist reviews", err, "artistID", artistID)
	}

	return reviews, nil
}

// Edit changes the comment of a review the user owns. Editing a review that
// belongs to someone else fails with a not found error.
func (rc *ReviewController) Edit(
	ctx context.Context,
	username string,
	reviewID int,
	req EditReviewRequest,
) (*Review, error) {
	log := rc.log.TraceFromContext(ctx).Function("Edit")

	if reviewID <= 0 {
		return nil, types.NewValidationError("reviewId", "must be greater than 0")
	}

	if req.Comment != nil {
		cleaned := utils.CleanText(*req.Comment)
		req.Comment = &cleaned
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if *req.Comment == "" {
		return nil, types.NewValidationError("comment", "is required")
	}

	var review *Review
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.userRepo.RequireExists(ctx, tx, username); err != nil {
			return err
		}

		var err error
		review, err = rc.reviewRepo.Edit(ctx, tx, username, reviewID, *req.Comment)
		return err
	})
	if err != nil {
		return nil, log.Err("failed to edit review", err, "username", username, "reviewID", reviewID)
	}

	metrics.RelationshipWrites.WithLabelValues("review", types.OutcomeUpdated.String()).Inc()
	return review, nil
}

func (rc *ReviewController) Remove(
	ctx context.Context,
	username, artistID string,
) (types.Outcome, error) {
	log := rc.log.TraceFromContext(ctx).Function("Remove")

	outcome := types.OutcomeDeleted
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.userRepo.RequireExists(ctx, tx, username); err != nil {
			return err
		}

		var err error
		outcome, err = rc.reviewRepo.Remove(ctx, tx, username, artistID)
		return err
	})
	if err != nil {
		return outcome, log.Err("failed to remove review", err, "username", username, "artistID", artistID)
	}

	metrics.RelationshipWrites.WithLabelValues("review", outcome.String()).Inc()
	return outcome, nil
}
