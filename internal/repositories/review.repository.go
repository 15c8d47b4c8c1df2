package repositories

import (
	"context"
	"strconv"

	. "eventaggregator/internal/models"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	Add(ctx context.Context, tx *gorm.DB, review *Review) (types.Outcome, error)
	ListForUser(ctx context.Context, tx *gorm.DB, username string) ([]*Review, error)
	ListForArtist(ctx context.Context, tx *gorm.DB, artistID string) ([]*Review, error)
	Remove(ctx context.Context, tx *gorm.DB, username, artistID string) (types.Outcome, error)
	Edit(ctx context.Context, tx *gorm.DB, username string, reviewID int, comment string) (*Review, error)
}

type reviewRepository struct {
	log logger.Logger
}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{
		log: logger.New("reviewRepository"),
	}
}

func (r *reviewRepository) Add(
	ctx context.Context,
	tx *gorm.DB,
	review *Review,
) (types.Outcome, error) {
	log := r.log.Function("Add")

	outcome, err := insertIfAbsent(tx.WithContext(ctx), review, ReviewConflictColumns)
	if err != nil {
		return outcome, log.Err(
			"failed to add review",
			err,
			"userID", review.UserID,
			"artistID", review.ArtistID,
		)
	}

	return outcome, nil
}

func (r *reviewRepository) ListForUser(
	ctx context.Context,
	tx *gorm.DB,
	username string,
) ([]*Review, error) {
	log := r.log.Function("ListForUser")

	reviews := []*Review{}
	if err := tx.WithContext(ctx).
		Where("user_id = ?", username).
		Order("created_at ASC").
		Find(&reviews).Error; err != nil {
		return nil, log.Err("failed to list reviews", err, "username", username)
	}

	return reviews, nil
}

func (r *reviewRepository) ListForArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID string,
) ([]*Review, error) {
	log := r.log.Function("ListForArtist")

	reviews := []*Review{}
	if err := tx.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at ASC").
		Find(&reviews).Error; err != nil {
		return nil, log.Err("failed to list artist reviews", err, "artistID", artistID)
	}

	return reviews, nil
}

func (r *reviewRepository) Remove(
	ctx context.Context,
	tx *gorm.DB,
	username, artistID string,
) (types.Outcome, error) {
	log := r.log.Function("Remove")

	result := tx.WithContext(ctx).
		Where("user_id = ? AND artist_id = ?", username, artistID).
		Delete(&Review{})
	if result.Error != nil {
		return types.OutcomeDeleted, log.Err(
			"failed to remove review",
			result.Error,
			"username", username,
			"artistID", artistID,
		)
	}

	return types.OutcomeDeleted, nil
}

// Edit rewrites the comment of reviewID only when username owns it. A review
// owned by someone else is indistinguishable from a missing one.
func (r *reviewRepository) Edit(
	ctx context.Context,
	tx *gorm.DB,
	username string,
	reviewID int,
	comment string,
) (*Review, error) {
	log := r.log.Function("Edit")

	var review Review
	result := tx.WithContext(ctx).
		Model(&review).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", reviewID, username).
		Updates(map[string]any{"comment": comment})
	if result.Error != nil {
		return nil, log.Err(
			"failed to edit review",
			result.Error,
			"username", username,
			"reviewID", reviewID,
		)
	}

	if result.RowsAffected == 0 {
		return nil, types.NewNotFoundError("review", strconv.Itoa(reviewID))
	}

	return &review, nil
}
