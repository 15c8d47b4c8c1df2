package repositories

import (
	"context"

	. "eventaggregator/internal/models"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Add(ctx context.Context, tx *gorm.DB, favorite *Favorite) (types.Outcome, error)
	ListForUser(ctx context.Context, tx *gorm.DB, username string) ([]*Favorite, error)
	Remove(ctx context.Context, tx *gorm.DB, username, artistID string) (types.Outcome, error)
}

type favoriteRepository struct {
	log logger.Logger
}

func NewFavoriteRepository() FavoriteRepository {
	return &favoriteRepository{
		log: logger.New("favoriteRepository"),
	}
}

func (r *favoriteRepository) Add(
	ctx context.Context,
	tx *gorm.DB,
	favorite *Favorite,
) (types.Outcome, error) {
	log := r.log.Function("Add")

	outcome, err := insertIfAbsent(tx.WithContext(ctx), favorite, FavoriteConflictColumns)
	if err != nil {
		return outcome, log.Err(
			"failed to add favorite",
			err,
			"userID", favorite.UserID,
			"artistID", favorite.ArtistID,
		)
	}

	return outcome, nil
}

func (r *favoriteRepository) ListForUser(
	ctx context.Context,
	tx *gorm.DB,
	username string,
) ([]*Favorite, error) {
	log := r.log.Function("ListForUser")

	favorites := []*Favorite{}
	if err := tx.WithContext(ctx).
		Where("user_id = ?", username).
		Order("artist_id ASC").
		Find(&favorites).Error; err != nil {
		return nil, log.Err("failed to list favorites", err, "username", username)
	}

	return favorites, nil
}

// Remove deletes the (user, artist) favorite. A missing row still reports
// OutcomeDeleted.
func (r *favoriteRepository) Remove(
	ctx context.Context,
	tx *gorm.DB,
	username, artistID string,
) (types.Outcome, error) {
	log := r.log.Function("Remove")

	result := tx.WithContext(ctx).
		Where("user_id = ? AND artist_id = ?", username, artistID).
		Delete(&Favorite{})
	if result.Error != nil {
		return types.OutcomeDeleted, log.Err(
			"failed to remove favorite",
			result.Error,
			"username", username,
			"artistID", artistID,
		)
	}

	if result.RowsAffected == 0 {
		log.Debug("no favorite to remove", "username", username, "artistID", artistID)
	}

	return types.OutcomeDeleted, nil
}
