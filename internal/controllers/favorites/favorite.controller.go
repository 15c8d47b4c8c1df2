package favoriteController

import (
	"context"
	"strings"

	"eventaggregator/internal/metrics"
	. "eventaggregator/internal/models"
	"eventaggregator/internal/repositories"
	"eventaggregator/internal/services"
	"eventaggregator/internal/types"
	"eventaggregator/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type AddFavoriteRequest struct {
	ArtistName  *string `json:"artistName"  validate:"omitempty,max=255"`
	ArtistImage *string `json:"artistImage" validate:"omitempty,url"`
	ArtistURL   *string `json:"artistUrl"   validate:"omitempty,url"`
}

type FavoriteControllerInterface interface {
	Add(
		ctx context.Context,
		username, artistID string,
		req AddFavoriteRequest,
	) (*Favorite, types.Outcome, error)
	ListForUser(ctx context.Context, username string) ([]*Favorite, error)
	Remove(ctx context.Context, username, artistID string) (types.Outcome, error)
}

type FavoriteController struct {
	userRepo     repositories.UserRepository
	favoriteRepo repositories.FavoriteRepository
	transaction  services.Transactor
	log          logger.Logger
}

func New(repos repositories.Repository, svc services.Service) FavoriteControllerInterface {
	return NewWithDeps(repos.User, repos.Favorite, svc.Transaction)
}

func NewWithDeps(
	userRepo repositories.UserRepository,
	favoriteRepo repositories.FavoriteRepository,
	transaction services.Transactor,
) FavoriteControllerInterface {
	return &FavoriteController{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		transaction:  transaction,
		log:          logger.New("favoriteController"),
	}
}

// Add records the favorite unless the pair already exists, in which case the
// stored record is left untouched and OutcomeAlreadyExists is returned.
func (fc *FavoriteController) Add(
	ctx context.Context,
	username, artistID string,
	req AddFavoriteRequest,
) (*Favorite, types.Outcome, error) {
	log := fc.log.TraceFromContext(ctx).Function("Add")

	artistID = strings.TrimSpace(artistID)
	if artistID == "" {
		return nil, types.OutcomeAlreadyExists, types.NewValidationError("artistId", "is required")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, types.OutcomeAlreadyExists, err
	}

	favorite := &Favorite{
		UserID:      username,
		ArtistID:    artistID,
		ArtistName:  req.ArtistName,
		ArtistImage: req.ArtistImage,
		ArtistURL:   req.ArtistURL,
	}

	var outcome types.Outcome
	err := fc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := fc.userRepo.RequireExists(ctx, tx, username); err != nil {
			return err
		}

		var err error
		outcome, err = fc.favoriteRepo.Add(ctx, tx, favorite)
		return err
	})
	if err != nil {
		return nil, types.OutcomeAlreadyExists, log.Err(
			"failed to add favorite",
			err,
			"username", username,
			"artistID", artistID,
		)
	}

	metrics.RelationshipWrites.WithLabelValues("favorite", outcome.String()).Inc()
	log.Info("Favorite written", "username", username, "artistID", artistID, "outcome", outcome.String())

	return favorite, outcome, nil
}

func (fc *FavoriteController) ListForUser(ctx context.Context, username string) ([]*Favorite, error) {
	log := fc.log.TraceFromContext(ctx).Function("ListForUser")

	var favorites []*Favorite
	err := fc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := fc.userRepo.RequireExists(ctx, tx, username); err != nil {
			return err
		}

		var err error
		favorites, err = fc.favoriteRepo.ListForUser(ctx, tx, username)
		return err
	})
	if err != nil {
		return nil, log.Err("failed to list favorites", err, "username", username)
	}

	return favorites, nil
}

func (fc *FavoriteController) Remove(
	ctx context.Context,
	username, artistID string,
) (types.Outcome, error) {
	log := fc.log.TraceFromContext(ctx).Function("Remove")

	outcome := types.OutcomeDeleted
	err := fc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := fc.userRepo.RequireExists(ctx, tx, username); err != nil {
			return err
		}

		var err error
		outcome, err = fc.favoriteRepo.Remove(ctx, tx, username, artistID)
		return err
	})
	if err != nil {
		return outcome, log.Err(
			"failed to remove favorite",
			err,
			"username", username,
			"artistID", artistID,
		)
	}

	metrics.RelationshipWrites.WithLabelValues("favorite", outcome.String()).Inc()
	return outcome, nil
}
