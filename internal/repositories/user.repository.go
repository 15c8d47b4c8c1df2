package repositories

import (
	"context"
	"time"

	"eventaggregator/internal/database"
	. "eventaggregator/internal/models"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	USER_CACHE_EXPIRY        = 15 * time.Minute
	USER_EXISTS_CACHE_PREFIX = "user_exists"
)

type UserRepository interface {
	Exists(ctx context.Context, tx *gorm.DB, username string) (bool, error)
	RequireExists(ctx context.Context, tx *gorm.DB, username string) error
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, user *User) (types.Outcome, error)
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUserRepository(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

// Exists reports whether username has a row. Only positive answers are
// cached so a freshly created user is never hidden behind a stale miss.
func (r *userRepository) Exists(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
	log := r.log.Function("Exists")

	if r.getCacheExists(ctx, username) {
		return true, nil
	}

	var count int64
	if err := tx.WithContext(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, log.Err("failed to check user existence", err, "username", username)
	}

	if count == 0 {
		return false, nil
	}

	if err := r.addExistsToCache(ctx, username); err != nil {
		log.Warn("failed to cache user existence", "username", username, "error", err)
	}

	return true, nil
}

func (r *userRepository) RequireExists(ctx context.Context, tx *gorm.DB, username string) error {
	exists, err := r.Exists(ctx, tx, username)
	if err != nil {
		return err
	}

	if !exists {
		return types.NewNotFoundError("user", username)
	}

	return nil
}

func (r *userRepository) CreateIfAbsent(
	ctx context.Context,
	tx *gorm.DB,
	user *User,
) (types.Outcome, error) {
	log := r.log.Function("CreateIfAbsent")

	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "username"}}, DoNothing: true}).
		Create(user)
	if result.Error != nil {
		return types.OutcomeAlreadyExists, log.Err("failed to create user", result.Error, "username", user.Username)
	}

	if result.RowsAffected == 0 {
		return types.OutcomeAlreadyExists, nil
	}

	return types.OutcomeCreated, nil
}

func (r *userRepository) getCacheExists(ctx context.Context, username string) bool {
	if r.db.Cache.User == nil {
		return false
	}

	var exists bool
	found, err := database.NewCacheBuilder(r.db.Cache.User, username).
		WithHash(USER_EXISTS_CACHE_PREFIX).
		WithContext(ctx).
		Get(&exists)
	if err != nil {
		r.log.Function("getCacheExists").Warn("failed to read user cache", "username", username, "error", err)
		return false
	}

	return found && exists
}

func (r *userRepository) addExistsToCache(ctx context.Context, username string) error {
	if r.db.Cache.User == nil {
		return nil
	}

	return database.NewCacheBuilder(r.db.Cache.User, username).
		WithHash(USER_EXISTS_CACHE_PREFIX).
		WithStruct(true).
		WithTTL(USER_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}
