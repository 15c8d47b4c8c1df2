package repositories

import (
	"eventaggregator/internal/database"
	"eventaggregator/internal/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	User     UserRepository
	Favorite FavoriteRepository
	Review   ReviewRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:     NewUserRepository(db), // User repo needs cache for existence checks
		Favorite: NewFavoriteRepository(),
		Review:   NewReviewRepository(),
	}
}

// insertIfAbsent issues a single INSERT ... ON CONFLICT DO NOTHING against
// the unique key in columns. No row written means the key was already held.
func insertIfAbsent[T any](tx *gorm.DB, record *T, columns []string) (types.Outcome, error) {
	conflict := make([]clause.Column, len(columns))
	for i, name := range columns {
		conflict[i] = clause.Column{Name: name}
	}

	result := tx.Clauses(clause.OnConflict{Columns: conflict, DoNothing: true}).Create(record)
	if result.Error != nil {
		return types.OutcomeAlreadyExists, result.Error
	}

	if result.RowsAffected == 0 {
		return types.OutcomeAlreadyExists, nil
	}

	return types.OutcomeCreated, nil
}
