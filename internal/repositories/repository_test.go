package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"eventaggregator/internal/database"
	"eventaggregator/internal/models"
	"eventaggregator/internal/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func strPtr(s string) *string {
	return &s
}

func TestUserRepository_Exists(t *testing.T) {
	countQuery := regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE username = $1`)

	tests := []struct {
		name     string
		count    int
		expected bool
	}{
		{name: "user present", count: 1, expected: true},
		{name: "user missing", count: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock := setupTestDB(t)
			mock.ExpectQuery(countQuery).
				WithArgs("alice").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			repo := NewUserRepository(database.NewWithGorm(gormDB))
			exists, err := repo.Exists(context.Background(), gormDB, "alice")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_RequireExists_NotFound(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users"`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := NewUserRepository(database.NewWithGorm(gormDB))
	err := repo.RequireExists(context.Background(), gormDB, "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))

	var notFound *types.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "user", notFound.Entity)
	assert.Equal(t, "ghost", notFound.Key)
}

func TestUserRepository_Exists_QueryError(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	dbErr := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users"`)).WillReturnError(dbErr)

	repo := NewUserRepository(database.NewWithGorm(gormDB))
	_, err := repo.Exists(context.Background(), gormDB, "alice")

	assert.ErrorIs(t, err, dbErr)
}

func TestFavoriteRepository_Add(t *testing.T) {
	insert := `INSERT INTO "favorites" .* ON CONFLICT \("user_id","artist_id"\) DO NOTHING RETURNING "id"`

	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		expected types.Outcome
		id       int
	}{
		{
			name:     "new pair is created",
			rows:     sqlmock.NewRows([]string{"id"}).AddRow(11),
			expected: types.OutcomeCreated,
			id:       11,
		},
		{
			name:     "existing pair is left alone",
			rows:     sqlmock.NewRows([]string{"id"}),
			expected: types.OutcomeAlreadyExists,
			id:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock := setupTestDB(t)
			mock.ExpectQuery(insert).WillReturnRows(tt.rows)

			favorite := &models.Favorite{
				UserID:     "alice",
				ArtistID:   "A1",
				ArtistName: strPtr("Phoebe Bridgers"),
			}
			outcome, err := NewFavoriteRepository().Add(context.Background(), gormDB, favorite)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, outcome)
			assert.Equal(t, tt.id, favorite.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFavoriteRepository_Add_Error(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	dbErr := errors.New("insert failed")
	mock.ExpectQuery(`INSERT INTO "favorites"`).WillReturnError(dbErr)

	_, err := NewFavoriteRepository().Add(context.Background(), gormDB, &models.Favorite{
		UserID:   "alice",
		ArtistID: "A1",
	})

	assert.ErrorIs(t, err, dbErr)
}

func TestFavoriteRepository_ListForUser_OrderedByArtist(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "favorites" WHERE user_id = $1 ORDER BY artist_id ASC`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "artist_id", "artist_name"}).
			AddRow(2, "alice", "A1", "First").
			AddRow(1, "alice", "B2", "Second"))

	favorites, err := NewFavoriteRepository().ListForUser(context.Background(), gormDB, "alice")

	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "A1", favorites[0].ArtistID)
	assert.Equal(t, "B2", favorites[1].ArtistID)
	assert.Equal(t, "First", *favorites[0].ArtistName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_ListForUser_EmptyIsNotNil(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	mock.ExpectQuery(`SELECT \* FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	favorites, err := NewFavoriteRepository().ListForUser(context.Background(), gormDB, "alice")

	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestFavoriteRepository_Remove_MissingRowStillDeleted(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE user_id = $1 AND artist_id = $2`)).
		WithArgs("alice", "never-added").
		WillReturnResult(sqlmock.NewResult(0, 0))

	outcome, err := NewFavoriteRepository().Remove(context.Background(), gormDB, "alice", "never-added")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeDeleted, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Add_AlreadyExists(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	mock.ExpectQuery(`INSERT INTO "reviews" .* ON CONFLICT \("user_id","artist_id"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	outcome, err := NewReviewRepository().Add(context.Background(), gormDB, &models.Review{
		UserID:   "alice",
		ArtistID: "A1",
		Comment:  "  second try  ",
	})

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeAlreadyExists, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListForArtist(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reviews" WHERE artist_id = $1 ORDER BY created_at ASC`)).
		WithArgs("A1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "artist_id", "comment", "created_at"}).
			AddRow(1, "alice", "A1", "great", created).
			AddRow(2, "bob", "A1", "fine", created.Add(time.Hour)))

	reviews, err := NewReviewRepository().ListForArtist(context.Background(), gormDB, "A1")

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "alice", reviews[0].UserID)
	assert.Equal(t, "bob", reviews[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListForUser(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reviews" WHERE user_id = $1 ORDER BY created_at ASC`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "artist_id", "comment"}).
			AddRow(1, "alice", "A1", "great"))

	reviews, err := NewReviewRepository().ListForUser(context.Background(), gormDB, "alice")

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "great", reviews[0].Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Edit(t *testing.T) {
	update := regexp.QuoteMeta(
		`UPDATE "reviews" SET "comment"=$1,"updated_at"=$2 WHERE id = $3 AND user_id = $4 RETURNING *`,
	)

	t.Run("owner edits comment", func(t *testing.T) {
		gormDB, mock := setupTestDB(t)
		mock.ExpectQuery(update).
			WithArgs("great", sqlmock.AnyArg(), 7, "alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "artist_id", "comment"}).
				AddRow(7, "alice", "A1", "great"))

		review, err := NewReviewRepository().Edit(context.Background(), gormDB, "alice", 7, "great")

		require.NoError(t, err)
		assert.Equal(t, 7, review.ID)
		assert.Equal(t, "great", review.Comment)
		assert.Equal(t, "A1", review.ArtistID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("review owned by another user is not found", func(t *testing.T) {
		gormDB, mock := setupTestDB(t)
		mock.ExpectQuery(update).
			WithArgs("great", sqlmock.AnyArg(), 7, "alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "artist_id", "comment"}))

		review, err := NewReviewRepository().Edit(context.Background(), gormDB, "alice", 7, "great")

		assert.Nil(t, review)
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepository_Remove(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "reviews" WHERE user_id = $1 AND artist_id = $2`)).
		WithArgs("alice", "A1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	outcome, err := NewReviewRepository().Remove(context.Background(), gormDB, "alice", "A1")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeDeleted, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}
