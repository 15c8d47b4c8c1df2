package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_BeforeCreate(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
		wantErr  error
	}{
		{
			name:     "trims username",
			user:     User{Username: "  alice ", FirstName: " Alice "},
			expected: "alice",
		},
		{
			name:    "rejects blank username",
			user:    User{Username: "   "},
			wantErr: ErrEmptyUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.BeforeCreate(nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, tt.user.Username)
			assert.Equal(t, "Alice", tt.user.FirstName)
		})
	}
}

func TestReview_BeforeSaveTrimsComment(t *testing.T) {
	review := &Review{Comment: "  great show \n"}

	assert.NoError(t, review.BeforeSave(nil))
	assert.Equal(t, "great show", review.Comment)
}

func TestConflictColumns(t *testing.T) {
	assert.Equal(t, []string{"user_id", "artist_id"}, FavoriteConflictColumns)
	assert.Equal(t, []string{"user_id", "artist_id"}, ReviewConflictColumns)
}
