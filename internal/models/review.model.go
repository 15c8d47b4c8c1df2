package models

import (
	"strings"

	"gorm.io/gorm"
)

type Review struct {
	BaseModel
	UserID   string `gorm:"type:varchar(25);not null;uniqueIndex:idx_reviews_user_artist,priority:1" json:"userId"`
	ArtistID string `gorm:"type:text;not null;uniqueIndex:idx_reviews_user_artist,priority:2;index"   json:"artistId"`
	Comment  string `gorm:"type:text;not null"                                                        json:"comment"`
}

var ReviewConflictColumns = []string{"user_id", "artist_id"}

func (r *Review) BeforeSave(tx *gorm.DB) error {
	r.Comment = strings.TrimSpace(r.Comment)
	return nil
}
