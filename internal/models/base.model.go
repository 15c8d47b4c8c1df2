package models

import (
	"time"
)

// BaseModel carries no DeletedAt: relationship rows are hard deleted so a
// removed favorite or review never holds its (user_id, artist_id) key.
type BaseModel struct {
	ID        int       `gorm:"type:int;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                    json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                    json:"updatedAt"`
}
