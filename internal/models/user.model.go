package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	Username  string    `gorm:"type:varchar(25);primaryKey" json:"username"`
	FirstName string    `gorm:"type:text;not null"          json:"firstName"`
	LastName  string    `gorm:"type:text;not null"          json:"lastName"`
	Email     *string   `gorm:"type:text;uniqueIndex"       json:"email"`
	IsAdmin   bool      `gorm:"type:bool;default:false"     json:"isAdmin"`
	CreatedAt time.Time `gorm:"autoCreateTime"              json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"              json:"updatedAt"`
}

var ErrEmptyUsername = errors.New("username is required")

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return ErrEmptyUsername
	}
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	return nil
}
