package models

import (
	"errors"
	"time"
)

// ErrTokenNotFound is returned when no admin token matches.
var ErrTokenNotFound = errors.New("admin token not found")

// AdminToken is an opaque admin credential valid for a fixed window
// starting at creation.
type AdminToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"size:255;uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *AdminToken) TableName() string {
	return "admin_tokens"
}

// ValidAt reports whether the token is still inside its validity window
// at the given instant.
func (t *AdminToken) ValidAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(t.CreatedAt) < ttl
}
