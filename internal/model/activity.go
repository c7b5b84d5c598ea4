package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity event actions.
const (
	ActionUserSignup     = "user.signup"
	ActionUserLogin      = "user.login"
	ActionProjectCreated = "project.created"
	ActionProjectDeleted = "project.deleted"
)

// ActivityEvent is an audit record persisted asynchronously through the
// message queue.
type ActivityEvent struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"user_id"`
	Action    string    `gorm:"size:64;not null;index" json:"action"`
	Detail    string    `gorm:"size:255" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *ActivityEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
