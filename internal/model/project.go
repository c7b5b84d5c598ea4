package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project belongs to a user by a loose owner reference. UserID is not a
// foreign key; referential integrity is not enforced, matching the wire
// contract where the owner id is whatever the caller supplied.
type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"_id"`
	UserID      string    `gorm:"size:36;index" json:"userId"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
