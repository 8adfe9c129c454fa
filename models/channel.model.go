package models

import (
	"time"

	"github.com/google/uuid"
)

// Channel represents a channel owned by a single user
type Channel struct {
	ID         *uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	CreatedAt  *time.Time `gorm:"not null;default:now()"`
	UpdatedAt  *time.Time `gorm:"not null;default:now()"`
	OwnerID    *uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name       string     `gorm:"type:varchar(30);not null"`
	About      string     `gorm:"type:varchar(200);not null"`
	CoverURL   string     `gorm:"default:null"`
	Categories []Category `gorm:"many2many:channel_categories"`
}
