package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a content category
type Category struct {
	ID          *uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	CreatedAt   *time.Time `gorm:"not null;default:now()"`
	Name        string     `gorm:"type:varchar(30);uniqueIndex;not null"`
	Description string     `gorm:"type:varchar(200);not null"`
	ImageURL    string     `gorm:"default:null"`
}

// SubCategory represents a sub category that belongs to a single category
type SubCategory struct {
	ID          *uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	CreatedAt   *time.Time `gorm:"not null;default:now()"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;not null"`
	Name        string     `gorm:"type:varchar(30);not null"`
	Description string     `gorm:"type:varchar(200);not null"`
	ImageURL    string     `gorm:"default:null"`
}
