package models

import (
	"time"

	"github.com/google/uuid"
)

// Video represents a video that belongs to a channel
type Video struct {
	ID          *uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	CreatedAt   *time.Time `gorm:"not null;default:now()"`
	UpdatedAt   *time.Time `gorm:"not null;default:now()"`
	ChannelID   *uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string     `gorm:"type:varchar(70);not null"`
	Description string     `gorm:"type:varchar(2000);not null"`
	VideoURL    string     `gorm:"not null"`
	Thumbnail   string     `gorm:"default:null"`
	Duration    string     `gorm:"default:null"`
	IsPublished bool       `gorm:"default:false"`
	Categories  []Category `gorm:"many2many:video_categories"`
}

// VideoView represents a single user having viewed a video, the
// (video_id, user_id) pair is unique so a view is recorded at most once
type VideoView struct {
	VideoID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_video_views_pair;not null"`
	UserID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_video_views_pair;not null"`
	ViewedAt *time.Time `gorm:"not null;default:now()"`
}
