package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription represents a user subscribing to a channel, the
// (subscriber_id, channel_id) pair is unique
type Subscription struct {
	ID           *uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	CreatedAt    *time.Time `gorm:"not null;default:now()"`
	SubscriberID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_subscriptions_pair;not null"`
	ChannelID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_subscriptions_pair;not null"`
}
