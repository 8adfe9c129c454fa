package services

import (
	"context"

	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
)

// Subscription contains all the subscription related services
type Subscription struct {
	Conn *connect.Connector
}

// Subscribe is a function that is used to subscribe the user to the channel,
// the (subscriber, channel) pair carries a unique index so a duplicate
// subscription fails with a duplicate key error
func (s *Subscription) Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return s.Conn.DB.WithContext(ctx).Create(&models.Subscription{
		SubscriberID: &subscriberID,
		ChannelID:    &channelID,
	}).Error
}

// Unsubscribe is a function that is used to remove the subscription, it is idempotent
func (s *Subscription) Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return s.Conn.DB.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&models.Subscription{}).Error
}
