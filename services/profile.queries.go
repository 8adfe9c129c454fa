package services

import (
	"context"

	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
)

// ProfileQueries is the relational implementation of the queries the profile
// composer needs
type ProfileQueries struct {
	Conn *connect.Connector
}

// UserByUsername resolves the user with the given username
func (q *ProfileQueries) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	userS := User{Conn: q.Conn}
	return userS.GetUserWithUsername(ctx, username)
}

// UserByID resolves the user with the given ID
func (q *ProfileQueries) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	userS := User{Conn: q.Conn}
	return userS.GetByID(ctx, id)
}

// ChannelByOwner resolves the channel owned by the given user
func (q *ProfileQueries) ChannelByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Channel, error) {
	channelS := Channel{Conn: q.Conn}
	return channelS.GetByOwner(ctx, ownerID)
}

// SubscriberCount counts the subscription edges pointing at the channel
func (q *ProfileQueries) SubscriberCount(ctx context.Context, channelID uuid.UUID) (int64, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var count int64
	err := q.Conn.DB.WithContext(ctx).Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// IsSubscribed reports wether a subscription edge exists between the viewer and the channel
func (q *ProfileQueries) IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var count int64
	err := q.Conn.DB.WithContext(ctx).Model(&models.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// SubscriptionCount counts the channels the user subscribes to
func (q *ProfileQueries) SubscriptionCount(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var count int64
	err := q.Conn.DB.WithContext(ctx).Model(&models.Subscription{}).
		Where("subscriber_id = ?", subscriberID).Count(&count).Error
	return count, err
}

// VideoCount counts the videos owned by the channel
func (q *ProfileQueries) VideoCount(ctx context.Context, channelID uuid.UUID) (int64, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var count int64
	err := q.Conn.DB.WithContext(ctx).Model(&models.Video{}).
		Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// WatchedVideos returns the videos whose view set contains the user
func (q *ProfileQueries) WatchedVideos(ctx context.Context, userID uuid.UUID) ([]models.Video, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var videos []models.Video
	err := q.Conn.DB.WithContext(ctx).
		Joins("JOIN video_views ON video_views.video_id = videos.id").
		Where("video_views.user_id = ?", userID).
		Order("video_views.viewed_at DESC").
		Find(&videos).Error
	return videos, err
}
