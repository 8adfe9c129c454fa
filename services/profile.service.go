package services

import (
	"context"

	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/anand-jaiswal-IN/youtube-clone/schemas"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileStore is the set of queries the profile composer composes over
type ProfileStore interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ChannelByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Channel, error)
	SubscriberCount(ctx context.Context, channelID uuid.UUID) (int64, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	SubscriptionCount(ctx context.Context, subscriberID uuid.UUID) (int64, error)
	VideoCount(ctx context.Context, channelID uuid.UUID) (int64, error)
	WatchedVideos(ctx context.Context, userID uuid.UUID) ([]models.Video, error)
}

// Profile composes viewer relative read models of channels and users by
// joining the normalized relations at query time
type Profile struct {
	Store ProfileStore
}

// ChannelProfile is a function that is used to compose the public channel profile
// of the channel owned by the user with the given username. The viewer may be nil
// in which case is_subscribed is always false
func (p *Profile) ChannelProfile(ctx context.Context, username string, viewer *uuid.UUID) (*schemas.ChannelProfile, error) {
	owner, err := p.Store.UserByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}

		return nil, err
	}

	channel, err := p.Store.ChannelByOwner(ctx, *owner.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrChannelNotFound
		}

		return nil, err
	}

	subscriberCount, err := p.Store.SubscriberCount(ctx, *channel.ID)
	if err != nil {
		return nil, err
	}

	videoCount, err := p.Store.VideoCount(ctx, *channel.ID)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewer != nil {
		isSubscribed, err = p.Store.IsSubscribed(ctx, *viewer, *channel.ID)
		if err != nil {
			return nil, err
		}
	}

	return &schemas.ChannelProfile{
		ID:              channel.ID,
		Name:            channel.Name,
		About:           channel.About,
		CoverURL:        channel.CoverURL,
		OwnerUsername:   owner.Username,
		OwnerAvatarURL:  owner.AvatarURL,
		SubscriberCount: subscriberCount,
		VideoCount:      videoCount,
		IsSubscribed:    isSubscribed,
	}, nil
}

// UserProfile is a function that is used to compose the profile of the user with
// the channel summary and the count of the channels the user subscribes to, the
// password and the refresh token are never projected
func (p *Profile) UserProfile(ctx context.Context, userID uuid.UUID) (*schemas.UserProfile, error) {
	user, err := p.Store.UserByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}

		return nil, err
	}

	subscriptionCount, err := p.Store.SubscriptionCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := schemas.UserProfile{
		User:              schemas.FilterUser(*user),
		SubscriptionCount: subscriptionCount,
	}

	channel, err := p.Store.ChannelByOwner(ctx, userID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if channel != nil {
		profile.ChannelID = channel.ID
		profile.ChannelName = channel.Name
	}

	return &profile, nil
}

// WatchHistory is a function that is used to get the videos whose view set
// contains the user, reduced to the watch history projection
func (p *Profile) WatchHistory(ctx context.Context, userID uuid.UUID) ([]schemas.WatchHistoryItem, error) {
	videos, err := p.Store.WatchedVideos(ctx, userID)
	if err != nil {
		return nil, err
	}

	history := make([]schemas.WatchHistoryItem, 0, len(videos))
	for _, video := range videos {
		history = append(history, schemas.WatchHistoryItem{
			ID:        video.ID,
			Title:     video.Title,
			Thumbnail: video.Thumbnail,
			VideoURL:  video.VideoURL,
		})
	}

	return history, nil
}
