package schemas

import (
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
)

// ChannelProfile is the viewer relative read model of a channel
type ChannelProfile struct {
	ID              *uuid.UUID `json:"id"`
	Name            string     `json:"name"`
	About           string     `json:"about"`
	CoverURL        string     `json:"cover_url"`
	OwnerUsername   string     `json:"owner_username"`
	OwnerAvatarURL  string     `json:"owner_avatar_url"`
	SubscriberCount int64      `json:"subscriber_count"`
	VideoCount      int64      `json:"video_count"`
	IsSubscribed    bool       `json:"is_subscribed"`
}

// UserProfile is the self profile of a user with the channel summary
type UserProfile struct {
	User              User       `json:"user"`
	ChannelID         *uuid.UUID `json:"channel_id,omitempty"`
	ChannelName       string     `json:"channel_name,omitempty"`
	SubscriptionCount int64      `json:"subscription_count"`
}

// WatchHistoryItem is the reduced projection of a watched video
type WatchHistoryItem struct {
	ID        *uuid.UUID `json:"id"`
	Title     string     `json:"title"`
	Thumbnail string     `json:"thumbnail"`
	VideoURL  string     `json:"video_url"`
}

// FilterChannel is a function that is used to filter the channel model to a
// public format
func FilterChannel(channel models.Channel) map[string]interface{} {
	categories := make([]string, 0, len(channel.Categories))
	for _, category := range channel.Categories {
		categories = append(categories, category.Name)
	}

	return map[string]interface{}{
		"id":         channel.ID,
		"name":       channel.Name,
		"about":      channel.About,
		"cover_url":  channel.CoverURL,
		"categories": categories,
	}
}
