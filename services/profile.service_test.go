package services

import (
	"context"
	"testing"

	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeProfileStore struct {
	users         map[string]*models.User
	channels      map[uuid.UUID]*models.Channel
	subscriptions map[uuid.UUID][]uuid.UUID
	videos        map[uuid.UUID][]models.Video
	watched       []models.Video
}

func (f *fakeProfileStore) UserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeProfileStore) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.users {
		if *user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileStore) ChannelByOwner(_ context.Context, ownerID uuid.UUID) (*models.Channel, error) {
	channel, ok := f.channels[ownerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return channel, nil
}

func (f *fakeProfileStore) SubscriberCount(_ context.Context, channelID uuid.UUID) (int64, error) {
	return int64(len(f.subscriptions[channelID])), nil
}

func (f *fakeProfileStore) IsSubscribed(_ context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	for _, id := range f.subscriptions[channelID] {
		if id == subscriberID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProfileStore) SubscriptionCount(_ context.Context, subscriberID uuid.UUID) (int64, error) {
	var count int64
	for _, subscribers := range f.subscriptions {
		for _, id := range subscribers {
			if id == subscriberID {
				count++
			}
		}
	}
	return count, nil
}

func (f *fakeProfileStore) VideoCount(_ context.Context, channelID uuid.UUID) (int64, error) {
	return int64(len(f.videos[channelID])), nil
}

func (f *fakeProfileStore) WatchedVideos(_ context.Context, _ uuid.UUID) ([]models.Video, error) {
	return f.watched, nil
}

func newFakeProfileStore() (*fakeProfileStore, *models.User, *models.Channel) {
	aliceID := uuid.New()
	channelID := uuid.New()

	alice := models.User{
		ID:       &aliceID,
		Username: "alice",
		Email:    "a@x.com",
		Password: "$2a$10$not-the-plaintext",
	}
	channel := models.Channel{
		ID:      &channelID,
		OwnerID: &aliceID,
		Name:    "Tea Talks",
		About:   "a channel about tea",
	}

	store := fakeProfileStore{
		users:         map[string]*models.User{"alice": &alice},
		channels:      map[uuid.UUID]*models.Channel{aliceID: &channel},
		subscriptions: make(map[uuid.UUID][]uuid.UUID),
		videos:        make(map[uuid.UUID][]models.Video),
	}

	return &store, &alice, &channel
}

func TestChannelProfileAnonymousViewer(t *testing.T) {
	t.Parallel()

	store, _, _ := newFakeProfileStore()
	profileS := Profile{Store: store}

	profile, err := profileS.ChannelProfile(context.Background(), "alice", nil)
	if err != nil {
		t.Fatalf("failed to compose the channel profile : %v", err)
	}

	if profile.IsSubscribed {
		t.Fatalf("an anonymous viewer can never be subscribed")
	}
	if profile.SubscriberCount != 0 {
		t.Fatalf("subscriber count mismatch : got %d want 0", profile.SubscriberCount)
	}
	if profile.Name != "Tea Talks" {
		t.Fatalf("channel name mismatch : got %s", profile.Name)
	}
	if profile.OwnerUsername != "alice" {
		t.Fatalf("owner username mismatch : got %s", profile.OwnerUsername)
	}
}

func TestChannelProfileSubscribedViewer(t *testing.T) {
	t.Parallel()

	store, _, channel := newFakeProfileStore()
	bobID := uuid.New()
	store.subscriptions[*channel.ID] = []uuid.UUID{bobID}

	profileS := Profile{Store: store}

	profile, err := profileS.ChannelProfile(context.Background(), "alice", &bobID)
	if err != nil {
		t.Fatalf("failed to compose the channel profile : %v", err)
	}

	if !profile.IsSubscribed {
		t.Fatalf("the subscribed viewer must be reported as subscribed")
	}
	if profile.SubscriberCount != 1 {
		t.Fatalf("subscriber count mismatch : got %d want 1", profile.SubscriberCount)
	}

	carolID := uuid.New()
	profile, err = profileS.ChannelProfile(context.Background(), "alice", &carolID)
	if err != nil {
		t.Fatalf("failed to compose the channel profile : %v", err)
	}
	if profile.IsSubscribed {
		t.Fatalf("a viewer without a subscription edge must not be reported as subscribed")
	}
}

func TestChannelProfileVideoCount(t *testing.T) {
	t.Parallel()

	store, _, channel := newFakeProfileStore()
	videoID := uuid.New()
	store.videos[*channel.ID] = []models.Video{{ID: &videoID, ChannelID: channel.ID}}

	profileS := Profile{Store: store}

	profile, err := profileS.ChannelProfile(context.Background(), "alice", nil)
	if err != nil {
		t.Fatalf("failed to compose the channel profile : %v", err)
	}

	if profile.VideoCount != 1 {
		t.Fatalf("video count mismatch : got %d want 1", profile.VideoCount)
	}
}

func TestChannelProfileNotFound(t *testing.T) {
	t.Parallel()

	store, alice, _ := newFakeProfileStore()
	profileS := Profile{Store: store}

	_, err := profileS.ChannelProfile(context.Background(), "nobody", nil)
	if err != errors.ErrUserNotFound {
		t.Fatalf("expected user not found : got %v", err)
	}

	delete(store.channels, *alice.ID)
	_, err = profileS.ChannelProfile(context.Background(), "alice", nil)
	if err != errors.ErrChannelNotFound {
		t.Fatalf("expected channel not found : got %v", err)
	}
}

func TestUserProfileNeverProjectsSecrets(t *testing.T) {
	t.Parallel()

	store, alice, _ := newFakeProfileStore()
	refreshToken := "some.refresh.token"
	alice.RefreshToken = &refreshToken

	profileS := Profile{Store: store}

	profile, err := profileS.UserProfile(context.Background(), *alice.ID)
	if err != nil {
		t.Fatalf("failed to compose the user profile : %v", err)
	}

	if profile.User.Username != "alice" || profile.User.Email != "a@x.com" {
		t.Fatalf("public fields mismatch : %+v", profile.User)
	}
	if profile.ChannelName != "Tea Talks" {
		t.Fatalf("channel summary mismatch : got %s", profile.ChannelName)
	}
}

func TestWatchHistoryProjection(t *testing.T) {
	t.Parallel()

	store, alice, channel := newFakeProfileStore()
	videoID := uuid.New()
	store.watched = []models.Video{{
		ID:          &videoID,
		ChannelID:   channel.ID,
		Title:       "Brewing 101",
		Description: "should not be projected into the history item",
		VideoURL:    "https://media.example.com/videos/brewing.mp4",
		Thumbnail:   "https://media.example.com/thumbnails/brewing.png",
	}}

	profileS := Profile{Store: store}

	history, err := profileS.WatchHistory(context.Background(), *alice.ID)
	if err != nil {
		t.Fatalf("failed to get the watch history : %v", err)
	}

	if len(history) != 1 {
		t.Fatalf("watch history length mismatch : got %d want 1", len(history))
	}
	item := history[0]
	if *item.ID != videoID || item.Title != "Brewing 101" {
		t.Fatalf("watch history projection mismatch : %+v", item)
	}
	if item.VideoURL == "" || item.Thumbnail == "" {
		t.Fatalf("watch history projection is missing the media locators")
	}
}

func TestWatchHistoryEmpty(t *testing.T) {
	t.Parallel()

	store, alice, _ := newFakeProfileStore()
	profileS := Profile{Store: store}

	history, err := profileS.WatchHistory(context.Background(), *alice.ID)
	if err != nil {
		t.Fatalf("failed to get the watch history : %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected an empty watch history : got %d items", len(history))
	}
}
