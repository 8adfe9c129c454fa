package services

import (
	"context"

	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
)

// Channel contains all the channel related services
type Channel struct {
	Conn *connect.Connector
}

// Create is a function that is used to create a new channel, the owner column
// carries a unique index so a second channel for the same user fails with a
// duplicate key error
func (ch *Channel) Create(ctx context.Context, channel models.Channel) (models.Channel, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	err := ch.Conn.DB.WithContext(ctx).Create(&channel).Error
	if err != nil {
		return models.Channel{}, err
	}

	return channel, nil
}

// GetByOwner is a function that is used to get the channel owned by the given user
func (ch *Channel) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Channel, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var channel models.Channel
	err := ch.Conn.DB.WithContext(ctx).Where(&models.Channel{
		OwnerID: &ownerID,
	}).First(&channel).Error
	if err != nil {
		return nil, err
	}

	return &channel, nil
}

// GetByID is a function that is used to get the channel with the given ID
func (ch *Channel) GetByID(ctx context.Context, id uuid.UUID) (*models.Channel, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var channel models.Channel
	err := ch.Conn.DB.WithContext(ctx).Preload("Categories").Where(&models.Channel{
		ID: &id,
	}).First(&channel).Error
	if err != nil {
		return nil, err
	}

	return &channel, nil
}
