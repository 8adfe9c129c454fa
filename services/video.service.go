package services

import (
	"context"

	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// Video contains all the video related services
type Video struct {
	Conn *connect.Connector
}

// Create is a function that is used to create a new video under a channel
func (v *Video) Create(ctx context.Context, video models.Video) (models.Video, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	err := v.Conn.DB.WithContext(ctx).Create(&video).Error
	if err != nil {
		return models.Video{}, err
	}

	return video, nil
}

// GetByID is a function that is used to get the video with the given ID
func (v *Video) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var video models.Video
	err := v.Conn.DB.WithContext(ctx).Preload("Categories").Where(&models.Video{
		ID: &id,
	}).First(&video).Error
	if err != nil {
		return nil, err
	}

	return &video, nil
}

// GetChannelVideos is a function that is used to get all the videos of a channel
func (v *Video) GetChannelVideos(ctx context.Context, channelID uuid.UUID) ([]models.Video, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var videos []models.Video
	err := v.Conn.DB.WithContext(ctx).Where(&models.Video{
		ChannelID: &channelID,
	}).Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// TogglePublish is a function that is used to flip the published state of the video
func (v *Video) TogglePublish(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var video models.Video
	err := v.Conn.DB.WithContext(ctx).Where(&models.Video{
		ID: &id,
	}).First(&video).Error
	if err != nil {
		return nil, err
	}

	err = v.Conn.DB.WithContext(ctx).Model(&video).Update("is_published", !video.IsPublished).Error
	if err != nil {
		return nil, err
	}

	return &video, nil
}

// UpdateThumbnail is a function that is used to update the thumbnail of the video
func (v *Video) UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) (*models.Video, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var video models.Video
	err := v.Conn.DB.WithContext(ctx).Where(&models.Video{
		ID: &id,
	}).First(&video).Error
	if err != nil {
		return nil, err
	}

	err = v.Conn.DB.WithContext(ctx).Model(&video).Update("thumbnail", thumbnailURL).Error
	if err != nil {
		return nil, err
	}

	return &video, nil
}

// RecordView is a function that is used to record that the user viewed the video.
// The insert is ON CONFLICT DO NOTHING against the unique (video, user) pair so
// recording the same view twice, sequentially or concurrently, leaves a single row
func (v *Video) RecordView(ctx context.Context, videoID, userID uuid.UUID) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return v.Conn.DB.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&models.VideoView{
		VideoID: &videoID,
		UserID:  &userID,
	}).Error
}

// ViewCount is a function that is used to count the views of the video
func (v *Video) ViewCount(ctx context.Context, videoID uuid.UUID) (int64, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var count int64
	err := v.Conn.DB.WithContext(ctx).Model(&models.VideoView{}).
		Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
