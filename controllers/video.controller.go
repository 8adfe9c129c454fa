package controllers

import (
	"fmt"
	"os"
	"strings"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/anand-jaiswal-IN/youtube-clone/schemas"
	"github.com/anand-jaiswal-IN/youtube-clone/services"
	"github.com/anand-jaiswal-IN/youtube-clone/session"
	"github.com/anand-jaiswal-IN/youtube-clone/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const thumbnailSizeLimit = 100 * 1000

// Video is a struct that contains video controllers
type Video struct {
	Conn *connect.Connector
	Env  *config.Env
}

func ownChannelID(c *fiber.Ctx) (uuid.UUID, bool) {
	channelID, ok := c.Locals("channel_id").(uuid.UUID)
	return channelID, ok
}

func saveTemp(c *fiber.Ctx, field string) (localPath, contentType string, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", "", err
	}

	localPath = fmt.Sprintf("%s%c%s-%s", os.TempDir(), os.PathSeparator, uuid.NewString(), fileHeader.Filename)
	err = c.SaveFile(fileHeader, localPath)
	if err != nil {
		return "", "", err
	}

	return localPath, fileHeader.Header.Get("Content-Type"), nil
}

// Upload is a function that is used to upload a new video to the channel of the
// logged in user, the video file is proxied to the media bucket and the local
// temp file is removed on both paths
func (v *Video) Upload(c *fiber.Ctx) error {
	channelID, ok := ownChannelID(c)
	if !ok {
		return errors.NoOwnChannel(c)
	}

	payload := struct {
		Title       string   `validate:"required,min=3,max=70"`
		Description string   `validate:"required,min=3,max=2000"`
		Duration    string   `validate:"omitempty,numeric,max=12"`
		Categories  []string `validate:"required,min=1,max=3"`
	}{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Duration:    strings.TrimSpace(c.FormValue("duration")),
		Categories:  strings.Split(c.FormValue("categories"), ","),
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	categoryS := services.Category{Conn: v.Conn}
	categories, err := categoryS.GetByNames(c.Context(), payload.Categories)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.InvalidCategory(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	localPath, contentType, err := saveTemp(c, "video_file")
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	media := utils.Media{Conn: v.Conn, Env: v.Env}
	videoURL, err := media.Upload(localPath, "videos", contentType)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	videoS := services.Video{Conn: v.Conn}
	video, err := videoS.Create(c.Context(), models.Video{
		ChannelID:   &channelID,
		Title:       payload.Title,
		Description: payload.Description,
		VideoURL:    videoURL,
		Duration:    payload.Duration,
		Categories:  categories,
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.Ok(
		fiber.StatusCreated,
		video,
		"video uploaded successfully",
	))
}

// Get is a function that is used to get a video, viewing a published video records
// the view of the logged in user exactly once
func (v *Video) Get(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	videoID, err := uuid.Parse(c.Params("videoID"))
	if err != nil {
		return errors.BadRequest(c)
	}

	videoS := services.Video{Conn: v.Conn}
	video, err := videoS.GetByID(c.Context(), videoID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.VideoNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	if !video.IsPublished {
		channelS := services.Channel{Conn: v.Conn}
		channel, err := channelS.GetByOwner(c.Context(), user.UserID)
		if err != nil || *channel.ID != *video.ChannelID {
			return errors.VideoNotFound(c)
		}
	} else {
		err = videoS.RecordView(c.Context(), videoID, user.UserID)
		if err != nil {
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	viewCount, err := videoS.ViewCount(c.Context(), videoID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(fiber.StatusOK, fiber.Map{
		"video": video,
		"views": viewCount,
	}, "video found"))
}

func (v *Video) ownedVideo(c *fiber.Ctx) (*models.Video, error) {
	channelID, ok := ownChannelID(c)
	if !ok {
		return nil, errors.ErrNoOwnChannel
	}

	videoID, err := uuid.Parse(c.Params("videoID"))
	if err != nil {
		return nil, errors.ErrBadRequest
	}

	videoS := services.Video{Conn: v.Conn}
	video, err := videoS.GetByID(c.Context(), videoID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrVideoNotFound
		}

		return nil, err
	}

	if *video.ChannelID != channelID {
		return nil, errors.ErrVideoNotFound
	}

	return video, nil
}

// TogglePublish is a function that is used to flip the published state of a video
// owned by the channel of the logged in user
func (v *Video) TogglePublish(c *fiber.Ctx) error {
	video, err := v.ownedVideo(c)
	if err != nil {
		switch err {
		case errors.ErrNoOwnChannel:
			return errors.NoOwnChannel(c)
		case errors.ErrBadRequest:
			return errors.BadRequest(c)
		case errors.ErrVideoNotFound:
			return errors.VideoNotFound(c)
		default:
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	videoS := services.Video{Conn: v.Conn}
	updated, err := videoS.TogglePublish(c.Context(), *video.ID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(
		fiber.StatusOK,
		updated,
		"video publish state toggled",
	))
}

// ChangeThumbnail is a function that is used to change the thumbnail of a video
// owned by the channel of the logged in user
func (v *Video) ChangeThumbnail(c *fiber.Ctx) error {
	video, err := v.ownedVideo(c)
	if err != nil {
		switch err {
		case errors.ErrNoOwnChannel:
			return errors.NoOwnChannel(c)
		case errors.ErrBadRequest:
			return errors.BadRequest(c)
		case errors.ErrVideoNotFound:
			return errors.VideoNotFound(c)
		default:
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return errors.BadRequest(c)
	}
	if fileHeader.Size > thumbnailSizeLimit {
		return errors.FileTooLarge(c)
	}

	localPath, contentType, err := saveTemp(c, "thumbnail")
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	media := utils.Media{Conn: v.Conn, Env: v.Env}
	thumbnailURL, err := media.Upload(localPath, "thumbnails", contentType)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	videoS := services.Video{Conn: v.Conn}
	updated, err := videoS.UpdateThumbnail(c.Context(), *video.ID, thumbnailURL)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(
		fiber.StatusOK,
		updated,
		"video thumbnail updated",
	))
}

// AllChannelVideos is a function that is used to list all the videos of the
// channel of the logged in user, published or not
func (v *Video) AllChannelVideos(c *fiber.Ctx) error {
	channelID, ok := ownChannelID(c)
	if !ok {
		return errors.NoOwnChannel(c)
	}

	videoS := services.Video{Conn: v.Conn}
	videos, err := videoS.GetChannelVideos(c.Context(), channelID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(
		fiber.StatusOK,
		videos,
		"channel videos fetched successfully",
	))
}
