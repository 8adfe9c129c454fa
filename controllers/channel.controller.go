package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/anand-jaiswal-IN/youtube-clone/schemas"
	"github.com/anand-jaiswal-IN/youtube-clone/services"
	"github.com/anand-jaiswal-IN/youtube-clone/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Channel is a struct that contains channel controllers
type Channel struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Create is a function that is used to create the channel of the logged in user,
// a user owns at most one channel
func (ch *Channel) Create(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	var payload struct {
		Name       string   `json:"name" validate:"required,min=4,max=30"`
		About      string   `json:"about" validate:"required,min=11,max=200"`
		Categories []string `json:"categories" validate:"required,min=1,max=3"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	if err := v.Struct(payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	categoryS := services.Category{Conn: ch.Conn}
	categories, err := categoryS.GetByNames(c.Context(), payload.Categories)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.InvalidCategory(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	channelS := services.Channel{Conn: ch.Conn}
	channel, err := channelS.Create(c.Context(), models.Channel{
		OwnerID:    &user.UserID,
		Name:       payload.Name,
		About:      payload.About,
		Categories: categories,
	})
	if err != nil {
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			return errors.ChannelAlreadyExists(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.Ok(
		fiber.StatusCreated,
		schemas.FilterChannel(channel),
		"channel created successfully",
	))
}

// Profile is a function that is used to get the viewer relative channel profile
// of the channel owned by the user with the given username
func (ch *Channel) Profile(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return errors.BadRequest(c)
	}

	var viewer *uuid.UUID
	if user := session.Get(c); user != nil {
		viewer = &user.UserID
	}

	profileS := services.Profile{
		Store: &services.ProfileQueries{Conn: ch.Conn},
	}

	profile, err := profileS.ChannelProfile(c.Context(), username, viewer)
	if err != nil {
		switch err {
		case errors.ErrUserNotFound:
			return errors.UserNotFound(c)
		case errors.ErrChannelNotFound:
			return errors.ChannelNotFound(c)
		default:
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(
		fiber.StatusOK,
		profile,
		"channel profile fetched successfully",
	))
}

func (ch *Channel) resolveChannel(c *fiber.Ctx, username string) (*models.Channel, error) {
	userS := services.User{Conn: ch.Conn}
	owner, err := userS.GetUserWithUsername(c.Context(), username)
	if err != nil {
		return nil, err
	}

	channelS := services.Channel{Conn: ch.Conn}
	return channelS.GetByOwner(c.Context(), *owner.ID)
}

// Subscribe is a function that is used to subscribe the logged in user to the
// channel owned by the user with the given username
func (ch *Channel) Subscribe(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	username := c.Params("username")
	if username == "" {
		return errors.BadRequest(c)
	}

	channel, err := ch.resolveChannel(c, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ChannelNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	subscriptionS := services.Subscription{Conn: ch.Conn}
	err = subscriptionS.Subscribe(c.Context(), user.UserID, *channel.ID)
	if err != nil {
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			return errors.AlreadySubscribed(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// Unsubscribe is a function that is used to remove the subscription of the logged
// in user from the channel owned by the user with the given username
func (ch *Channel) Unsubscribe(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	username := c.Params("username")
	if username == "" {
		return errors.BadRequest(c)
	}

	channel, err := ch.resolveChannel(c, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ChannelNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	subscriptionS := services.Subscription{Conn: ch.Conn}
	err = subscriptionS.Unsubscribe(c.Context(), user.UserID, *channel.ID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}
