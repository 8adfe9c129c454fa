package controllers

import (
	"strings"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/schemas"
	"github.com/anand-jaiswal-IN/youtube-clone/services"
	"github.com/anand-jaiswal-IN/youtube-clone/session"
	"github.com/anand-jaiswal-IN/youtube-clone/validate"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// User is a struct that contains user controllers
type User struct {
	Conn *connect.Connector
	Env  *config.Env
}

func (u *User) profile() *services.Profile {
	return &services.Profile{
		Store: &services.ProfileQueries{Conn: u.Conn},
	}
}

// CheckUsername is a function that is used to check wether the username is available
func (u *User) CheckUsername(c *fiber.Ctx) error {
	var payload struct {
		Username string `json:"username" validate:"required,min=3,max=20,validate_username"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	v.RegisterValidation("validate_username", validate.Username)
	if err := v.Struct(payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	userS := services.User{Conn: u.Conn}
	isAvailable := false
	_, err := userS.GetUserWithUsername(c.Context(), strings.ToLower(payload.Username))
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error(err)
			return errors.InternalServerErr(c)
		}

		isAvailable = true
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(fiber.StatusOK, fiber.Map{
		"is_available": isAvailable,
	}, "username availability checked"))
}

// GetProfile is a function that is used to get the profile of the logged in user
func (u *User) GetProfile(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	profile, err := u.profile().UserProfile(c.Context(), user.UserID)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return errors.UserNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(
		fiber.StatusOK,
		profile,
		"user profile fetched successfully",
	))
}

// WatchHistory is a function that is used to get the watch history of the logged in user
func (u *User) WatchHistory(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	history, err := u.profile().WatchHistory(c.Context(), user.UserID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(
		fiber.StatusOK,
		history,
		"watch history fetched successfully",
	))
}
