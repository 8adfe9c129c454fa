// Package middleware contains the request middlewares
package middleware

import (
	"strings"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/services"
	"github.com/anand-jaiswal-IN/youtube-clone/session"
	"github.com/anand-jaiswal-IN/youtube-clone/token"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Auth contains auth related middlewares
type Auth struct {
	Conn *connect.Connector
	Env  *config.Env
}

// CheckAdmin is a function that is used to check wether the user is a Admin user
func (a *Auth) CheckAdmin(c *fiber.Ctx) error {
	var adminToken string
	authorization := c.Get("Authorization")

	if strings.HasPrefix(authorization, "Bearer ") {
		adminToken = strings.TrimPrefix(authorization, "Bearer ")
	} else {
		return errors.Unauthorized(c)
	}

	if adminToken != a.Env.AdminSecret {
		return errors.Unauthorized(c)
	}

	return c.Next()
}

// Check is a function that is used to check wether the user is authenticated
func (a *Auth) Check(c *fiber.Ctx) error {
	var accessToken string
	authorization := c.Get("Authorization")

	if strings.HasPrefix(authorization, "Bearer ") {
		accessToken = strings.TrimPrefix(authorization, "Bearer ")
	} else if c.Cookies("access_token") != "" {
		accessToken = c.Cookies("access_token")
	} else {
		return errors.AccessTokenNotProvided(c)
	}

	accessTokenS := token.AccessToken{Env: a.Env}

	claims, err := accessTokenS.Validate(accessToken)
	if err != nil {
		if isExpired := (errors.CheckTokenError{}.Expired(err)); isExpired {
			return errors.AccessTokenExpired(c)
		}

		return errors.Unauthorized(c)
	}

	session.Add(c, claims)

	return c.Next()
}

// CheckOptional is a function that attaches the user identity when a valid access
// token is present and lets the request through anonymously otherwise
func (a *Auth) CheckOptional(c *fiber.Ctx) error {
	var accessToken string
	authorization := c.Get("Authorization")

	if strings.HasPrefix(authorization, "Bearer ") {
		accessToken = strings.TrimPrefix(authorization, "Bearer ")
	} else {
		accessToken = c.Cookies("access_token")
	}

	if accessToken == "" {
		return c.Next()
	}

	accessTokenS := token.AccessToken{Env: a.Env}
	claims, err := accessTokenS.Validate(accessToken)
	if err != nil {
		return c.Next()
	}

	session.Add(c, claims)

	return c.Next()
}

// CheckChannel is a function that is used to check wether the authenticated user
// owns a channel, the channel ID is attached to the request on success
func (a *Auth) CheckChannel(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	channelS := services.Channel{Conn: a.Conn}
	channel, err := channelS.GetByOwner(c.Context(), user.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NoOwnChannel(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	c.Locals("channel_id", *channel.ID)

	return c.Next()
}
