// Package utils contains the utility packages
package utils

import (
	"time"

	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/token"
	"github.com/gofiber/fiber/v2"
)

// GenerateCookies is a function that is used to set the access and refresh token
// cookies after a successful login or renewal
func GenerateCookies(c *fiber.Ctx, pair *token.Pair, env *config.Env) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   env.AccessTokenMaxAge * 60,
		Secure:   true,
		HTTPOnly: true,
		Domain:   env.CookieDomain,
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   env.RefreshTokenMaxAge * 60,
		Secure:   true,
		HTTPOnly: true,
		Domain:   env.CookieDomain,
	})
}

// DeleteCookies is a funciton that is used to clear the access_token and the
// refresh_token cookies
func DeleteCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour * 24)
	c.Cookie(&fiber.Cookie{
		Name:    "access_token",
		Value:   "",
		Expires: expired,
	})

	c.Cookie(&fiber.Cookie{
		Name:    "refresh_token",
		Value:   "",
		Expires: expired,
	})
}
