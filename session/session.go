// Package session contains session related activity
package session

import (
	"github.com/anand-jaiswal-IN/youtube-clone/token"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Add is a function that is used to add ther user details to the session
func Add(c *fiber.Ctx, claims *token.Claims) {
	if claims == nil {
		return
	}

	c.Locals("id", claims.UserID)
	c.Locals("username", claims.Username)
	c.Locals("email", claims.Email)
}

// Get the user details from the session
func Get(c *fiber.Ctx) *token.Claims {
	id, ok := c.Locals("id").(uuid.UUID)
	if !ok {
		return nil
	}

	return &token.Claims{
		UserID:   id,
		Username: c.Locals("username").(string),
		Email:    c.Locals("email").(string),
	}
}
