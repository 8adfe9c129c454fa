package schemas

import (
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
)

// User is schema that contians user freindly user details
type User struct {
	ID        *uuid.UUID `json:"id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	AvatarURL string     `json:"avatar_url"`
	CoverURL  string     `json:"cover_url"`
	Verified  bool       `json:"verified"`
}

// FilterUser is a function that is used to filter the user model to a user freindly format
// the password and the refresh token are never included
func FilterUser(user models.User) User {
	return User{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CoverURL:  user.CoverURL,
		Verified:  user.Verified,
	}
}
