// Package token is used to create and validate access and refresh tokens
package token

import (
	"fmt"
	"time"

	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Details is a struct that contains the data that need to be used when creating tokens
type Details struct {
	Token     *string
	ExpiresIn *int64
	TokenUUID string
	UserID    string
}

// Claims is a struct that contains the claims extracted from a validated token
type Claims struct {
	UserID    uuid.UUID
	Email     string
	Username  string
	TokenUUID string
}

func create(user models.User, secret string, expires time.Duration) (tokenDetails *Details, err error) {
	now := time.Now().UTC()

	tokenUUID, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}

	tokenDetails = &Details{
		ExpiresIn: new(int64),
		Token:     new(string),
	}

	*tokenDetails.ExpiresIn = now.Add(expires).Unix()
	tokenDetails.TokenUUID = tokenUUID.String()
	tokenDetails.UserID = user.ID.String()

	claims := make(jwt.MapClaims)
	claims["sub"] = user.ID.String()
	claims["email"] = user.Email
	claims["username"] = user.Username
	claims["token_uuid"] = tokenDetails.TokenUUID
	claims["exp"] = *tokenDetails.ExpiresIn
	claims["iat"] = now.Unix()
	claims["nbf"] = now.Unix()

	*tokenDetails.Token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return tokenDetails, nil
}

func validate(tokenStr, secret string) (claims *Claims, err error) {
	parsedToken, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method : %s", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, fmt.Errorf("validate : invalid token")
	}

	userID, err := uuid.Parse(fmt.Sprint(mapClaims["sub"]))
	if err != nil {
		return nil, err
	}

	return &Claims{
		UserID:    userID,
		Email:     fmt.Sprint(mapClaims["email"]),
		Username:  fmt.Sprint(mapClaims["username"]),
		TokenUUID: fmt.Sprint(mapClaims["token_uuid"]),
	}, nil
}

// AccessToken is a struct that is used to perform operations on access tokens
type AccessToken struct {
	Env *config.Env
}

// Create is a function that is used to create the access token
func (a *AccessToken) Create(user models.User) (tokenDetails *Details, err error) {
	return create(user, a.Env.AccessTokenSecret, a.Env.AccessTokenExpires)
}

// Validate is a function that is used to validate the access token
func (a *AccessToken) Validate(tokenStr string) (claims *Claims, err error) {
	return validate(tokenStr, a.Env.AccessTokenSecret)
}

// RefreshToken is a struct that is used to perform operations on refresh tokens
type RefreshToken struct {
	Env *config.Env
}

// Create a refresh token
func (r *RefreshToken) Create(user models.User) (tokenDetails *Details, err error) {
	return create(user, r.Env.RefreshTokenSecret, r.Env.RefreshTokenExpires)
}

// Validate is a function that is used to validate the refresh token
func (r *RefreshToken) Validate(tokenStr string) (claims *Claims, err error) {
	return validate(tokenStr, r.Env.RefreshTokenSecret)
}
