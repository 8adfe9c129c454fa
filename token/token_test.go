package token

import (
	"testing"
	"time"

	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
)

func testEnv() *config.Env {
	return &config.Env{
		AccessTokenSecret:   "access-token-secret",
		RefreshTokenSecret:  "refresh-token-secret",
		AccessTokenExpires:  15 * time.Minute,
		RefreshTokenExpires: 24 * time.Hour,
	}
}

func testUser() models.User {
	uid := uuid.New()
	return models.User{
		ID:       &uid,
		Username: "alice",
		Email:    "a@x.com",
	}
}

func TestAccessTokenCreateAndValidate(t *testing.T) {
	t.Parallel()

	env := testEnv()
	user := testUser()

	accessTokenS := AccessToken{Env: env}

	tokenDetails, err := accessTokenS.Create(user)
	if err != nil {
		t.Fatalf("failed to create the access token : %v", err)
	}

	claims, err := accessTokenS.Validate(*tokenDetails.Token)
	if err != nil {
		t.Fatalf("failed to validate the access token : %v", err)
	}

	if claims.UserID != *user.ID {
		t.Fatalf("user ID mismatch : got %s want %s", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Fatalf("email mismatch : got %s want %s", claims.Email, user.Email)
	}
	if claims.Username != user.Username {
		t.Fatalf("username mismatch : got %s want %s", claims.Username, user.Username)
	}
	if claims.TokenUUID != tokenDetails.TokenUUID {
		t.Fatalf("token uuid mismatch : got %s want %s", claims.TokenUUID, tokenDetails.TokenUUID)
	}
}

func TestAccessTokenExpired(t *testing.T) {
	t.Parallel()

	env := testEnv()
	env.AccessTokenExpires = -1 * time.Second
	user := testUser()

	accessTokenS := AccessToken{Env: env}

	tokenDetails, err := accessTokenS.Create(user)
	if err != nil {
		t.Fatalf("failed to create the access token : %v", err)
	}

	_, err = accessTokenS.Validate(*tokenDetails.Token)
	if err == nil {
		t.Fatalf("expected an error for the expired access token, got nil")
	}
}

func TestRefreshTokenWrongSecret(t *testing.T) {
	t.Parallel()

	env := testEnv()
	user := testUser()

	refreshTokenS := RefreshToken{Env: env}

	tokenDetails, err := refreshTokenS.Create(user)
	if err != nil {
		t.Fatalf("failed to create the refresh token : %v", err)
	}

	accessTokenS := AccessToken{Env: env}
	_, err = accessTokenS.Validate(*tokenDetails.Token)
	if err == nil {
		t.Fatalf("expected an error when validating with the wrong secret, got nil")
	}
}

func TestValidateMalformedToken(t *testing.T) {
	t.Parallel()

	accessTokenS := AccessToken{Env: testEnv()}

	_, err := accessTokenS.Validate("not.a.jwt")
	if err == nil {
		t.Fatalf("expected an error for the malformed token, got nil")
	}
}
