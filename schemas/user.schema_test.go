package schemas_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/anand-jaiswal-IN/youtube-clone/schemas"
	"github.com/google/uuid"
)

func TestFilterUser(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	refreshToken := "some.refresh.token"
	user := models.User{
		ID:           &uid,
		Name:         "Alice",
		Username:     "alice",
		Email:        "a@x.com",
		Password:     "$2a$10$hashed-and-salted",
		RefreshToken: &refreshToken,
		AvatarURL:    "https://media.example.com/avatars/alice.png",
		Verified:     true,
	}

	filtered := schemas.FilterUser(user)

	if *filtered.ID != uid || filtered.Username != "alice" || filtered.Email != "a@x.com" {
		t.Fatalf("public fields mismatch : %+v", filtered)
	}
	if filtered.Name != "Alice" || filtered.AvatarURL != user.AvatarURL || !filtered.Verified {
		t.Fatalf("public fields mismatch : %+v", filtered)
	}

	body, err := json.Marshal(filtered)
	if err != nil {
		t.Fatalf("failed to marshal the filtered user : %v", err)
	}

	if strings.Contains(string(body), "hashed-and-salted") || strings.Contains(string(body), refreshToken) {
		t.Fatalf("the filtered user leaked a secret : %s", body)
	}
	if strings.Contains(strings.ToLower(string(body)), "password") {
		t.Fatalf("the filtered user carries a password field : %s", body)
	}
}
