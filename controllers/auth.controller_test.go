package controllers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckLogin(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse-battery"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash the password : %v", err)
	}

	tests := []struct {
		name     string
		user     models.User
		password string
		want     error
	}{
		{
			name:     "verified user with the correct password",
			user:     models.User{Password: string(hashed), Verified: true},
			password: "correct-horse-battery",
			want:     nil,
		},
		{
			name:     "wrong password",
			user:     models.User{Password: string(hashed), Verified: true},
			password: "incorrect",
			want:     errors.ErrIncorrectCredentials,
		},
		{
			name:     "unverified email address",
			user:     models.User{Password: string(hashed)},
			password: "correct-horse-battery",
			want:     errors.ErrVerifyYourEmailFirst,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := checkLogin(tt.user, tt.password); got != tt.want {
				t.Fatalf("checkLogin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegisterRejectsOversizedAvatar(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	authC := &Auth{}
	app.Post("/register", authC.Register)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	form.WriteField("username", "alice_01")
	form.WriteField("email", "alice@example.com")
	form.WriteField("password", "N0t-So-Simple-Passw0rd!")

	avatar, err := form.CreateFormFile("avatar", "avatar.png")
	if err != nil {
		t.Fatalf("failed to create the avatar form file : %v", err)
	}
	avatar.Write(make([]byte, avatarSizeLimit+1))
	form.Close()

	req := httptest.NewRequest(fiber.MethodPost, "/register", body)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("got status %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}

	resBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read the response body : %v", err)
	}
	if !strings.Contains(string(resBody), errors.ErrFileTooLarge.Error()) {
		t.Fatalf("got body %s, want %s", resBody, errors.ErrFileTooLarge.Error())
	}
}
