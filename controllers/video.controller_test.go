package controllers

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func uploadForm() url.Values {
	form := url.Values{}
	form.Set("title", "My first video")
	form.Set("description", "A short description of the video")
	form.Set("categories", "tech")
	return form
}

func testUpload(t *testing.T, app *fiber.App, form url.Values) (int, string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, "/upload-video", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	defer resp.Body.Close()

	resBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read the response body : %v", err)
	}

	return resp.StatusCode, string(resBody)
}

func TestUploadRejectsMalformedDuration(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	videoC := &Video{}
	app.Post("/upload-video", func(c *fiber.Ctx) error {
		c.Locals("channel_id", uuid.New())
		return videoC.Upload(c)
	})

	form := uploadForm()
	form.Set("duration", "not-a-number")

	status, body := testUpload(t, app, form)
	if status != fiber.StatusBadRequest {
		t.Fatalf("got status %d, want %d", status, fiber.StatusBadRequest)
	}
	if !strings.Contains(body, errors.ErrBadRequest.Error()) {
		t.Fatalf("got body %s, want %s", body, errors.ErrBadRequest.Error())
	}
}

func TestUploadWithoutOwnChannel(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	videoC := &Video{}
	app.Post("/upload-video", videoC.Upload)

	status, body := testUpload(t, app, uploadForm())
	if status != fiber.StatusBadRequest {
		t.Fatalf("got status %d, want %d", status, fiber.StatusBadRequest)
	}
	if !strings.Contains(body, errors.ErrNoOwnChannel.Error()) {
		t.Fatalf("got body %s, want %s", body, errors.ErrNoOwnChannel.Error())
	}
}
