// Package errors contians http errors and other custom errors
package errors

import (
	errs "errors"
	"fmt"
	"time"

	"github.com/anand-jaiswal-IN/youtube-clone/schemas"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//revive:disable

var (
	ErrInternalServerError     = fmt.Errorf("internal_server_error")
	ErrUnauthorized            = fmt.Errorf("unauthorized")
	ErrBadRequest              = fmt.Errorf("bad_request")
	ErrNotFound                = fmt.Errorf("not_found")
	ErrIncorrectCredentials    = fmt.Errorf("incorrect_credentials")
	ErrAccessTokenNotProvided  = fmt.Errorf("access_token_not_provided")
	ErrAccessTokenExpired      = fmt.Errorf("access_token_expired")
	ErrRefreshTokenNotProvided = fmt.Errorf("refresh_token_not_provided")
	ErrRefreshTokenExpired     = fmt.Errorf("refresh_token_expired")
	ErrRefreshTokenReused      = fmt.Errorf("refresh_token_reused")
	ErrUsernameAlreadyUsed     = fmt.Errorf("username_already_used")
	ErrEmailAlreadyUsed        = fmt.Errorf("email_already_used")
	ErrNoAccountWithEmail      = fmt.Errorf("no_account_with_email")
	ErrNoAccountWithUsername   = fmt.Errorf("no_account_with_username")
	ErrUserNotFound            = fmt.Errorf("user_not_found")
	ErrChannelNotFound         = fmt.Errorf("channel_not_found")
	ErrChannelAlreadyExists    = fmt.Errorf("channel_already_exists")
	ErrNoOwnChannel            = fmt.Errorf("no_own_channel")
	ErrVideoNotFound           = fmt.Errorf("video_not_found")
	ErrCategoryNotFound        = fmt.Errorf("category_not_found")
	ErrCategoryAlreadyExists   = fmt.Errorf("category_already_exists")
	ErrInvalidCategory         = fmt.Errorf("invalid_category")
	ErrAlreadySubscribed       = fmt.Errorf("already_subscribed")
	ErrOTPNotValid             = fmt.Errorf("otp_not_valid")
	ErrOTPExpired              = fmt.Errorf("otp_expired")
	ErrVerifyYourEmailFirst    = fmt.Errorf("verify_your_email_address_first")
	ErrFileTooLarge            = fmt.Errorf("file_too_large")
	Okay                       = "okay"
)

func failure(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(schemas.Res{
		StatusCode: status,
		Message:    err.Error(),
		Success:    false,
	})
}

func InternalServerErr(c *fiber.Ctx) error {
	return failure(c, fiber.StatusInternalServerError, ErrInternalServerError)
}

func Unauthorized(c *fiber.Ctx) error {
	return failure(c, fiber.StatusUnauthorized, ErrUnauthorized)
}

func InCorrectCredentials(c *fiber.Ctx) error {
	return failure(c, fiber.StatusUnauthorized, ErrIncorrectCredentials)
}

func AccessTokenNotProvided(c *fiber.Ctx) error {
	return failure(c, fiber.StatusUnauthorized, ErrAccessTokenNotProvided)
}

func AccessTokenExpired(c *fiber.Ctx) error {
	expired := time.Now().Add(-time.Hour * 24)
	c.Cookie(&fiber.Cookie{
		Name:    "access_token",
		Value:   "",
		Expires: expired,
	})
	return failure(c, fiber.StatusUnauthorized, ErrAccessTokenExpired)
}

func RefreshTokenNotProvided(c *fiber.Ctx) error {
	return failure(c, fiber.StatusUnauthorized, ErrRefreshTokenNotProvided)
}

func RefreshTokenExpired(c *fiber.Ctx) error {
	expired := time.Now().Add(-time.Hour * 24)
	c.Cookie(&fiber.Cookie{
		Name:    "refresh_token",
		Value:   "",
		Expires: expired,
	})
	return failure(c, fiber.StatusUnauthorized, ErrRefreshTokenExpired)
}

func BadRequest(c *fiber.Ctx) error {
	return failure(c, fiber.StatusBadRequest, ErrBadRequest)
}

func FileTooLarge(c *fiber.Ctx) error {
	return failure(c, fiber.StatusBadRequest, ErrFileTooLarge)
}

func InvalidCategory(c *fiber.Ctx) error {
	return failure(c, fiber.StatusBadRequest, ErrInvalidCategory)
}

func OTPNotValid(c *fiber.Ctx) error {
	return failure(c, fiber.StatusBadRequest, ErrOTPNotValid)
}

func OTPExpired(c *fiber.Ctx) error {
	return failure(c, fiber.StatusBadRequest, ErrOTPExpired)
}

func VerifyYourEmailFirst(c *fiber.Ctx) error {
	return failure(c, fiber.StatusBadRequest, ErrVerifyYourEmailFirst)
}

func NoOwnChannel(c *fiber.Ctx) error {
	return failure(c, fiber.StatusBadRequest, ErrNoOwnChannel)
}

func NotFound(c *fiber.Ctx, err error) error {
	return failure(c, fiber.StatusNotFound, err)
}

func UserNotFound(c *fiber.Ctx) error {
	return NotFound(c, ErrUserNotFound)
}

func ChannelNotFound(c *fiber.Ctx) error {
	return NotFound(c, ErrChannelNotFound)
}

func VideoNotFound(c *fiber.Ctx) error {
	return NotFound(c, ErrVideoNotFound)
}

func NoAccountWithEmail(c *fiber.Ctx) error {
	return NotFound(c, ErrNoAccountWithEmail)
}

func NoAccountWithUsername(c *fiber.Ctx) error {
	return NotFound(c, ErrNoAccountWithUsername)
}

func Conflict(c *fiber.Ctx, err error) error {
	return failure(c, fiber.StatusConflict, err)
}

func UsernameAlreadyUsed(c *fiber.Ctx) error {
	return Conflict(c, ErrUsernameAlreadyUsed)
}

func EmailAlreadyUsed(c *fiber.Ctx) error {
	return Conflict(c, ErrEmailAlreadyUsed)
}

func ChannelAlreadyExists(c *fiber.Ctx) error {
	return Conflict(c, ErrChannelAlreadyExists)
}

func CategoryAlreadyExists(c *fiber.Ctx) error {
	return Conflict(c, ErrCategoryAlreadyExists)
}

func AlreadySubscribed(c *fiber.Ctx) error {
	return Conflict(c, ErrAlreadySubscribed)
}

func Done(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		StatusCode: fiber.StatusOK,
		Message:    Okay,
		Success:    true,
	})
}

//revive:enable

// CheckDBError is a struc that is used to identify the database errors
type CheckDBError struct{}

// DuplicateKey is a function that is used to find wether the the returned postgres error
// is due to a duplicate key entry (A unique key constraint)
func (CheckDBError) DuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return true
		}
	}

	return false
}

// CheckTokenError is a struct that is used to identify JWT related errors
type CheckTokenError struct{}

// Expired is a function that is used to find wether the token error is due to
// the token being expired
func (CheckTokenError) Expired(err error) bool {
	return errs.Is(err, jwt.ErrTokenExpired)
}
