// Package controllers contains the request handlers
package controllers

import (
	"strings"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/anand-jaiswal-IN/youtube-clone/schemas"
	"github.com/anand-jaiswal-IN/youtube-clone/services"
	"github.com/anand-jaiswal-IN/youtube-clone/session"
	"github.com/anand-jaiswal-IN/youtube-clone/token"
	"github.com/anand-jaiswal-IN/youtube-clone/utils"
	"github.com/anand-jaiswal-IN/youtube-clone/validate"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	avatarSizeLimit  = 100 * 1000
	defaultAvatarURL = "https://static.videotube.app/avatars/default.png"
)

// Auth struct contains all the auth related controllers
type Auth struct {
	Conn *connect.Connector
	Env  *config.Env
}

func (a *Auth) issuer() *token.Issuer {
	return &token.Issuer{
		Store: &services.User{Conn: a.Conn},
		Env:   a.Env,
	}
}

// Register is a function that is used to register users to the platfrom with email and password
func (a *Auth) Register(c *fiber.Ctx) error {
	var payload struct {
		Name     string `json:"name" form:"name" validate:"omitempty,min=3,max=60"`
		Username string `json:"username" form:"username" validate:"required,min=3,max=20,validate_username"`
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required,min=8,max=200,validate_password"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	payload.Username = strings.ToLower(strings.TrimSpace(payload.Username))
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	v := validator.New()
	v.RegisterValidation("validate_username", validate.Username)
	v.RegisterValidation("validate_password", validate.Password)
	err := v.Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	avatarURL := defaultAvatarURL
	if fileHeader, err := c.FormFile("avatar"); err == nil {
		if fileHeader.Size > avatarSizeLimit {
			return errors.FileTooLarge(c)
		}

		localPath, contentType, err := saveTemp(c, "avatar")
		if err != nil {
			logger.Error(err)
			return errors.BadRequest(c)
		}

		media := utils.Media{Conn: a.Conn, Env: a.Env}
		avatarURL, err = media.Upload(localPath, "avatars", contentType)
		if err != nil {
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	newUserD := models.User{
		Name:      payload.Name,
		Username:  payload.Username,
		Email:     payload.Email,
		Password:  string(hashedPassword),
		AvatarURL: avatarURL,
	}

	userS := services.User{Conn: a.Conn}
	newUser, err := userS.Create(c.Context(), newUserD)
	if err != nil {
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			if strings.Contains(err.Error(), "idx_users_email") {
				user, err := userS.GetUserWithEmail(c.Context(), payload.Email)
				if err != nil || user.Verified {
					return errors.EmailAlreadyUsed(c)
				}

				if err := userS.DeleteUser(c.Context(), *user); err != nil {
					logger.Error(err)
					return errors.EmailAlreadyUsed(c)
				}
			} else if strings.Contains(err.Error(), "idx_users_username") {
				user, err := userS.GetUserWithUsername(c.Context(), payload.Username)
				if err != nil || user.Verified {
					return errors.UsernameAlreadyUsed(c)
				}

				if err := userS.DeleteUser(c.Context(), *user); err != nil {
					logger.Error(err)
					return errors.UsernameAlreadyUsed(c)
				}
			} else {
				return errors.BadRequest(c)
			}

			newUser, err = userS.Create(c.Context(), newUserD)
			if err != nil {
				logger.Error(err)
				return errors.InternalServerErr(c)
			}
		} else {
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	a.sendOTP(c, newUser)

	return c.Status(fiber.StatusCreated).JSON(schemas.Ok(
		fiber.StatusCreated,
		schemas.FilterUser(newUser),
		"user created successfully",
	))
}

func (a *Auth) sendOTP(c *fiber.Ctx, user models.User) {
	otpS := services.Otp{Conn: a.Conn}

	otp, err := otpS.Generate()
	if err != nil {
		logger.Error(err)
		return
	}

	err = otpS.Replace(c.Context(), *user.ID, otp, a.Env.OTPExpires)
	if err != nil {
		logger.Error(err)
		return
	}

	emailClient := utils.Email{
		Conn: a.Conn,
		Env:  a.Env,
	}
	err = emailClient.SendOTP(*user.ID, user.Email, otp)
	if err != nil {
		logger.Error(err)
	}
}

// checkLogin verifies the password of the user and that the email address of
// the user has been verified
func checkLogin(user models.User, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return errors.ErrIncorrectCredentials
	}

	if !user.Verified {
		return errors.ErrVerifyYourEmailFirst
	}

	return nil
}

// Login is a funciton that is used to login the user with a username or an email
// and the password
func (a *Auth) Login(c *fiber.Ctx) error {
	var payload struct {
		UsernameOrEmail string `json:"username_or_email" validate:"required"`
		Password        string `json:"password" validate:"required,min=8,max=200"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	err := v.Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	userS := services.User{Conn: a.Conn}

	var user *models.User
	var notFound func(*fiber.Ctx) error

	identifier := strings.ToLower(strings.TrimSpace(payload.UsernameOrEmail))
	if strings.Contains(identifier, "@") {
		user, err = userS.GetUserWithEmail(c.Context(), identifier)
		notFound = errors.NoAccountWithEmail
	} else {
		user, err = userS.GetUserWithUsername(c.Context(), identifier)
		notFound = errors.NoAccountWithUsername
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	if err := checkLogin(*user, payload.Password); err != nil {
		if err == errors.ErrVerifyYourEmailFirst {
			return errors.VerifyYourEmailFirst(c)
		}

		return errors.InCorrectCredentials(c)
	}

	pair, err := a.issuer().IssuePair(c.Context(), *user)
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to issue the token pair")
		return errors.InternalServerErr(c)
	}

	utils.GenerateCookies(c, pair, a.Env)

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(fiber.StatusOK, fiber.Map{
		"user":          schemas.FilterUser(*user),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, "user logged in successfully"))
}

// Refresh is a function that is used to exchange the refresh token for a fresh
// access and refresh token pair, rotating the persisted refresh token
func (a *Auth) Refresh(c *fiber.Ctx) error {
	presented := c.Cookies("refresh_token")
	if presented == "" {
		return errors.RefreshTokenNotProvided(c)
	}

	pair, user, err := a.issuer().Renew(c.Context(), presented)
	if err != nil {
		switch err {
		case errors.ErrRefreshTokenNotProvided:
			return errors.RefreshTokenNotProvided(c)
		case errors.ErrRefreshTokenExpired:
			return errors.RefreshTokenExpired(c)
		case errors.ErrRefreshTokenReused, errors.ErrUnauthorized:
			return errors.Unauthorized(c)
		default:
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	utils.GenerateCookies(c, pair, a.Env)

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(fiber.StatusOK, fiber.Map{
		"user":          schemas.FilterUser(*user),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, "token pair renewed successfully"))
}

// Logout is a function that is used to logout the user, the persisted refresh
// token is cleared and the cookies are removed
func (a *Auth) Logout(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	err := a.issuer().Revoke(c.Context(), user.UserID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	utils.DeleteCookies(c)

	return errors.Done(c)
}

// VerifyOTP is a function that is used to verify the email address of the user
// with the OTP that was sent on registration
func (a *Auth) VerifyOTP(c *fiber.Ctx) error {
	var payload struct {
		Email string `json:"email" validate:"required,email"`
		Otp   string `json:"otp" validate:"required,len=6,numeric"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	if err := v.Struct(payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	userS := services.User{Conn: a.Conn}
	user, err := userS.GetUserWithEmail(c.Context(), strings.ToLower(payload.Email))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NoAccountWithEmail(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	otpS := services.Otp{Conn: a.Conn}
	err = otpS.Verify(c.Context(), *user.ID, payload.Otp)
	if err != nil {
		switch err {
		case errors.ErrOTPNotValid:
			return errors.OTPNotValid(c)
		case errors.ErrOTPExpired:
			return errors.OTPExpired(c)
		default:
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	err = userS.MarkVerified(c.Context(), *user.ID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// ResendOTP is a function that is used to resend a fresh OTP to the user,
// superseding the previously active one
func (a *Auth) ResendOTP(c *fiber.Ctx) error {
	var payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	if err := v.Struct(payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	userS := services.User{Conn: a.Conn}
	user, err := userS.GetUserWithEmail(c.Context(), strings.ToLower(payload.Email))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NoAccountWithEmail(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	a.sendOTP(c, *user)

	return errors.Done(c)
}

// ChangePassword is a function that is used to change the password of the user
func (a *Auth) ChangePassword(c *fiber.Ctx) error {
	user := session.Get(c)
	if user == nil {
		return errors.Unauthorized(c)
	}

	var payload struct {
		OldPassword string `json:"old_password" validate:"required,min=8,max=200"`
		NewPassword string `json:"new_password" validate:"required,min=8,max=200,validate_password"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	v.RegisterValidation("validate_password", validate.Password)
	if err := v.Struct(payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	userS := services.User{Conn: a.Conn}
	record, err := userS.GetByID(c.Context(), user.UserID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = bcrypt.CompareHashAndPassword([]byte(record.Password), []byte(payload.OldPassword))
	if err != nil {
		return errors.InCorrectCredentials(c)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = userS.UpdatePassword(c.Context(), user.UserID, string(hashedPassword))
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}
