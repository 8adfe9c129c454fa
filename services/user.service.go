package services

import (
	"context"

	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User contains all the user related services
type User struct {
	Conn *connect.Connector
}

// GetByID is a function that is used to get the user with the given ID
func (u *User) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var user models.User
	err := u.Conn.DB.WithContext(ctx).Where(&models.User{
		ID: &id,
	}).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserWithEmail is a function that is used to get the user with the given email
func (u *User) GetUserWithEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var user models.User
	err := u.Conn.DB.WithContext(ctx).Where(&models.User{
		Email: email,
	}).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserWithUsername is a function that is used to get the user with the given username
func (u *User) GetUserWithUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var user models.User
	err := u.Conn.DB.WithContext(ctx).Where(&models.User{
		Username: username,
	}).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Create is a function that is used to create a new user in the relational database
func (u *User) Create(ctx context.Context, user models.User) (newUser models.User, err error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	newUser = user
	err = u.Conn.DB.WithContext(ctx).Create(&newUser).Error
	if err != nil {
		return models.User{}, err
	}

	return newUser, nil
}

// DeleteUser is a function that is used to delete the given user
func (u *User) DeleteUser(ctx context.Context, user models.User) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return u.Conn.DB.WithContext(ctx).Delete(&user).Error
}

// UpdatePassword is a function that is used to update the password hash of the user
func (u *User) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return u.Conn.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("password", hash).Error
}

// MarkVerified is a function that is used to mark the email address of the user as verified
func (u *User) MarkVerified(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return u.Conn.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("verified", true).Error
}

// SetRefreshToken is a function that is used to persist the refresh token on the
// user record overwriting any prior value
func (u *User) SetRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return u.Conn.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("refresh_token", refreshToken).Error
}

// RotateRefreshToken is a function that is used to swap the persisted refresh token,
// the swap only happens when the persisted value still matches the presented one so
// that concurrent renewals with the same token admit at most one winner
func (u *User) RotateRefreshToken(ctx context.Context, id uuid.UUID, presented, next string) (rotated bool, err error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	res := u.Conn.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND refresh_token = ?", id, presented).
		Update("refresh_token", next)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected == 1, nil
}

// ClearRefreshToken is a function that is used to clear the persisted refresh token
func (u *User) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return u.Conn.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("refresh_token", gorm.Expr("NULL")).Error
}
