package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Otp contains all the one time password related services
type Otp struct {
	Conn *connect.Connector
}

// Generate is a function that is used to generate a random six digit one time password
func (o *Otp) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Replace is a function that is used to store a new one time password for the user,
// superseding any previously active one
func (o *Otp) Replace(ctx context.Context, userID uuid.UUID, otp string, expires time.Duration) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	return o.Conn.DB.WithContext(ctx).Clauses(clause.OnConflict{
		UpdateAll: true,
	}).Create(&models.UserOtp{
		UserID:    &userID,
		Otp:       otp,
		ExpiresAt: time.Now().UTC().Add(expires),
	}).Error
}

// Verify is a function that is used to verify the one time password of the user,
// the stored OTP is consumed on success and on expiry
func (o *Otp) Verify(ctx context.Context, userID uuid.UUID, otp string) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var userOtp models.UserOtp
	err := o.Conn.DB.WithContext(ctx).Where(&models.UserOtp{
		UserID: &userID,
	}).First(&userOtp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrOTPNotValid
		}

		return err
	}

	if time.Now().UTC().After(userOtp.ExpiresAt) {
		o.Conn.DB.WithContext(ctx).Delete(&models.UserOtp{}, "user_id = ?", userID)
		return errors.ErrOTPExpired
	}

	if userOtp.Otp != otp {
		return errors.ErrOTPNotValid
	}

	return o.Conn.DB.WithContext(ctx).Delete(&models.UserOtp{}, "user_id = ?", userID).Error
}
