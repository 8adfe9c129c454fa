package models

import (
	"time"

	"github.com/google/uuid"
)

// UserOtp is the one time password sent to the user to verify the email
// address, a user has at most one active OTP at any time
type UserOtp struct {
	UserID    *uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt *time.Time `gorm:"not null;default:now()"`
	Otp       string     `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time  `gorm:"not null"`
}
