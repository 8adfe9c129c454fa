package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/templates"
	"github.com/google/uuid"
	"github.com/resendlabs/resend-go"
)

const (
	resendEmailFrom   = "onboarding@resend.dev"
	resendReplyFrom   = "onboarding@resend.dev"
	otpResendCooldown = 60 * time.Second
	mailTimeout       = 10 * time.Second
)

// Email is a struct that contains email related operations
type Email struct {
	Conn *connect.Connector
	Env  *config.Env
}

// SendOTP is a function that is used to send the verification OTP to the user,
// sends within the cooldown window are dropped silently
func (e *Email) SendOTP(userID uuid.UUID, email, otp string) error {
	ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
	defer cancel()

	ok := e.Conn.R.Email.SetNX(ctx, fmt.Sprintf("otp:%s", userID.String()), email, otpResendCooldown).Val()
	if !ok {
		return nil
	}

	emailTemplate, err := templates.Email{}.GetOTPTmpl(otp)
	if err != nil {
		return err
	}

	client := resend.NewClient(e.Env.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    resendEmailFrom,
		To:      []string{email},
		Html:    emailTemplate,
		Subject: "Verification OTP for VideoTube",
		ReplyTo: resendReplyFrom,
	}
	send, err := client.Emails.Send(params)
	if err != nil {
		return err
	}

	logger.Log(fmt.Sprintf("[ %s ] : Verification OTP sent", send.Id))
	return nil
}
