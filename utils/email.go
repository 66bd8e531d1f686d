package utils

import (
	"fmt"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/dilshan-mv/coindeck/config"
	"github.com/dilshan-mv/coindeck/templates"
	"github.com/resendlabs/resend-go"
)

const (
	resendEmailFrom = "onboarding@resend.dev"
	resendReplyFrom = "onboarding@resend.dev"
)

// Email is a struct that contains email related operations
type Email struct {
	Env *config.Env
}

// SendOTP is a function that is used to deliver the signup verification OTP to the user;
// delivery failures are logged and never fail the signup request
func (e *Email) SendOTP(email, otp string) {
	// without a delivery key the code is only logged, which is what
	// local development wants anyway
	if e.Env.ResendAPIKey == "" {
		logger.Log(fmt.Sprintf("[OTP for %s]: %s", email, otp))
		return
	}

	emailTemplate, err := templates.Email{}.VerificationOTPTmpl(otp)
	if err != nil {
		logger.Error(err)
		return
	}

	client := resend.NewClient(e.Env.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    resendEmailFrom,
		To:      []string{email},
		Html:    emailTemplate,
		Subject: "Verify your email address",
		ReplyTo: resendReplyFrom,
	}
	send, err := client.Emails.Send(params)
	if err != nil {
		logger.Error(err)
		return
	}

	logger.Log(fmt.Sprintf("[ %s ] : Verification OTP email sent", send.Id))
}
