package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{
		dialer: dialer,
		from:   os.Getenv("SMTP_FROM"),
	}, nil
}

// SendVerificationEmail mails the signup verification link. memberType is
// "customer" or "seller" and selects the verify endpoint.
func (s *EmailService) SendVerificationEmail(toEmail, name, memberType, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Verification Email")

	signUpPath := getEnv("SIGNUP_PATH", "http://localhost:8082/signup/")
	body := fmt.Sprintf(
		"Hello %s! Please Click Link for verification.\n\n %s%s/verify/?email=%s&code=%s",
		name, signUpPath, memberType, toEmail, code,
	)

	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
