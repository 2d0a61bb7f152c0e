package services

import (
	"context"
	"errors"
	"log"
	"market-api/models"
	"market-api/utils"
	"regexp"
	"strings"
	"time"
)

const SignUpSuccessMessage = "회원가입에 성공하였습니다."

const verificationValidity = 24 * time.Hour

var (
	ErrAlreadyRegistered      = errors.New("already registered user")
	ErrInvalidEmailPattern    = errors.New("email does not match pattern")
	ErrInvalidPhonePattern    = errors.New("phone does not match pattern")
	ErrInvalidPasswordPattern = errors.New("password does not match pattern")
	ErrUserNotFound           = errors.New("user not found")
	ErrAlreadyVerified        = errors.New("already verified")
	ErrWrongVerification      = errors.New("wrong verification code")
	ErrExpiredCode            = errors.New("verification code expired")
)

var (
	emailPattern = regexp.MustCompile(`^\w+@\w+\.\w+(\.\w+)?$`)
	phonePattern = regexp.MustCompile(`^01([0|1|6|7|8|9]?)-?([0-9]{3,4})-?([0-9]{4})$`)
)

func IsEmailPattern(email string) bool {
	return emailPattern.MatchString(email)
}

func IsPhonePattern(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsPasswordPattern requires at least one letter, one digit, one special
// character and a minimum of 8 characters, all drawn from the allowed set.
func IsPasswordPattern(password string) bool {
	const specials = "$@!%*#?&"
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specials, r):
			hasSpecial = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

type CustomerStore interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	SetVerificationCode(ctx context.Context, id int64, code string, expiredAt time.Time) error
	MarkVerified(ctx context.Context, id int64) error
}

type SellerStore interface {
	Create(ctx context.Context, seller *models.Seller) error
	FindByEmail(ctx context.Context, email string) (*models.Seller, error)
	SetVerificationCode(ctx context.Context, id int64, code string, expiredAt time.Time) error
	MarkVerified(ctx context.Context, id int64) error
}

type VerificationMailer interface {
	SendVerificationEmail(toEmail, name, memberType, code string) error
}

type SignUpService struct {
	customers CustomerStore
	sellers   SellerStore
	mailer    VerificationMailer
}

func NewSignUpService(customers CustomerStore, sellers SellerStore, mailer VerificationMailer) *SignUpService {
	return &SignUpService{
		customers: customers,
		sellers:   sellers,
		mailer:    mailer,
	}
}

// CustomerSignUp registers a new customer and mails a verification link.
func (s *SignUpService) CustomerSignUp(ctx context.Context, form models.SignUpForm) (string, error) {
	email := strings.ToLower(form.Email)

	existing, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrAlreadyRegistered
	}
	if !IsEmailPattern(email) {
		return "", ErrInvalidEmailPattern
	}
	if !IsPhonePattern(form.Phone) {
		return "", ErrInvalidPhonePattern
	}
	if !IsPasswordPattern(form.Password) {
		return "", ErrInvalidPasswordPattern
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		return "", err
	}

	customer := &models.Customer{
		Email:    email,
		Name:     form.Name,
		Password: hash,
		Phone:    form.Phone,
		Birth:    parseBirth(form.Birth),
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return "", err
	}

	code := utils.RandomCode(10)
	if err := s.mailer.SendVerificationEmail(customer.Email, customer.Name, "customer", code); err != nil {
		return "", err
	}
	if err := s.customers.SetVerificationCode(ctx, customer.ID, code, time.Now().Add(verificationValidity)); err != nil {
		return "", err
	}

	log.Printf("customer %d signed up, verification mail sent", customer.ID)
	return SignUpSuccessMessage, nil
}

// CustomerVerify checks the emailed code and marks the customer verified.
func (s *SignUpService) CustomerVerify(ctx context.Context, email, code string) error {
	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrUserNotFound
	}
	if customer.Verified {
		return ErrAlreadyVerified
	}
	if customer.VerificationCode != code {
		return ErrWrongVerification
	}
	if customer.VerifyExpiredAt != nil && customer.VerifyExpiredAt.Before(time.Now()) {
		return ErrExpiredCode
	}
	return s.customers.MarkVerified(ctx, customer.ID)
}

// SellerSignUp registers a new seller. Sellers only get the duplicate-email
// check, not the format rules.
func (s *SignUpService) SellerSignUp(ctx context.Context, form models.SignUpForm) (string, error) {
	email := strings.ToLower(form.Email)

	existing, err := s.sellers.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrAlreadyRegistered
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		return "", err
	}

	seller := &models.Seller{
		Email:    email,
		Name:     form.Name,
		Password: hash,
		Phone:    form.Phone,
	}
	if err := s.sellers.Create(ctx, seller); err != nil {
		return "", err
	}

	code := utils.RandomCode(10)
	if err := s.mailer.SendVerificationEmail(seller.Email, seller.Name, "seller", code); err != nil {
		return "", err
	}
	if err := s.sellers.SetVerificationCode(ctx, seller.ID, code, time.Now().Add(verificationValidity)); err != nil {
		return "", err
	}

	log.Printf("seller %d signed up, verification mail sent", seller.ID)
	return SignUpSuccessMessage, nil
}

func (s *SignUpService) SellerVerify(ctx context.Context, email, code string) error {
	seller, err := s.sellers.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if seller == nil {
		return ErrUserNotFound
	}
	if seller.Verified {
		return ErrAlreadyVerified
	}
	if seller.VerificationCode != code {
		return ErrWrongVerification
	}
	if seller.VerifyExpiredAt != nil && seller.VerifyExpiredAt.Before(time.Now()) {
		return ErrExpiredCode
	}
	return s.sellers.MarkVerified(ctx, seller.ID)
}

func parseBirth(birth string) *time.Time {
	if birth == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", birth)
	if err != nil {
		return nil
	}
	return &t
}
