package services

import (
	"context"
	"testing"
	"time"

	"market-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerStore struct {
	byEmail map[string]*models.Customer
	nextID  int64
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{byEmail: make(map[string]*models.Customer)}
}

func (f *fakeCustomerStore) Create(_ context.Context, customer *models.Customer) error {
	f.nextID++
	customer.ID = f.nextID
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	f.byEmail[customer.Email] = customer
	return nil
}

func (f *fakeCustomerStore) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	return f.byEmail[email], nil
}

func (f *fakeCustomerStore) SetVerificationCode(_ context.Context, id int64, code string, expiredAt time.Time) error {
	for _, c := range f.byEmail {
		if c.ID == id {
			c.VerificationCode = code
			c.VerifyExpiredAt = &expiredAt
		}
	}
	return nil
}

func (f *fakeCustomerStore) MarkVerified(_ context.Context, id int64) error {
	for _, c := range f.byEmail {
		if c.ID == id {
			c.Verified = true
		}
	}
	return nil
}

type fakeSellerStore struct {
	byEmail map[string]*models.Seller
	nextID  int64
}

func newFakeSellerStore() *fakeSellerStore {
	return &fakeSellerStore{byEmail: make(map[string]*models.Seller)}
}

func (f *fakeSellerStore) Create(_ context.Context, seller *models.Seller) error {
	f.nextID++
	seller.ID = f.nextID
	f.byEmail[seller.Email] = seller
	return nil
}

func (f *fakeSellerStore) FindByEmail(_ context.Context, email string) (*models.Seller, error) {
	return f.byEmail[email], nil
}

func (f *fakeSellerStore) SetVerificationCode(_ context.Context, id int64, code string, expiredAt time.Time) error {
	for _, s := range f.byEmail {
		if s.ID == id {
			s.VerificationCode = code
			s.VerifyExpiredAt = &expiredAt
		}
	}
	return nil
}

func (f *fakeSellerStore) MarkVerified(_ context.Context, id int64) error {
	for _, s := range f.byEmail {
		if s.ID == id {
			s.Verified = true
		}
	}
	return nil
}

type sentMail struct {
	to, name, memberType, code string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendVerificationEmail(toEmail, name, memberType, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: toEmail, name: name, memberType: memberType, code: code})
	return nil
}

func newTestSignUpService() (*SignUpService, *fakeCustomerStore, *fakeSellerStore, *fakeMailer) {
	customers := newFakeCustomerStore()
	sellers := newFakeSellerStore()
	mailer := &fakeMailer{}
	return NewSignUpService(customers, sellers, mailer), customers, sellers, mailer
}

func validForm() models.SignUpForm {
	return models.SignUpForm{
		Email:    "buyer@example.com",
		Name:     "Buyer",
		Password: "abcd123!",
		Phone:    "010-1234-5678",
		Birth:    "1990-05-01",
	}
}

func TestCustomerSignUp_Success(t *testing.T) {
	service, customers, _, mailer := newTestSignUpService()

	message, err := service.CustomerSignUp(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, SignUpSuccessMessage, message)

	customer := customers.byEmail["buyer@example.com"]
	require.NotNil(t, customer)
	assert.False(t, customer.Verified)
	assert.NotEqual(t, "abcd123!", customer.Password, "password must be stored hashed")
	require.NotNil(t, customer.Birth)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "buyer@example.com", mailer.sent[0].to)
	assert.Equal(t, "customer", mailer.sent[0].memberType)
	assert.Len(t, mailer.sent[0].code, 10)
	assert.Equal(t, mailer.sent[0].code, customer.VerificationCode)
	require.NotNil(t, customer.VerifyExpiredAt)
	assert.True(t, customer.VerifyExpiredAt.After(time.Now()))
}

func TestCustomerSignUp_LowercasesEmail(t *testing.T) {
	service, customers, _, _ := newTestSignUpService()

	form := validForm()
	form.Email = "Buyer@Example.COM"
	_, err := service.CustomerSignUp(context.Background(), form)

	require.NoError(t, err)
	assert.NotNil(t, customers.byEmail["buyer@example.com"])
}

func TestCustomerSignUp_AlreadyRegistered(t *testing.T) {
	service, _, _, _ := newTestSignUpService()
	ctx := context.Background()

	_, err := service.CustomerSignUp(ctx, validForm())
	require.NoError(t, err)

	_, err = service.CustomerSignUp(ctx, validForm())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestCustomerSignUp_InvalidForms(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.SignUpForm)
		wantErr error
	}{
		{"bad email", func(f *models.SignUpForm) { f.Email = "not-an-email" }, ErrInvalidEmailPattern},
		{"bad phone", func(f *models.SignUpForm) { f.Phone = "02-1234-5678" }, ErrInvalidPhonePattern},
		{"short password", func(f *models.SignUpForm) { f.Password = "a1!" }, ErrInvalidPasswordPattern},
		{"no digit", func(f *models.SignUpForm) { f.Password = "abcdefg!" }, ErrInvalidPasswordPattern},
		{"no special", func(f *models.SignUpForm) { f.Password = "abcd1234" }, ErrInvalidPasswordPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, mailer := newTestSignUpService()
			form := validForm()
			tt.mutate(&form)

			_, err := service.CustomerSignUp(context.Background(), form)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, mailer.sent)
		})
	}
}

func TestCustomerVerify(t *testing.T) {
	service, customers, _, mailer := newTestSignUpService()
	ctx := context.Background()

	_, err := service.CustomerSignUp(ctx, validForm())
	require.NoError(t, err)
	code := mailer.sent[0].code

	t.Run("unknown email", func(t *testing.T) {
		assert.ErrorIs(t, service.CustomerVerify(ctx, "ghost@example.com", code), ErrUserNotFound)
	})

	t.Run("wrong code", func(t *testing.T) {
		assert.ErrorIs(t, service.CustomerVerify(ctx, "buyer@example.com", "WRONGCODE1"), ErrWrongVerification)
	})

	t.Run("expired code", func(t *testing.T) {
		expired := time.Now().Add(-time.Hour)
		customers.byEmail["buyer@example.com"].VerifyExpiredAt = &expired
		assert.ErrorIs(t, service.CustomerVerify(ctx, "buyer@example.com", code), ErrExpiredCode)
		renewed := time.Now().Add(time.Hour)
		customers.byEmail["buyer@example.com"].VerifyExpiredAt = &renewed
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, service.CustomerVerify(ctx, "buyer@example.com", code))
		assert.True(t, customers.byEmail["buyer@example.com"].Verified)
	})

	t.Run("already verified", func(t *testing.T) {
		assert.ErrorIs(t, service.CustomerVerify(ctx, "buyer@example.com", code), ErrAlreadyVerified)
	})
}

func TestSellerSignUp_SkipsFormatChecks(t *testing.T) {
	service, _, sellers, mailer := newTestSignUpService()

	// sellers only get the duplicate check, so an odd phone is accepted
	form := models.SignUpForm{
		Email:    "shop@example.com",
		Name:     "Shop",
		Password: "plain",
		Phone:    "none",
	}
	message, err := service.SellerSignUp(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, SignUpSuccessMessage, message)
	require.NotNil(t, sellers.byEmail["shop@example.com"])
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "seller", mailer.sent[0].memberType)
}

func TestSellerSignUp_AlreadyRegistered(t *testing.T) {
	service, _, _, _ := newTestSignUpService()
	ctx := context.Background()

	form := models.SignUpForm{Email: "shop@example.com", Name: "Shop", Password: "x"}
	_, err := service.SellerSignUp(ctx, form)
	require.NoError(t, err)

	_, err = service.SellerSignUp(ctx, form)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestSellerVerify_Success(t *testing.T) {
	service, _, sellers, mailer := newTestSignUpService()
	ctx := context.Background()

	form := models.SignUpForm{Email: "shop@example.com", Name: "Shop", Password: "x"}
	_, err := service.SellerSignUp(ctx, form)
	require.NoError(t, err)

	require.NoError(t, service.SellerVerify(ctx, "shop@example.com", mailer.sent[0].code))
	assert.True(t, sellers.byEmail["shop@example.com"].Verified)
}

func TestPatterns(t *testing.T) {
	assert.True(t, IsEmailPattern("user@example.com"))
	assert.True(t, IsEmailPattern("user@mail.co.kr"))
	assert.False(t, IsEmailPattern("user@example"))
	assert.False(t, IsEmailPattern("@example.com"))

	assert.True(t, IsPhonePattern("010-1234-5678"))
	assert.True(t, IsPhonePattern("01012345678"))
	assert.False(t, IsPhonePattern("02-123-4567"))

	assert.True(t, IsPasswordPattern("abcd123!"))
	assert.False(t, IsPasswordPattern("abc12!"))
	assert.False(t, IsPasswordPattern("abcdefg1"))
	assert.False(t, IsPasswordPattern("abcd123! with spaces"))
}
