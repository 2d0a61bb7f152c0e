package repositories

import (
	"context"
	"errors"
	"market-api/models"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (email, name, password, phone, birth, verified, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, false, 0, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		customer.Email,
		customer.Name,
		customer.Password,
		customer.Phone,
		customer.Birth,
		now,
		now,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	query := `
		SELECT id, email, name, password, phone, birth, verified,
		       COALESCE(verification_code, ''), verify_expired_at, balance, created_at, updated_at
		FROM customers WHERE email = $1
	`

	customer := &models.Customer{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&customer.ID,
		&customer.Email,
		&customer.Name,
		&customer.Password,
		&customer.Phone,
		&customer.Birth,
		&customer.Verified,
		&customer.VerificationCode,
		&customer.VerifyExpiredAt,
		&customer.Balance,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return customer, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `
		SELECT id, email, name, password, phone, birth, verified,
		       COALESCE(verification_code, ''), verify_expired_at, balance, created_at, updated_at
		FROM customers WHERE id = $1
	`

	customer := &models.Customer{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Email,
		&customer.Name,
		&customer.Password,
		&customer.Phone,
		&customer.Birth,
		&customer.Verified,
		&customer.VerificationCode,
		&customer.VerifyExpiredAt,
		&customer.Balance,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// SetVerificationCode stores a freshly issued code and its expiry.
func (r *CustomerRepository) SetVerificationCode(ctx context.Context, id int64, code string, expiredAt time.Time) error {
	query := `
		UPDATE customers
		SET verification_code = $2, verify_expired_at = $3, updated_at = $4
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id, code, expiredAt, time.Now())
	return err
}

// MarkVerified flips the customer to verified.
func (r *CustomerRepository) MarkVerified(ctx context.Context, id int64) error {
	query := `UPDATE customers SET verified = true, updated_at = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, time.Now())
	return err
}
