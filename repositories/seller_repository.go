package repositories

import (
	"context"
	"errors"
	"market-api/models"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SellerRepository struct {
	db *pgxpool.Pool
}

func NewSellerRepository(db *pgxpool.Pool) *SellerRepository {
	return &SellerRepository{db: db}
}

func (r *SellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	query := `
		INSERT INTO sellers (email, name, password, phone, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, false, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		seller.Email,
		seller.Name,
		seller.Password,
		seller.Phone,
		now,
		now,
	).Scan(&seller.ID, &seller.CreatedAt, &seller.UpdatedAt)
}

func (r *SellerRepository) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	query := `
		SELECT id, email, name, password, phone, verified,
		       COALESCE(verification_code, ''), verify_expired_at, created_at, updated_at
		FROM sellers WHERE email = $1
	`

	seller := &models.Seller{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&seller.ID,
		&seller.Email,
		&seller.Name,
		&seller.Password,
		&seller.Phone,
		&seller.Verified,
		&seller.VerificationCode,
		&seller.VerifyExpiredAt,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return seller, nil
}

func (r *SellerRepository) SetVerificationCode(ctx context.Context, id int64, code string, expiredAt time.Time) error {
	query := `
		UPDATE sellers
		SET verification_code = $2, verify_expired_at = $3, updated_at = $4
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id, code, expiredAt, time.Now())
	return err
}

func (r *SellerRepository) MarkVerified(ctx context.Context, id int64) error {
	query := `UPDATE sellers SET verified = true, updated_at = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, time.Now())
	return err
}
