package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
	"github.com/almokadam/backoffice/internal/pkg/dberrors"
)

// AdminRepository handles database operations for back-office accounts
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

func scanAdmin(row pgx.Row) (*models.AdminUser, error) {
	var u models.AdminUser
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Active, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new admin account
func (r *AdminRepository) Create(ctx context.Context, u *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (email, password, name, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, u.Email, u.Password, u.Name, u.Active).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating admin user: %w", err)
	}

	return nil
}

// GetByEmail retrieves an admin account by email (case-insensitive)
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := `
		SELECT id, email, password, name, active, created_at
		FROM admin_users WHERE LOWER(email) = LOWER($1)
	`

	u, err := scanAdmin(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return u, nil
}

// GetByID retrieves an admin account by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	query := `
		SELECT id, email, password, name, active, created_at
		FROM admin_users WHERE id = $1
	`

	u, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return u, nil
}

// ExistsByEmail checks whether an admin account with the email exists
func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admin_users WHERE LOWER(email) = LOWER($1))`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin user existence: %w", err)
	}
	return exists, nil
}
