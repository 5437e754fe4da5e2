package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
)

const inquiryColumns = `id, name, email, phone, message, status, created_at`

// InquiryRepository handles database operations for contact inquiries
type InquiryRepository struct {
	db *pgxpool.Pool
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{
		db: db,
	}
}

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	var q models.Inquiry
	err := row.Scan(&q.ID, &q.Name, &q.Email, &q.Phone,
		&q.Message, &q.Status, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Create creates a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, q *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (name, email, phone, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		q.Name, q.Email, q.Phone, q.Message, q.Status,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating inquiry: %w", err)
	}

	return nil
}

// GetByID retrieves an inquiry by ID
func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`

	q, err := scanInquiry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("error retrieving inquiry: %w", err)
	}

	return q, nil
}

// List retrieves inquiries newest first, optionally filtered by status,
// with LIMIT/OFFSET pagination. It returns the page and the total count
// matching the filter.
func (r *InquiryRepository) List(ctx context.Context, status models.InquiryStatus, limit, offset int) ([]*models.Inquiry, int64, error) {
	baseQuery := `SELECT ` + inquiryColumns + ` FROM inquiries`
	countQuery := `SELECT COUNT(*) FROM inquiries`

	var args []interface{}
	if status != "" {
		baseQuery += ` WHERE status = $1`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting inquiries: %w", err)
	}

	baseQuery += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var inquiries []*models.Inquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, 0, err
		}
		inquiries = append(inquiries, q)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return inquiries, total, nil
}

// UpdateStatus updates the status of an inquiry
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int64, status models.InquiryStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE inquiries SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("error updating inquiry status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}

	return nil
}

// Delete deletes an inquiry by ID
func (r *InquiryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting inquiry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}

	return nil
}

// CountByStatus returns the number of inquiries with the given status
func (r *InquiryRepository) CountByStatus(ctx context.Context, status models.InquiryStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting inquiries: %w", err)
	}
	return count, nil
}

// GetRecent retrieves the most recent inquiries up to limit
func (r *InquiryRepository) GetRecent(ctx context.Context, limit int) ([]*models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []*models.Inquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inquiries, nil
}
