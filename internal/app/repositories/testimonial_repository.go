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

// TestimonialRepository handles database operations for testimonials
type TestimonialRepository struct {
	db *pgxpool.Pool
}

// NewTestimonialRepository creates a new testimonial repository
func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{
		db: db,
	}
}

// Create creates a new testimonial
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	query := `
		INSERT INTO testimonials (name, program, quote, photo_path, featured)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		t.Name, t.Program, t.Quote, t.PhotoPath, t.Featured,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating testimonial: %w", err)
	}

	return nil
}

// GetByID retrieves a testimonial by ID
func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	var t models.Testimonial
	err := r.db.QueryRow(ctx, `
		SELECT id, name, program, quote, photo_path, featured, created_at
		FROM testimonials WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Program, &t.Quote, &t.PhotoPath, &t.Featured, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("error retrieving testimonial: %w", err)
	}

	return &t, nil
}

// GetAll retrieves all testimonials, newest first
func (r *TestimonialRepository) GetAll(ctx context.Context) ([]*models.Testimonial, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, program, quote, photo_path, featured, created_at
		FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Program, &t.Quote,
			&t.PhotoPath, &t.Featured, &t.CreatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return testimonials, nil
}

// Update updates an existing testimonial
func (r *TestimonialRepository) Update(ctx context.Context, t *models.Testimonial) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE testimonials
		SET name = $1, program = $2, quote = $3, photo_path = $4, featured = $5
		WHERE id = $6`,
		t.Name, t.Program, t.Quote, t.PhotoPath, t.Featured, t.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating testimonial: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestimonialNotFound
	}

	return nil
}

// Delete deletes a testimonial by ID
func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting testimonial: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestimonialNotFound
	}

	return nil
}
