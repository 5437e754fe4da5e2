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

// ServiceRepository handles database operations for agency services
type ServiceRepository struct {
	db *pgxpool.Pool
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{
		db: db,
	}
}

// Create creates a new service
func (r *ServiceRepository) Create(ctx context.Context, s *models.Service) error {
	query := `
		INSERT INTO services (icon, display_order, title, description, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		s.Icon, s.DisplayOrder, s.Title, s.Description, s.Active,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}

	return nil
}

// GetByID retrieves a service by ID
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	var s models.Service
	err := r.db.QueryRow(ctx, `
		SELECT id, icon, display_order, title, description, active
		FROM services WHERE id = $1`, id,
	).Scan(&s.ID, &s.Icon, &s.DisplayOrder, &s.Title, &s.Description, &s.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("error retrieving service: %w", err)
	}

	return &s, nil
}

// GetAll retrieves all services in display order
func (r *ServiceRepository) GetAll(ctx context.Context) ([]*models.Service, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, icon, display_order, title, description, active
		FROM services ORDER BY display_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Icon, &s.DisplayOrder,
			&s.Title, &s.Description, &s.Active); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

// Update updates an existing service
func (r *ServiceRepository) Update(ctx context.Context, s *models.Service) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE services
		SET icon = $1, display_order = $2, title = $3, description = $4, active = $5
		WHERE id = $6`,
		s.Icon, s.DisplayOrder, s.Title, s.Description, s.Active, s.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating service: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrServiceNotFound
	}

	return nil
}

// Delete deletes a service by ID
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting service: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrServiceNotFound
	}

	return nil
}
