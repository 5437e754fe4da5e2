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

// TeamRepository handles database operations for team members
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{
		db: db,
	}
}

// Create creates a new team member
func (r *TeamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (name, role, display_order, bio, photo_path, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		member.Name, member.Role, member.DisplayOrder, member.Bio, member.PhotoPath, member.Active,
	).Scan(&member.ID)
	if err != nil {
		return fmt.Errorf("error creating team member: %w", err)
	}

	return nil
}

// GetByID retrieves a team member by ID
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.QueryRow(ctx, `
		SELECT id, name, role, display_order, bio, photo_path, active
		FROM team_members WHERE id = $1`, id,
	).Scan(&member.ID, &member.Name, &member.Role, &member.DisplayOrder,
		&member.Bio, &member.PhotoPath, &member.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("error retrieving team member: %w", err)
	}

	return &member, nil
}

// GetAll retrieves all team members in display order
func (r *TeamRepository) GetAll(ctx context.Context) ([]*models.TeamMember, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, role, display_order, bio, photo_path, active
		FROM team_members ORDER BY display_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.TeamMember
	for rows.Next() {
		var member models.TeamMember
		if err := rows.Scan(&member.ID, &member.Name, &member.Role, &member.DisplayOrder,
			&member.Bio, &member.PhotoPath, &member.Active); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// Update updates an existing team member
func (r *TeamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE team_members
		SET name = $1, role = $2, display_order = $3, bio = $4, photo_path = $5, active = $6
		WHERE id = $7`,
		member.Name, member.Role, member.DisplayOrder, member.Bio,
		member.PhotoPath, member.Active, member.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating team member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeamMemberNotFound
	}

	return nil
}

// Delete deletes a team member by ID
func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting team member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeamMemberNotFound
	}

	return nil
}

// Count returns the number of team members
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting team members: %w", err)
	}
	return count, nil
}
