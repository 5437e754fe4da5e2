package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/repositories"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
)

// UniversityService handles partner university operations
type UniversityService struct {
	universityRepo *repositories.UniversityRepository
}

// NewUniversityService creates a new university service instance
func NewUniversityService(universityRepo *repositories.UniversityRepository) *UniversityService {
	return &UniversityService{
		universityRepo: universityRepo,
	}
}

func (s *UniversityService) applyRequest(u *models.University, req *dto.SaveUniversityRequest) error {
	name := strings.TrimSpace(req.Name)
	shortCode := strings.TrimSpace(req.ShortCode)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if shortCode == "" {
		return fmt.Errorf("%w: short code cannot be empty", apperrors.ErrValidationFailed)
	}

	u.Name = name
	u.ShortCode = strings.ToLower(shortCode)
	u.Location = req.Location
	u.Ranking = req.Ranking
	u.Intro = req.Intro
	u.AboutContent = req.AboutContent
	u.Logo = req.Logo
	u.Image = req.Image
	u.YoutubeVideo = req.YoutubeVideo
	u.AccommodationSearch = req.AccommodationSearch
	u.IntakeMonths = req.IntakeMonths
	u.FAQs = req.FAQs
	if req.Order > 0 {
		u.DisplayOrder = req.Order
	}
	if req.OfferLetterFree != nil {
		u.OfferLetterFree = *req.OfferLetterFree
	}
	if req.Active != nil {
		u.Active = *req.Active
	}

	if req.NextIntakeDate != "" {
		date, err := time.Parse("2006-01-02", req.NextIntakeDate)
		if err != nil {
			return fmt.Errorf("%w: invalid next intake date", apperrors.ErrValidationFailed)
		}
		u.NextIntakeDate = &date
	} else {
		u.NextIntakeDate = nil
	}

	return nil
}

// CreateUniversity creates a new university page
func (s *UniversityService) CreateUniversity(ctx context.Context, req *dto.SaveUniversityRequest) (*models.University, error) {
	u := &models.University{Active: true}
	if err := s.applyRequest(u, req); err != nil {
		return nil, err
	}

	exists, err := s.universityRepo.ExistsByShortCode(ctx, u.ShortCode, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking short code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUniversityAlreadyExists
	}

	if err := s.universityRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("error creating university: %w", err)
	}
	return u, nil
}

// GetUniversityByID retrieves a university by ID
func (s *UniversityService) GetUniversityByID(ctx context.Context, id int64) (*models.University, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}
	return s.universityRepo.GetByID(ctx, id)
}

// GetAllUniversities retrieves universities in display order. With activeOnly
// set, hidden pages are excluded.
func (s *UniversityService) GetAllUniversities(ctx context.Context, activeOnly bool) ([]*models.University, error) {
	return s.universityRepo.GetAll(ctx, activeOnly)
}

// UpdateUniversity updates an existing university page. Course offerings are
// untouched here; the editor session save path owns them.
func (s *UniversityService) UpdateUniversity(ctx context.Context, id int64, req *dto.SaveUniversityRequest) (*models.University, error) {
	u, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyRequest(u, req); err != nil {
		return nil, err
	}

	exists, err := s.universityRepo.ExistsByShortCode(ctx, u.ShortCode, id)
	if err != nil {
		return nil, fmt.Errorf("error checking short code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUniversityAlreadyExists
	}

	if err := s.universityRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("error updating university: %w", err)
	}
	return u, nil
}

// DeleteUniversity deletes a university page
func (s *UniversityService) DeleteUniversity(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}
	return s.universityRepo.Delete(ctx, id)
}
