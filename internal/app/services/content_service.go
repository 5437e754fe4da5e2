package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/repositories"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
)

// TeamService handles team member operations
type TeamService struct {
	teamRepo *repositories.TeamRepository
}

// NewTeamService creates a new team service instance
func NewTeamService(teamRepo *repositories.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func applyTeamRequest(m *models.TeamMember, req *dto.SaveTeamMemberRequest) error {
	name := strings.TrimSpace(req.Name)
	role := strings.TrimSpace(req.Role)
	if name == "" || role == "" {
		return fmt.Errorf("%w: name and role are required", apperrors.ErrValidationFailed)
	}

	m.Name = name
	m.Role = role
	m.Bio = req.Bio
	m.PhotoPath = req.PhotoPath
	if req.Order > 0 {
		m.DisplayOrder = req.Order
	}
	if req.Active != nil {
		m.Active = *req.Active
	}
	return nil
}

// CreateTeamMember creates a new team member
func (s *TeamService) CreateTeamMember(ctx context.Context, req *dto.SaveTeamMemberRequest) (*models.TeamMember, error) {
	member := &models.TeamMember{Active: true}
	if err := applyTeamRequest(member, req); err != nil {
		return nil, err
	}
	if err := s.teamRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("error creating team member: %w", err)
	}
	return member, nil
}

// GetAllTeamMembers retrieves team members in display order
func (s *TeamService) GetAllTeamMembers(ctx context.Context) ([]*models.TeamMember, error) {
	return s.teamRepo.GetAll(ctx)
}

// UpdateTeamMember updates an existing team member
func (s *TeamService) UpdateTeamMember(ctx context.Context, id int64, req *dto.SaveTeamMemberRequest) (*models.TeamMember, error) {
	member, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyTeamRequest(member, req); err != nil {
		return nil, err
	}
	if err := s.teamRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("error updating team member: %w", err)
	}
	return member, nil
}

// DeleteTeamMember deletes a team member
func (s *TeamService) DeleteTeamMember(ctx context.Context, id int64) error {
	return s.teamRepo.Delete(ctx, id)
}

// TestimonialService handles testimonial operations
type TestimonialService struct {
	testimonialRepo *repositories.TestimonialRepository
}

// NewTestimonialService creates a new testimonial service instance
func NewTestimonialService(testimonialRepo *repositories.TestimonialRepository) *TestimonialService {
	return &TestimonialService{testimonialRepo: testimonialRepo}
}

func applyTestimonialRequest(t *models.Testimonial, req *dto.SaveTestimonialRequest) error {
	name := strings.TrimSpace(req.Name)
	quote := strings.TrimSpace(req.Quote)
	if name == "" || quote == "" {
		return fmt.Errorf("%w: name and quote are required", apperrors.ErrValidationFailed)
	}

	t.Name = name
	t.Program = req.Program
	t.Quote = quote
	t.PhotoPath = req.PhotoPath
	if req.Featured != nil {
		t.Featured = *req.Featured
	}
	return nil
}

// CreateTestimonial creates a new testimonial
func (s *TestimonialService) CreateTestimonial(ctx context.Context, req *dto.SaveTestimonialRequest) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	if err := applyTestimonialRequest(t, req); err != nil {
		return nil, err
	}
	if err := s.testimonialRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("error creating testimonial: %w", err)
	}
	return t, nil
}

// GetAllTestimonials retrieves testimonials newest first
func (s *TestimonialService) GetAllTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.testimonialRepo.GetAll(ctx)
}

// UpdateTestimonial updates an existing testimonial
func (s *TestimonialService) UpdateTestimonial(ctx context.Context, id int64, req *dto.SaveTestimonialRequest) (*models.Testimonial, error) {
	t, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyTestimonialRequest(t, req); err != nil {
		return nil, err
	}
	if err := s.testimonialRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("error updating testimonial: %w", err)
	}
	return t, nil
}

// DeleteTestimonial deletes a testimonial
func (s *TestimonialService) DeleteTestimonial(ctx context.Context, id int64) error {
	return s.testimonialRepo.Delete(ctx, id)
}

// ServiceService handles agency service card operations
type ServiceService struct {
	serviceRepo *repositories.ServiceRepository
}

// NewServiceService creates a new service card service instance
func NewServiceService(serviceRepo *repositories.ServiceRepository) *ServiceService {
	return &ServiceService{serviceRepo: serviceRepo}
}

func applyServiceRequest(card *models.Service, req *dto.SaveServiceRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}

	card.Title = title
	card.Icon = req.Icon
	card.Description = req.Description
	if req.Order > 0 {
		card.DisplayOrder = req.Order
	}
	if req.Active != nil {
		card.Active = *req.Active
	}
	return nil
}

// CreateService creates a new service card
func (s *ServiceService) CreateService(ctx context.Context, req *dto.SaveServiceRequest) (*models.Service, error) {
	card := &models.Service{Active: true}
	if err := applyServiceRequest(card, req); err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("error creating service: %w", err)
	}
	return card, nil
}

// GetAllServices retrieves service cards in display order
func (s *ServiceService) GetAllServices(ctx context.Context) ([]*models.Service, error) {
	return s.serviceRepo.GetAll(ctx)
}

// UpdateService updates an existing service card
func (s *ServiceService) UpdateService(ctx context.Context, id int64, req *dto.SaveServiceRequest) (*models.Service, error) {
	card, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyServiceRequest(card, req); err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("error updating service: %w", err)
	}
	return card, nil
}

// DeleteService deletes a service card
func (s *ServiceService) DeleteService(ctx context.Context, id int64) error {
	return s.serviceRepo.Delete(ctx, id)
}
