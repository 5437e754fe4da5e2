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

// InquiryService handles website contact inquiries
type InquiryService struct {
	inquiryRepo *repositories.InquiryRepository
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService(inquiryRepo *repositories.InquiryRepository) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
	}
}

// CreateInquiry records a new contact form submission
func (s *InquiryService) CreateInquiry(ctx context.Context, req *dto.CreateInquiryRequest) (*models.Inquiry, error) {
	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)
	if name == "" || message == "" {
		return nil, fmt.Errorf("%w: name and message are required", apperrors.ErrValidationFailed)
	}

	inquiry := &models.Inquiry{
		Name:    name,
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: message,
		Status:  models.InquiryStatusNew,
	}
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("error creating inquiry: %w", err)
	}
	return inquiry, nil
}

// ListInquiries retrieves a page of inquiries, optionally filtered by status
func (s *InquiryService) ListInquiries(ctx context.Context, status string, page, pageSize int) (*dto.InquiryListResponse, error) {
	var filter models.InquiryStatus
	if status != "" {
		filter = models.InquiryStatus(status)
		if !filter.Valid() {
			return nil, fmt.Errorf("%w: unknown inquiry status %q", apperrors.ErrValidationFailed, status)
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	inquiries, total, err := s.inquiryRepo.List(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing inquiries: %w", err)
	}

	return &dto.InquiryListResponse{
		Inquiries:  inquiries,
		Pagination: dto.NewPaginationInfo(page, pageSize, total),
	}, nil
}

// UpdateInquiryStatus moves an inquiry between handling states. A closed
// inquiry cannot be moved back to new; it must be reopened via contacted.
func (s *InquiryService) UpdateInquiryStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error) {
	next := models.InquiryStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown inquiry status %q", apperrors.ErrValidationFailed, status)
	}

	inquiry, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inquiry.Status == models.InquiryStatusClosed && next == models.InquiryStatusNew {
		return nil, apperrors.ErrInvalidInquiryState
	}

	if err := s.inquiryRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	inquiry.Status = next
	return inquiry, nil
}

// DeleteInquiry deletes an inquiry
func (s *InquiryService) DeleteInquiry(ctx context.Context, id int64) error {
	return s.inquiryRepo.Delete(ctx, id)
}
