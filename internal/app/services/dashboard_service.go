package services

import (
	"context"
	"fmt"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/repositories"
)

const recentInquiryLimit = 5

// DashboardService aggregates the counts shown on the admin landing page
type DashboardService struct {
	inquiryRepo    *repositories.InquiryRepository
	courseRepo     *repositories.CourseRepository
	universityRepo *repositories.UniversityRepository
	teamRepo       *repositories.TeamRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	inquiryRepo *repositories.InquiryRepository,
	courseRepo *repositories.CourseRepository,
	universityRepo *repositories.UniversityRepository,
	teamRepo *repositories.TeamRepository,
) *DashboardService {
	return &DashboardService{
		inquiryRepo:    inquiryRepo,
		courseRepo:     courseRepo,
		universityRepo: universityRepo,
		teamRepo:       teamRepo,
	}
}

// GetDashboard collects the landing page counts and recent inquiries
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	newInquiries, err := s.inquiryRepo.CountByStatus(ctx, models.InquiryStatusNew)
	if err != nil {
		return nil, fmt.Errorf("error counting new inquiries: %w", err)
	}
	courses, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}
	universities, err := s.universityRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting universities: %w", err)
	}
	teamMembers, err := s.teamRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting team members: %w", err)
	}
	recent, err := s.inquiryRepo.GetRecent(ctx, recentInquiryLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent inquiries: %w", err)
	}

	return &dto.DashboardResponse{
		NewInquiries:    newInquiries,
		Courses:         courses,
		Universities:    universities,
		TeamMembers:     teamMembers,
		RecentInquiries: recent,
	}, nil
}
