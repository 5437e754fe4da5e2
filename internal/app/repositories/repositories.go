package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository       *AdminRepository
	CourseRepository      *CourseRepository
	FolderRepository      *FolderRepository
	UniversityRepository  *UniversityRepository
	TeamRepository        *TeamRepository
	TestimonialRepository *TestimonialRepository
	ServiceRepository     *ServiceRepository
	InquiryRepository     *InquiryRepository
	SettingsRepository    *SettingsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:       NewAdminRepository(db),
		CourseRepository:      NewCourseRepository(db),
		FolderRepository:      NewFolderRepository(db),
		UniversityRepository:  NewUniversityRepository(db),
		TeamRepository:        NewTeamRepository(db),
		TestimonialRepository: NewTestimonialRepository(db),
		ServiceRepository:     NewServiceRepository(db),
		InquiryRepository:     NewInquiryRepository(db),
		SettingsRepository:    NewSettingsRepository(db),
	}
}
