package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/almokadam/backoffice/internal/app/models"
	appRepos "github.com/almokadam/backoffice/internal/app/repositories"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
	"github.com/almokadam/backoffice/internal/pkg/auth"
)

// DefaultAdminEmail is the account created on first start. The password must
// be changed after the first login; it is only meant to unlock a fresh install.
const (
	DefaultAdminEmail    = "admin@almokadam.app"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData creates the default admin account and a starter course
// catalog if they don't exist. Individual failures are collected rather than
// aborting the whole seed.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	folderRepo := appRepos.NewFolderRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	exists, err := adminRepo.ExistsByEmail(ctx, DefaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default admin exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		hashed, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.AdminUser{
				Email:    DefaultAdminEmail,
				Password: hashed,
				Name:     "Administrator",
				Active:   true,
			}
			if err := adminRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating default admin")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Warn().Str("email", DefaultAdminEmail).
					Msg("Default admin created with the initial password, change it after first login")
			}
		}
	}

	// --- Starter folders --- //
	folderIDs := map[string]int64{}
	for _, name := range []string{"Engineering", "Business"} {
		folder := &appModels.CourseFolder{Name: name}
		err := folderRepo.Create(ctx, folder)
		switch {
		case err == nil:
			folderIDs[name] = folder.ID
		case errors.Is(err, apperrors.ErrFolderAlreadyExists):
			// Look up the existing ID so courses can still reference it.
			all, errGet := folderRepo.GetAll(ctx)
			if errGet != nil {
				lgr.Error().Err(errGet).Msg("Error listing folders to resolve existing seed folder")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			for _, f := range all {
				if f.Name == name {
					folderIDs[name] = f.ID
					break
				}
			}
		default:
			lgr.Error().Err(err).Str("folder", name).Msg("Error creating seed folder")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Starter courses --- //
	type starter struct {
		folder string
		course appModels.Course
	}
	starters := []starter{
		{folder: "Engineering", course: appModels.Course{
			Name: "Computer Science", Level: appModels.LevelBachelor,
			Category: "Other", Duration: "3 years", Credits: "120",
		}},
		{folder: "Engineering", course: appModels.Course{
			Name: "Software Engineering", Level: appModels.LevelMasters,
			Category: "Postgraduate", Duration: "2 years", Credits: "40",
		}},
		{folder: "Business", course: appModels.Course{
			Name: "Business Administration", Level: appModels.LevelBachelor,
			Category: "Other", Duration: "3 years", Credits: "120",
		}},
	}
	for _, s := range starters {
		course := s.course
		if id, ok := folderIDs[s.folder]; ok {
			fid := id
			course.FolderID = &fid
		}
		err := courseRepo.Create(ctx, &course)
		if err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("course", course.Name).Msg("Error creating seed course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}
