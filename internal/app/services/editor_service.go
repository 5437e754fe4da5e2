package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/repositories"
	"github.com/almokadam/backoffice/internal/app/selection"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
)

// editorSession is one live course selection editor, keyed by session ID.
// Sessions are held in memory and expire after the configured idle TTL;
// nothing touches the university row until Save.
type editorSession struct {
	mu           sync.Mutex
	session      *selection.Session
	universityID *int64
	lastAccess   time.Time
}

// EditorService manages course selection editor sessions for university pages
type EditorService struct {
	courseRepo     *repositories.CourseRepository
	folderRepo     *repositories.FolderRepository
	universityRepo *repositories.UniversityRepository
	ttl            time.Duration
	logger         zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*editorSession
}

// NewEditorService creates a new editor service instance
func NewEditorService(
	courseRepo *repositories.CourseRepository,
	folderRepo *repositories.FolderRepository,
	universityRepo *repositories.UniversityRepository,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) *EditorService {
	return &EditorService{
		courseRepo:     courseRepo,
		folderRepo:     folderRepo,
		universityRepo: universityRepo,
		ttl:            sessionTTL,
		logger:         logger,
		sessions:       make(map[string]*editorSession),
	}
}

// loadCatalog snapshots the current course catalog into selection types.
// The snapshot is fixed for the session lifetime, except for courses the
// session itself creates.
func (s *EditorService) loadCatalog(ctx context.Context) ([]selection.CatalogCourse, []selection.Folder, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading catalog: %w", err)
	}
	folders, err := s.folderRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading folders: %w", err)
	}

	catalog := make([]selection.CatalogCourse, 0, len(courses))
	for _, c := range courses {
		folderID := ""
		if c.FolderID != nil {
			folderID = strconv.FormatInt(*c.FolderID, 10)
		}
		catalog = append(catalog, selection.CatalogCourse{
			ID:       strconv.FormatInt(c.ID, 10),
			Name:     c.Name,
			Level:    string(c.Level),
			Category: c.Category,
			FolderID: folderID,
		})
	}

	groups := make([]selection.Folder, 0, len(folders))
	for _, f := range folders {
		groups = append(groups, selection.Folder{
			ID:   strconv.FormatInt(f.ID, 10),
			Name: f.Name,
		})
	}

	return catalog, groups, nil
}

// Open starts an editor session. With a university ID the session seeds from
// the stored course offerings; without one it starts empty for a new page.
func (s *EditorService) Open(ctx context.Context, universityID *int64) (*dto.EditorSessionResponse, error) {
	var seedOfferings []selection.Offering
	if universityID != nil {
		u, err := s.universityRepo.GetByID(ctx, *universityID)
		if err != nil {
			return nil, err
		}
		seedOfferings = make([]selection.Offering, 0, len(u.CourseOfferings))
		for _, o := range u.CourseOfferings {
			seedOfferings = append(seedOfferings, selection.Offering{
				CourseID:      strconv.FormatInt(o.CourseID, 10),
				Fees:          o.Fees,
				Currency:      o.Currency,
				DurationYears: o.DurationYears,
				Intake:        o.Intake,
			})
		}
	}

	catalog, folders, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	sess := selection.NewSession(catalog, folders)
	if seedOfferings != nil {
		sess.Seed(seedOfferings)
	}

	id := uuid.New().String()
	es := &editorSession{
		session:      sess,
		universityID: universityID,
		lastAccess:   time.Now(),
	}

	s.mu.Lock()
	s.pruneLocked()
	s.sessions[id] = es
	s.mu.Unlock()

	s.logger.Debug().Str("sessionId", id).Msg("Editor session opened")
	return s.render(id, es), nil
}

// pruneLocked drops idle sessions. Caller holds s.mu.
func (s *EditorService) pruneLocked() {
	cutoff := time.Now().Add(-s.ttl)
	for id, es := range s.sessions {
		if es.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func (s *EditorService) acquire(sessionID string) (*editorSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	es, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrEditorSessionNotFound
	}
	es.lastAccess = time.Now()
	return es, nil
}

// Get renders the current state of a session
func (s *EditorService) Get(sessionID string) (*dto.EditorSessionResponse, error) {
	es, err := s.acquire(sessionID)
	if err != nil {
		return nil, err
	}

	es.mu.Lock()
	defer es.mu.Unlock()
	return s.render(sessionID, es), nil
}

// ToggleCourse flips the selection of one course
func (s *EditorService) ToggleCourse(sessionID, courseID string) (*dto.EditorSessionResponse, error) {
	es, err := s.acquire(sessionID)
	if err != nil {
		return nil, err
	}

	es.mu.Lock()
	defer es.mu.Unlock()
	es.session.ToggleCourse(courseID)
	return s.render(sessionID, es), nil
}

// ToggleFolder applies a folder-level select-all or clear-all
func (s *EditorService) ToggleFolder(sessionID, folderID, action string) (*dto.EditorSessionResponse, error) {
	es, err := s.acquire(sessionID)
	if err != nil {
		return nil, err
	}

	var folderAction selection.FolderAction
	switch action {
	case "select-all":
		folderAction = selection.SelectAll
	case "clear-all":
		folderAction = selection.ClearAll
	default:
		return nil, fmt.Errorf("%w: unknown folder action %q", apperrors.ErrValidationFailed, action)
	}

	es.mu.Lock()
	defer es.mu.Unlock()
	es.session.ToggleFolder(folderID, folderAction)
	return s.render(sessionID, es), nil
}

// UpdateField edits one commercial term of a selected course. Selection
// errors pass through untouched so the error middleware can classify them.
func (s *EditorService) UpdateField(sessionID string, req *dto.UpdateFieldRequest) (*dto.EditorSessionResponse, error) {
	es, err := s.acquire(sessionID)
	if err != nil {
		return nil, err
	}

	es.mu.Lock()
	defer es.mu.Unlock()
	if err := es.session.UpdateField(req.CourseID, selection.Field(req.Field), req.Value); err != nil {
		return nil, err
	}
	return s.render(sessionID, es), nil
}

// catalogWriter bridges the selection package to the course repository for
// courses created inside the editor.
type catalogWriter struct {
	repo *repositories.CourseRepository
}

func (w *catalogWriter) CreateCourse(ctx context.Context, course *selection.CatalogCourse) (string, error) {
	c := &models.Course{
		Name:     course.Name,
		Level:    models.CourseLevel(course.Level),
		Category: course.Category,
	}
	if err := w.repo.Create(ctx, c); err != nil {
		return "", err
	}
	return strconv.FormatInt(c.ID, 10), nil
}

// CreateAndSelect creates a catalog course from the picker search box and
// selects it in one step
func (s *EditorService) CreateAndSelect(ctx context.Context, sessionID, name string) (*dto.EditorSessionResponse, error) {
	es, err := s.acquire(sessionID)
	if err != nil {
		return nil, err
	}

	es.mu.Lock()
	defer es.mu.Unlock()
	if _, err := es.session.CreateAndSelect(ctx, name, &catalogWriter{repo: s.courseRepo}); err != nil {
		return nil, err
	}
	return s.render(sessionID, es), nil
}

// Filter returns picker suggestions for a search query
func (s *EditorService) Filter(sessionID, query string) ([]dto.SuggestionResponse, error) {
	es, err := s.acquire(sessionID)
	if err != nil {
		return nil, err
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	suggestions := es.session.FilterCatalog(query)
	out := make([]dto.SuggestionResponse, 0, len(suggestions))
	for _, sug := range suggestions {
		out = append(out, dto.SuggestionResponse{
			CourseID:  sug.CourseID,
			Name:      sug.Name,
			Level:     sug.Level,
			Category:  sug.Category,
			CreateNew: sug.CreateNew,
		})
	}
	return out, nil
}

// Save flattens the session into course offerings on the university row.
// A session opened without a university must pass the target ID here. The
// session stays alive after saving.
func (s *EditorService) Save(ctx context.Context, sessionID string, universityID *int64) error {
	es, err := s.acquire(sessionID)
	if err != nil {
		return err
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	target := es.universityID
	if universityID != nil {
		target = universityID
	}
	if target == nil {
		return fmt.Errorf("%w: session is not bound to a university", apperrors.ErrValidationFailed)
	}

	serialized := es.session.Serialize()
	offerings := make([]models.CourseOffering, 0, len(serialized))
	for _, o := range serialized {
		courseID, err := strconv.ParseInt(o.CourseID, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: offering references malformed course ID %q", apperrors.ErrValidationFailed, o.CourseID)
		}
		offerings = append(offerings, models.CourseOffering{
			CourseID:      courseID,
			Fees:          o.Fees,
			Currency:      o.Currency,
			DurationYears: o.DurationYears,
			Intake:        o.Intake,
		})
	}

	if err := s.universityRepo.SetCourseOfferings(ctx, *target, offerings); err != nil {
		return err
	}

	es.universityID = target
	s.logger.Info().Str("sessionId", sessionID).Int64("universityId", *target).
		Int("offerings", len(offerings)).Msg("Editor session saved")
	return nil
}

// Close drops a session without saving
func (s *EditorService) Close(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// render projects a session into its response shape. Caller holds es.mu or
// has exclusive access.
func (s *EditorService) render(sessionID string, es *editorSession) *dto.EditorSessionResponse {
	view := es.session.View()
	resp := &dto.EditorSessionResponse{
		SessionID:     sessionID,
		UniversityID:  es.universityID,
		SelectedCount: len(es.session.Entries()),
		Folders:       make([]dto.EditorFolderResponse, 0, len(view)),
	}

	for _, folder := range view {
		group := dto.EditorFolderResponse{
			FolderID: folder.FolderID,
			Name:     folder.Name,
			TriState: string(folder.TriState),
			Courses:  make([]dto.EditorCourseResponse, 0, len(folder.Courses)),
		}
		for _, course := range folder.Courses {
			row := dto.EditorCourseResponse{
				CourseID: course.CourseID,
				Name:     course.Name,
				Level:    course.Level,
				Category: course.Category,
				Selected: course.Selected,
			}
			if course.Entry != nil {
				row.Entry = &dto.EditorEntryResponse{
					CourseID:      course.Entry.CourseID,
					CourseName:    course.Entry.CourseName,
					Level:         course.Entry.Level,
					Category:      course.Entry.Category,
					Fees:          course.Entry.Fees,
					Currency:      course.Entry.Currency,
					DurationYears: course.Entry.DurationYears,
					Intake:        course.Entry.Intake,
				}
			}
			group.Courses = append(group.Courses, row)
		}
		resp.Folders = append(resp.Folders, group)
	}

	return resp
}
