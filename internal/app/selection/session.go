package selection

import (
	"context"
	"strconv"
	"strings"

	"github.com/almokadam/backoffice/internal/pkg/logger"
)

// UncategorizedID is the synthetic folder bucket for courses without a folder
// reference (or whose reference points at a folder that no longer exists).
const UncategorizedID = "uncategorized"

// Defaults applied when a course is first selected.
const (
	DefaultCurrency      = "MYR"
	DefaultDurationYears = 3
	DefaultLevel         = "Bachelor"
	DefaultCategory      = "Other"
)

// DefaultIntake returns the intake set a fresh selection starts with.
func DefaultIntake() []string {
	return []string{"September"}
}

// SupportedCurrencies is the fixed set accepted by UpdateField.
var SupportedCurrencies = []string{"MYR", "USD", "GBP", "EUR", "SAR", "AED", "PKR", "BDT", "NGN"}

// CatalogCourse is a read-only course record from the catalog snapshot.
type CatalogCourse struct {
	ID       string
	Name     string
	Level    string
	Category string
	FolderID string // empty means uncategorized
}

// Folder is a read-only folder record, ordered for display.
type Folder struct {
	ID    string
	Name  string
	Order int
}

// Entry is one course attached to the university being edited, with the
// commercial terms configured in this session. CourseName, Level and Category
// are denormalized for display only and are not persisted.
type Entry struct {
	CourseID      string
	CourseName    string
	Level         string
	Category      string
	Fees          int
	Currency      string
	DurationYears int
	Intake        []string
}

// Offering is the flattened, persisted form of an Entry.
type Offering struct {
	CourseID      string   `json:"courseId"`
	Fees          int      `json:"fees"`
	Currency      string   `json:"currency"`
	DurationYears int      `json:"durationYears"`
	Intake        []string `json:"intake"`
}

// Field names accepted by UpdateField.
type Field string

const (
	FieldFees          Field = "fees"
	FieldCurrency      Field = "currency"
	FieldDurationYears Field = "durationYears"
	FieldIntake        Field = "intake"
)

// FolderAction is the desired outcome of a folder-level checkbox click.
type FolderAction int

const (
	SelectAll FolderAction = iota
	ClearAll
)

// CatalogWriter persists a new course created on the fly from the picker. The
// write must complete before the new course is selected.
type CatalogWriter interface {
	CreateCourse(ctx context.Context, course *CatalogCourse) (string, error)
}

// Session tracks which courses are attached to the university being edited.
// It owns the entry set exclusively; the catalog and folder snapshots are
// read-only collaborators, mutated only by CreateAndSelect appending one row.
// Not safe for concurrent use; callers serialize access.
type Session struct {
	catalog []CatalogCourse
	folders []Folder
	entries []*Entry // insertion order, preserved across toggles
}

// NewSession creates an empty session over the given catalog and folder
// snapshots.
func NewSession(catalog []CatalogCourse, folders []Folder) *Session {
	return &Session{
		catalog: catalog,
		folders: folders,
	}
}

// Catalog returns the current catalog snapshot.
func (s *Session) Catalog() []CatalogCourse {
	return s.catalog
}

// Folders returns the folder snapshot.
func (s *Session) Folders() []Folder {
	return s.folders
}

// Entries returns the selection entries in insertion order.
func (s *Session) Entries() []*Entry {
	return s.entries
}

func (s *Session) findCourse(courseID string) *CatalogCourse {
	for i := range s.catalog {
		if s.catalog[i].ID == courseID {
			return &s.catalog[i]
		}
	}
	return nil
}

func (s *Session) findEntry(courseID string) (int, *Entry) {
	for i, e := range s.entries {
		if e.CourseID == courseID {
			return i, e
		}
	}
	return -1, nil
}

// Selected reports whether the course currently has a selection entry.
func (s *Session) Selected(courseID string) bool {
	_, e := s.findEntry(courseID)
	return e != nil
}

func (s *Session) addEntry(course *CatalogCourse) {
	s.entries = append(s.entries, &Entry{
		CourseID:      course.ID,
		CourseName:    course.Name,
		Level:         course.Level,
		Category:      orDefault(course.Category, DefaultCategory),
		Fees:          0,
		Currency:      DefaultCurrency,
		DurationYears: DefaultDurationYears,
		Intake:        DefaultIntake(),
	})
}

func (s *Session) removeEntry(idx int) {
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
}

// ToggleCourse selects the course if unselected, with default terms, and
// unselects it otherwise. Unknown course IDs are a silent no-op.
func (s *Session) ToggleCourse(courseID string) {
	if idx, e := s.findEntry(courseID); e != nil {
		s.removeEntry(idx)
		return
	}
	course := s.findCourse(courseID)
	if course == nil {
		logger.Debug().Str("courseId", courseID).Msg("toggle ignored, course not in catalog")
		return
	}
	s.addEntry(course)
}

// folderMembers returns the courses grouped under folderID. The synthetic
// uncategorized bucket collects courses without a folder reference or whose
// reference no longer resolves to a known folder.
func (s *Session) folderMembers(folderID string) []*CatalogCourse {
	known := make(map[string]bool, len(s.folders))
	for _, f := range s.folders {
		known[f.ID] = true
	}

	var members []*CatalogCourse
	for i := range s.catalog {
		c := &s.catalog[i]
		bucket := c.FolderID
		if bucket == "" || !known[bucket] {
			bucket = UncategorizedID
		}
		if bucket == folderID {
			members = append(members, c)
		}
	}
	return members
}

// ToggleFolder applies a select-all or clear-all over every course in the
// folder, including the synthetic uncategorized bucket. Idempotent: courses
// already in the desired state are untouched, so repeated calls with the same
// action change nothing.
func (s *Session) ToggleFolder(folderID string, action FolderAction) {
	for _, course := range s.folderMembers(folderID) {
		idx, e := s.findEntry(course.ID)
		switch action {
		case SelectAll:
			if e == nil {
				s.addEntry(course)
			}
		case ClearAll:
			if e != nil {
				s.removeEntry(idx)
			}
		}
	}
}

// UpdateField parses and applies one field edit to an active entry. Fees and
// duration are clamped rather than rejected; an unsupported currency or an
// empty intake leaves the entry unchanged and returns a ValidationError, as
// does an edit against a course with no active entry.
func (s *Session) UpdateField(courseID string, field Field, raw string) error {
	_, entry := s.findEntry(courseID)
	if entry == nil {
		logger.Warn().Str("courseId", courseID).Str("field", string(field)).Msg("field update for unselected course")
		return newValidationError(string(field), "course is not selected")
	}

	switch field {
	case FieldFees:
		entry.Fees = clampNonNegative(raw)
	case FieldCurrency:
		if !isSupportedCurrency(raw) {
			return newValidationError(string(field), "unsupported currency "+strconv.Quote(raw))
		}
		entry.Currency = raw
	case FieldDurationYears:
		entry.DurationYears = clampPositive(raw)
	case FieldIntake:
		intake, err := parseIntake(raw)
		if err != nil {
			return err
		}
		entry.Intake = intake
	default:
		return newValidationError(string(field), "unknown field")
	}
	return nil
}

func clampNonNegative(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func clampPositive(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func isSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// parseIntake maps the two-state intake input: "Both" expands to the two
// intake months, any other single label collapses to a one-element set.
func parseIntake(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, newValidationError(string(FieldIntake), "intake cannot be empty")
	}
	if strings.EqualFold(raw, "Both") {
		return []string{"September", "February"}, nil
	}
	return []string{raw}, nil
}

// CreateAndSelect creates a catalog course named name and selects it. When a
// course with the same name already exists (case-insensitive) it is selected
// instead and no write happens. The catalog write must succeed before any
// selection state changes; a failed write surfaces as PersistenceError.
func (s *Session) CreateAndSelect(ctx context.Context, name string, writer CatalogWriter) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "course name cannot be empty")
	}

	if existing := s.findCourseByName(name); existing != nil {
		s.ToggleCourse(existing.ID)
		_, entry := s.findEntry(existing.ID)
		return entry, nil
	}

	course := &CatalogCourse{
		Name:     name,
		Level:    DefaultLevel,
		Category: DefaultCategory,
	}
	id, err := writer.CreateCourse(ctx, course)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("catalog write failed")
		return nil, &PersistenceError{Op: "create course", Err: err}
	}
	course.ID = id

	s.catalog = append(s.catalog, *course)
	s.addEntry(course)
	_, entry := s.findEntry(id)
	return entry, nil
}

func (s *Session) findCourseByName(name string) *CatalogCourse {
	for i := range s.catalog {
		if strings.EqualFold(s.catalog[i].Name, name) {
			return &s.catalog[i]
		}
	}
	return nil
}

// Serialize flattens the entry set for persistence, dropping the denormalized
// display fields. Order is the insertion order of the entries.
func (s *Session) Serialize() []Offering {
	offerings := make([]Offering, 0, len(s.entries))
	for _, e := range s.entries {
		offerings = append(offerings, Offering{
			CourseID:      e.CourseID,
			Fees:          e.Fees,
			Currency:      e.Currency,
			DurationYears: e.DurationYears,
			Intake:        append([]string(nil), e.Intake...),
		})
	}
	return offerings
}

// Seed rebuilds the entry set from persisted offerings, resolving display
// fields against the catalog snapshot. Offerings whose course no longer exists
// are kept with an "Unknown Course" placeholder rather than dropped, so a
// configured fee or intake is never silently lost.
func (s *Session) Seed(offerings []Offering) {
	s.entries = s.entries[:0]
	for _, o := range offerings {
		entry := &Entry{
			CourseID:      o.CourseID,
			Fees:          o.Fees,
			Currency:      orDefault(o.Currency, DefaultCurrency),
			DurationYears: o.DurationYears,
			Intake:        append([]string(nil), o.Intake...),
		}
		if entry.DurationYears < 1 {
			entry.DurationYears = DefaultDurationYears
		}
		if len(entry.Intake) == 0 {
			entry.Intake = DefaultIntake()
		}
		if course := s.findCourse(o.CourseID); course != nil {
			entry.CourseName = course.Name
			entry.Level = course.Level
			entry.Category = orDefault(course.Category, DefaultCategory)
		} else {
			logger.Warn().Str("courseId", o.CourseID).Msg("persisted offering references missing course")
			entry.CourseName = "Unknown Course"
			entry.Level = DefaultLevel
			entry.Category = DefaultCategory
		}
		s.entries = append(s.entries, entry)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
