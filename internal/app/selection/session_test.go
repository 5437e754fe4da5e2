package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []CatalogCourse {
	return []CatalogCourse{
		{ID: "c1", Name: "Computer Science", Level: "Bachelor", Category: "IT", FolderID: "f1"},
		{ID: "c2", Name: "Software Engineering", Level: "Bachelor", Category: "IT", FolderID: "f1"},
		{ID: "c3", Name: "Law", Level: "Bachelor", Category: "Law"},
		{ID: "c4", Name: "Medicine", Level: "Bachelor", Category: "Health Sciences"},
		{ID: "c5", Name: "Nursing", Level: "Diploma", Category: "Health Sciences"},
	}
}

func testFolders() []Folder {
	return []Folder{
		{ID: "f1", Name: "Computing", Order: 1},
		{ID: "f2", Name: "Business", Order: 2},
	}
}

func newTestSession() *Session {
	return NewSession(testCatalog(), testFolders())
}

func TestToggleCourse(t *testing.T) {
	s := newTestSession()

	s.ToggleCourse("c1")
	require.Len(t, s.Entries(), 1)

	entry := s.Entries()[0]
	assert.Equal(t, "c1", entry.CourseID)
	assert.Equal(t, "Computer Science", entry.CourseName)
	assert.Equal(t, "Bachelor", entry.Level)
	assert.Equal(t, "IT", entry.Category)
	assert.Equal(t, 0, entry.Fees)
	assert.Equal(t, "MYR", entry.Currency)
	assert.Equal(t, 3, entry.DurationYears)
	assert.Equal(t, []string{"September"}, entry.Intake)

	// Double toggle returns to the prior state.
	s.ToggleCourse("c1")
	assert.Empty(t, s.Entries())

	// Odd number of toggles leaves the course selected.
	s.ToggleCourse("c1")
	s.ToggleCourse("c1")
	s.ToggleCourse("c1")
	assert.True(t, s.Selected("c1"))
}

func TestToggleCourseUnknownIsNoOp(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("nope")
	assert.Empty(t, s.Entries())
}

func TestToggleCourseDefaultsCategory(t *testing.T) {
	s := NewSession([]CatalogCourse{{ID: "x", Name: "X", Level: "Bachelor"}}, nil)
	s.ToggleCourse("x")
	assert.Equal(t, "Other", s.Entries()[0].Category)
}

func TestToggleFolderSelectAll(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("c1") // one course already selected

	s.ToggleFolder("f1", SelectAll)
	assert.Len(t, s.Entries(), 2)
	assert.Equal(t, TriStateAll, s.TriState("f1"))

	// Idempotent: repeating changes nothing.
	s.ToggleFolder("f1", SelectAll)
	assert.Len(t, s.Entries(), 2)

	s.ToggleFolder("f1", ClearAll)
	assert.Empty(t, s.Entries())
	assert.Equal(t, TriStateNone, s.TriState("f1"))
}

func TestToggleFolderUncategorized(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("c3") // 1 of 3 uncategorized already selected

	s.ToggleFolder(UncategorizedID, SelectAll)

	assert.Len(t, s.Entries(), 3)
	assert.Equal(t, TriStateAll, s.TriState(UncategorizedID))
}

func TestToggleFolderPreservesFieldEdits(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("c1")
	require.NoError(t, s.UpdateField("c1", FieldFees, "25000"))

	s.ToggleFolder("f1", SelectAll)

	_, entry := s.findEntry("c1")
	assert.Equal(t, 25000, entry.Fees)
}

func TestTriState(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, TriStateNone, s.TriState("f1"))

	s.ToggleCourse("c1")
	assert.Equal(t, TriStatePartial, s.TriState("f1"))

	s.ToggleCourse("c2")
	assert.Equal(t, TriStateAll, s.TriState("f1"))

	s.ToggleCourse("c2")
	assert.Equal(t, TriStatePartial, s.TriState("f1"))

	// Folder with no courses, and an unknown folder id.
	assert.Equal(t, TriStateNone, s.TriState("f2"))
	assert.Equal(t, TriStateNone, s.TriState("ghost"))
}

func TestTriStateGroupsDanglingFolderRefsAsUncategorized(t *testing.T) {
	catalog := []CatalogCourse{
		{ID: "a", Name: "A", FolderID: "deleted-folder"},
		{ID: "b", Name: "B"},
	}
	s := NewSession(catalog, testFolders())

	s.ToggleFolder(UncategorizedID, SelectAll)
	assert.Len(t, s.Entries(), 2)
	assert.Equal(t, TriStateAll, s.TriState(UncategorizedID))
}

func TestUpdateFieldClamping(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("c1")

	tests := []struct {
		name  string
		field Field
		raw   string
		check func(t *testing.T, e *Entry)
	}{
		{"fees negative clamps to zero", FieldFees, "-5", func(t *testing.T, e *Entry) {
			assert.Equal(t, 0, e.Fees)
		}},
		{"fees garbage clamps to zero", FieldFees, "abc", func(t *testing.T, e *Entry) {
			assert.Equal(t, 0, e.Fees)
		}},
		{"fees valid", FieldFees, "42000", func(t *testing.T, e *Entry) {
			assert.Equal(t, 42000, e.Fees)
		}},
		{"duration zero clamps to one", FieldDurationYears, "0", func(t *testing.T, e *Entry) {
			assert.Equal(t, 1, e.DurationYears)
		}},
		{"duration garbage clamps to one", FieldDurationYears, "x", func(t *testing.T, e *Entry) {
			assert.Equal(t, 1, e.DurationYears)
		}},
		{"duration valid", FieldDurationYears, "4", func(t *testing.T, e *Entry) {
			assert.Equal(t, 4, e.DurationYears)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.UpdateField("c1", tt.field, tt.raw))
			_, entry := s.findEntry("c1")
			tt.check(t, entry)
		})
	}
}

func TestUpdateFieldCurrency(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("c1")

	require.NoError(t, s.UpdateField("c1", FieldCurrency, "USD"))
	_, entry := s.findEntry("c1")
	assert.Equal(t, "USD", entry.Currency)

	err := s.UpdateField("c1", FieldCurrency, "XXX")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "USD", entry.Currency, "rejected currency leaves entry unchanged")
}

func TestUpdateFieldIntake(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("c1")
	_, entry := s.findEntry("c1")

	require.NoError(t, s.UpdateField("c1", FieldIntake, "February"))
	assert.Equal(t, []string{"February"}, entry.Intake)

	require.NoError(t, s.UpdateField("c1", FieldIntake, "Both"))
	assert.Equal(t, []string{"September", "February"}, entry.Intake)

	err := s.UpdateField("c1", FieldIntake, "  ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"September", "February"}, entry.Intake)
}

func TestUpdateFieldUnselectedCourse(t *testing.T) {
	s := newTestSession()

	err := s.UpdateField("c1", FieldFees, "100")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

type catalogWriterStub struct {
	id      string
	err     error
	created []*CatalogCourse
}

func (w *catalogWriterStub) CreateCourse(_ context.Context, c *CatalogCourse) (string, error) {
	if w.err != nil {
		return "", w.err
	}
	w.created = append(w.created, c)
	return w.id, nil
}

func TestCreateAndSelect(t *testing.T) {
	s := newTestSession()
	writer := &catalogWriterStub{id: "c99"}

	entry, err := s.CreateAndSelect(context.Background(), "  Data Science  ", writer)
	require.NoError(t, err)
	require.Len(t, writer.created, 1)
	assert.Equal(t, "Data Science", writer.created[0].Name)
	assert.Equal(t, "Bachelor", writer.created[0].Level)
	assert.Equal(t, "Other", writer.created[0].Category)

	assert.Equal(t, "c99", entry.CourseID)
	assert.True(t, s.Selected("c99"))
	assert.Len(t, s.Catalog(), 6, "new course joins the catalog snapshot")
}

func TestCreateAndSelectExistingNameSkipsWrite(t *testing.T) {
	s := newTestSession()
	writer := &catalogWriterStub{id: "c99"}

	entry, err := s.CreateAndSelect(context.Background(), "computer science", writer)
	require.NoError(t, err)
	assert.Empty(t, writer.created, "no catalog write for an existing name")
	assert.Equal(t, "c1", entry.CourseID)
	assert.True(t, s.Selected("c1"))
}

func TestCreateAndSelectWriteFailure(t *testing.T) {
	s := newTestSession()
	writer := &catalogWriterStub{err: errors.New("network down")}

	_, err := s.CreateAndSelect(context.Background(), "Astrophysics", writer)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)

	assert.Empty(t, s.Entries(), "failed write leaves selection untouched")
	assert.Len(t, s.Catalog(), 5, "failed write leaves catalog untouched")
}

func TestCreateAndSelectEmptyName(t *testing.T) {
	s := newTestSession()

	_, err := s.CreateAndSelect(context.Background(), "   ", &catalogWriterStub{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSerializeOrderAndRoundTrip(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("c3")
	s.ToggleCourse("c1")
	require.NoError(t, s.UpdateField("c1", FieldFees, "20000"))
	require.NoError(t, s.UpdateField("c1", FieldIntake, "Both"))
	require.NoError(t, s.UpdateField("c3", FieldCurrency, "GBP"))

	// Toggling another course off and on keeps earlier entries in place.
	s.ToggleCourse("c4")
	s.ToggleCourse("c4")

	offerings := s.Serialize()
	require.Len(t, offerings, 2)
	assert.Equal(t, "c3", offerings[0].CourseID)
	assert.Equal(t, "c1", offerings[1].CourseID)
	assert.Equal(t, "GBP", offerings[0].Currency)
	assert.Equal(t, 20000, offerings[1].Fees)
	assert.Equal(t, []string{"September", "February"}, offerings[1].Intake)

	// Round trip: seeding a fresh session with the same snapshot reproduces
	// the entry set, with display fields recomputed from the catalog.
	s2 := newTestSession()
	s2.Seed(offerings)
	require.Len(t, s2.Entries(), 2)
	assert.Equal(t, offerings, s2.Serialize())
	assert.Equal(t, "Law", s2.Entries()[0].CourseName)
	assert.Equal(t, "Computer Science", s2.Entries()[1].CourseName)
}

func TestSeedEndToEnd(t *testing.T) {
	catalog := []CatalogCourse{
		{ID: "c1", Name: "CS", FolderID: "f1"},
		{ID: "c2", Name: "Law"},
	}
	folders := []Folder{{ID: "f1", Name: "Computing", Order: 1}}
	s := NewSession(catalog, folders)

	s.Seed([]Offering{{
		CourseID:      "c1",
		Fees:          20000,
		Currency:      "MYR",
		DurationYears: 3,
		Intake:        []string{"September"},
	}})

	require.Len(t, s.Entries(), 1)
	entry := s.Entries()[0]
	assert.Equal(t, "c1", entry.CourseID)
	assert.Equal(t, 20000, entry.Fees)
	assert.Equal(t, "MYR", entry.Currency)
	assert.Equal(t, 3, entry.DurationYears)
	assert.Equal(t, []string{"September"}, entry.Intake)

	assert.Equal(t, TriStateAll, s.TriState("f1"))
	assert.Equal(t, TriStateNone, s.TriState(UncategorizedID))
}

func TestSeedUnresolvedCourseKeepsEntry(t *testing.T) {
	s := newTestSession()
	s.Seed([]Offering{{
		CourseID:      "deleted",
		Fees:          9000,
		Currency:      "USD",
		DurationYears: 2,
		Intake:        []string{"February"},
	}})

	require.Len(t, s.Entries(), 1)
	entry := s.Entries()[0]
	assert.Equal(t, "Unknown Course", entry.CourseName)
	assert.Equal(t, 9000, entry.Fees, "configured terms survive the missing course")
	assert.Equal(t, "USD", entry.Currency)

	// Fields stay editable on the placeholder entry.
	require.NoError(t, s.UpdateField("deleted", FieldFees, "9500"))
	assert.Equal(t, 9500, entry.Fees)
}

func TestSeedAppliesDefaultsForMissingTerms(t *testing.T) {
	s := newTestSession()
	s.Seed([]Offering{{CourseID: "c1"}})

	entry := s.Entries()[0]
	assert.Equal(t, "MYR", entry.Currency)
	assert.Equal(t, 3, entry.DurationYears)
	assert.Equal(t, []string{"September"}, entry.Intake)
}

func TestSeedReplacesPriorEntries(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("c4")

	s.Seed([]Offering{{CourseID: "c1"}})
	require.Len(t, s.Entries(), 1)
	assert.Equal(t, "c1", s.Entries()[0].CourseID)
}
