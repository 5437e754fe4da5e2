package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCatalogMatchesUnselected(t *testing.T) {
	s := newTestSession()

	out := s.FilterCatalog("engineering")
	require.Len(t, out, 2)
	assert.Equal(t, "c2", out[0].CourseID)
	assert.True(t, out[1].CreateNew)

	// Selected courses drop out of the matches.
	s.ToggleCourse("c2")
	out = s.FilterCatalog("engineering")
	require.Len(t, out, 1)
	assert.True(t, out[0].CreateNew)
}

func TestFilterCatalogExactMatchSuppressesCreateNew(t *testing.T) {
	s := newTestSession()

	out := s.FilterCatalog("law")
	require.Len(t, out, 1)
	assert.Equal(t, "c3", out[0].CourseID)
	assert.False(t, out[0].CreateNew)

	// Exact match on a selected course still suppresses the create-new row.
	s.ToggleCourse("c3")
	out = s.FilterCatalog("Law")
	assert.Empty(t, out)
}

func TestFilterCatalogLimit(t *testing.T) {
	catalog := make([]CatalogCourse, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		catalog = append(catalog, CatalogCourse{ID: id, Name: "Course " + id})
	}
	s := NewSession(catalog, nil)

	out := s.FilterCatalog("course")
	require.Len(t, out, 6)
	for _, sug := range out[:5] {
		assert.False(t, sug.CreateNew)
	}
	assert.True(t, out[5].CreateNew)
}

func TestFilterCatalogEmptyQuery(t *testing.T) {
	s := newTestSession()
	assert.Empty(t, s.FilterCatalog("   "))
}
