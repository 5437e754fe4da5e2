package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewGroupsAndTriStates(t *testing.T) {
	s := newTestSession()
	s.ToggleCourse("c1")
	s.ToggleCourse("c3")

	groups := s.View()
	require.Len(t, groups, 2, "empty Business folder is omitted")

	computing := groups[0]
	assert.Equal(t, "f1", computing.FolderID)
	assert.Equal(t, TriStatePartial, computing.TriState)
	require.Len(t, computing.Courses, 2)
	assert.True(t, computing.Courses[0].Selected)
	require.NotNil(t, computing.Courses[0].Entry)
	assert.Equal(t, "MYR", computing.Courses[0].Entry.Currency)
	assert.False(t, computing.Courses[1].Selected)
	assert.Nil(t, computing.Courses[1].Entry)

	uncat := groups[1]
	assert.Equal(t, UncategorizedID, uncat.FolderID)
	assert.Equal(t, "Uncategorized", uncat.Name)
	assert.Equal(t, TriStatePartial, uncat.TriState)
	assert.Len(t, uncat.Courses, 3)
}

func TestViewIsIdempotent(t *testing.T) {
	s := newTestSession()
	s.ToggleFolder("f1", SelectAll)

	first := s.View()
	second := s.View()
	assert.Equal(t, first, second)
}
