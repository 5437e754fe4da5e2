package selection

// CourseView is one course row of the picker projection.
type CourseView struct {
	CourseID string
	Name     string
	Level    string
	Category string
	Selected bool
	// Entry is nil when the course is not selected.
	Entry *Entry
}

// FolderView is one folder group of the picker projection, with its computed
// tri-state checkbox value.
type FolderView struct {
	FolderID string
	Name     string
	TriState TriState
	Courses  []CourseView
}

// View projects the session into the folder-grouped picker view model.
// Folders keep their display order; a trailing "Uncategorized" group collects
// courses without a resolvable folder. Empty folders are omitted, matching
// the picker which only shows folders that have courses. The projection is
// pure and can be recomputed after every mutation.
func (s *Session) View() []FolderView {
	groups := make([]FolderView, 0, len(s.folders)+1)
	for _, f := range s.folders {
		if view, ok := s.folderView(f.ID, f.Name); ok {
			groups = append(groups, view)
		}
	}
	if view, ok := s.folderView(UncategorizedID, "Uncategorized"); ok {
		groups = append(groups, view)
	}
	return groups
}

func (s *Session) folderView(folderID, name string) (FolderView, bool) {
	members := s.folderMembers(folderID)
	if len(members) == 0 {
		return FolderView{}, false
	}

	view := FolderView{
		FolderID: folderID,
		Name:     name,
		TriState: s.TriState(folderID),
		Courses:  make([]CourseView, 0, len(members)),
	}
	for _, c := range members {
		_, entry := s.findEntry(c.ID)
		view.Courses = append(view.Courses, CourseView{
			CourseID: c.ID,
			Name:     c.Name,
			Level:    c.Level,
			Category: orDefault(c.Category, DefaultCategory),
			Selected: entry != nil,
			Entry:    entry,
		})
	}
	return view, true
}
