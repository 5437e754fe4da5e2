package selection

// TriState is the folder-level checkbox value derived from the selection
// status of the folder's courses.
type TriState string

const (
	TriStateAll     TriState = "all"
	TriStateNone    TriState = "none"
	TriStatePartial TriState = "partial"
)

// TriState computes the selection state of a folder live against the current
// catalog membership. It is never cached: folder membership can change when
// CreateAndSelect appends to the catalog snapshot. An empty folder reports
// none.
func (s *Session) TriState(folderID string) TriState {
	members := s.folderMembers(folderID)
	if len(members) == 0 {
		return TriStateNone
	}

	selected := 0
	for _, c := range members {
		if s.Selected(c.ID) {
			selected++
		}
	}

	switch selected {
	case 0:
		return TriStateNone
	case len(members):
		return TriStateAll
	default:
		return TriStatePartial
	}
}
