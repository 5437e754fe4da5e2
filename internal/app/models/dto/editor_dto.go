package dto

// ToggleCourseRequest toggles one course in an editor session
type ToggleCourseRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// ToggleFolderRequest applies a folder-level select-all or clear-all
type ToggleFolderRequest struct {
	FolderID string `json:"folderId" binding:"required"`
	Action   string `json:"action" binding:"required,oneof=select-all clear-all"`
}

// UpdateFieldRequest edits one field of a selected course
type UpdateFieldRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Field    string `json:"field" binding:"required,oneof=fees currency durationYears intake"`
	Value    string `json:"value" binding:"required"`
}

// CreateAndSelectRequest creates a catalog course from the picker and selects it
type CreateAndSelectRequest struct {
	Name string `json:"name" binding:"required"`
}

// EditorEntryResponse is one selected course with its commercial terms
type EditorEntryResponse struct {
	CourseID      string   `json:"courseId"`
	CourseName    string   `json:"courseName"`
	Level         string   `json:"level"`
	Category      string   `json:"category"`
	Fees          int      `json:"fees"`
	Currency      string   `json:"currency"`
	DurationYears int      `json:"durationYears"`
	Intake        []string `json:"intake"`
}

// EditorCourseResponse is one course row in the picker view
type EditorCourseResponse struct {
	CourseID string               `json:"courseId"`
	Name     string               `json:"name"`
	Level    string               `json:"level"`
	Category string               `json:"category"`
	Selected bool                 `json:"selected"`
	Entry    *EditorEntryResponse `json:"entry,omitempty"`
}

// EditorFolderResponse is one folder group in the picker view with its
// tri-state checkbox value
type EditorFolderResponse struct {
	FolderID string                 `json:"folderId"`
	Name     string                 `json:"name"`
	TriState string                 `json:"triState" enums:"all,none,partial"`
	Courses  []EditorCourseResponse `json:"courses"`
}

// EditorSessionResponse is the full editor session view model
type EditorSessionResponse struct {
	SessionID     string                 `json:"sessionId"`
	UniversityID  *int64                 `json:"universityId,omitempty"`
	SelectedCount int                    `json:"selectedCount"`
	Folders       []EditorFolderResponse `json:"folders"`
}

// SuggestionResponse is one row of the course search dropdown
type SuggestionResponse struct {
	CourseID  string `json:"courseId,omitempty"`
	Name      string `json:"name"`
	Level     string `json:"level,omitempty"`
	Category  string `json:"category,omitempty"`
	CreateNew bool   `json:"createNew"`
}

// SaveEditorRequest flattens a session onto a university page. The
// universityId is only needed for sessions opened without one.
type SaveEditorRequest struct {
	UniversityID *int64 `json:"universityId" binding:"omitempty,gt=0"`
}
