package models

// CourseFolder is an administrator-defined grouping label for courses, used
// only for organizing the catalog and the university course picker.
type CourseFolder struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	DisplayOrder int    `json:"order" db:"display_order"`
}
