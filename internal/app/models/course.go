package models

// Course represents a catalog course independent of any university.
type Course struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Level       CourseLevel `json:"level" db:"level"`
	Category    string      `json:"category" db:"category"`
	FolderID    *int64      `json:"folderId,omitempty" db:"folder_id"` // Nullable, nil means uncategorized
	Duration    string      `json:"duration" db:"duration"`
	Credits     string      `json:"credits" db:"credits"`
	Image       string      `json:"image" db:"image"`
	Description string      `json:"description" db:"description"`

	// Relations (populated when needed)
	Folder *CourseFolder `json:"folder,omitempty"`
}
