package models

import "time"

// TeamMember is one counselor or staff member shown on the site.
type TeamMember struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Role         string `json:"role" db:"role"`
	DisplayOrder int    `json:"order" db:"display_order"`
	Bio          string `json:"bio" db:"bio"`
	PhotoPath    string `json:"photoPath" db:"photo_path"`
	Active       bool   `json:"active" db:"active"`
}

// Testimonial is a student quote, optionally featured on the homepage.
type Testimonial struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Program   string    `json:"program" db:"program"`
	Quote     string    `json:"quote" db:"quote"`
	PhotoPath string    `json:"photoPath" db:"photo_path"`
	Featured  bool      `json:"featured" db:"featured"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Service is one agency service card.
type Service struct {
	ID           int64  `json:"id" db:"id"`
	Icon         string `json:"icon" db:"icon"`
	DisplayOrder int    `json:"order" db:"display_order"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description" db:"description"`
	Active       bool   `json:"active" db:"active"`
}
