package models

import "time"

// FAQ is one question/answer pair shown on a university page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CourseOffering is the persisted, flattened attachment of a catalog course
// to a university, with the commercial terms configured in the editor.
type CourseOffering struct {
	CourseID      int64    `json:"courseId"`
	Fees          int      `json:"fees"`
	Currency      string   `json:"currency"`
	DurationYears int      `json:"durationYears"`
	Intake        []string `json:"intake"`
}

// University represents a partner university managed in the back office.
type University struct {
	ID                  int64            `json:"id" db:"id"`
	ShortCode           string           `json:"shortCode" db:"short_code"`
	DisplayOrder        int              `json:"order" db:"display_order"`
	Name                string           `json:"name" db:"name"`
	Location            string           `json:"location" db:"location"`
	Ranking             *int             `json:"ranking,omitempty" db:"ranking"` // Nullable QS ranking
	Intro               string           `json:"intro" db:"intro"`
	AboutContent        string           `json:"aboutContent" db:"about_content"`
	Logo                string           `json:"logo" db:"logo"`
	Image               string           `json:"image" db:"image"`
	YoutubeVideo        string           `json:"youtubeVideo" db:"youtube_video"`
	AccommodationSearch string           `json:"accommodationSearch" db:"accommodation_search"`
	NextIntakeDate      *time.Time       `json:"nextIntakeDate,omitempty" db:"next_intake_date"`
	IntakeMonths        []string         `json:"intakeMonths" db:"intake_months"`
	OfferLetterFree     bool             `json:"offerLetterFree" db:"offer_letter_free"`
	FAQs                []FAQ            `json:"faqs" db:"faqs"`
	CourseOfferings     []CourseOffering `json:"courseOfferings" db:"course_offerings"`
	Active              bool             `json:"active" db:"active"`
}
