package dto

import "github.com/almokadam/backoffice/internal/app/models"

// SaveUniversityRequest represents university create/update data. Course
// offerings are managed through the editor session endpoints, not here.
type SaveUniversityRequest struct {
	ShortCode           string       `json:"shortCode" binding:"required,max=10"`
	Order               int          `json:"order" binding:"omitempty,gte=1"`
	Name                string       `json:"name" binding:"required"`
	Location            string       `json:"location"`
	Ranking             *int         `json:"ranking" binding:"omitempty,gt=0"`
	Intro               string       `json:"intro"`
	AboutContent        string       `json:"aboutContent"`
	Logo                string       `json:"logo"`
	Image               string       `json:"image"`
	YoutubeVideo        string       `json:"youtubeVideo"`
	AccommodationSearch string       `json:"accommodationSearch"`
	NextIntakeDate      string       `json:"nextIntakeDate" binding:"omitempty,datetime=2006-01-02"`
	IntakeMonths        []string     `json:"intakeMonths"`
	OfferLetterFree     *bool        `json:"offerLetterFree"`
	FAQs                []models.FAQ `json:"faqs"`
	Active              *bool        `json:"active"`
}

// UniversityListResponse represents a list of universities
type UniversityListResponse struct {
	Universities []*models.University `json:"universities"`
}
