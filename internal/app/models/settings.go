package models

// SiteSettings is the singleton contact/social settings record for the
// public site. Writes merge over the stored row.
type SiteSettings struct {
	Phone     string `json:"phone" db:"phone"`
	Email     string `json:"email" db:"email"`
	Address   string `json:"address" db:"address"`
	Whatsapp  string `json:"whatsapp" db:"whatsapp"`
	Facebook  string `json:"facebook" db:"facebook"`
	Instagram string `json:"instagram" db:"instagram"`
}
