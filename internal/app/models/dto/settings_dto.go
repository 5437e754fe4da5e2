package dto

// UpdateSettingsRequest merges fields over the stored site settings; empty
// fields leave the stored value untouched.
type UpdateSettingsRequest struct {
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address"`
	Whatsapp  string `json:"whatsapp"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// RatesResponse is the cached exchange-rate table for fee display
type RatesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt string             `json:"fetchedAt"`
	Stale     bool               `json:"stale"`
}
