package models

import "time"

// Inquiry is a message submitted through the website contact form.
type Inquiry struct {
	ID        int64         `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Phone     string        `json:"phone" db:"phone"`
	Message   string        `json:"message" db:"message"`
	Status    InquiryStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
