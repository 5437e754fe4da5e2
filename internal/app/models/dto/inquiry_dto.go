package dto

import "github.com/almokadam/backoffice/internal/app/models"

// CreateInquiryRequest is the public contact form payload
type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// UpdateInquiryStatusRequest moves an inquiry between handling states
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted closed"`
}

// InquiryListResponse represents a page of inquiries
type InquiryListResponse struct {
	Inquiries  []*models.Inquiry `json:"inquiries"`
	Pagination PaginationInfo    `json:"pagination"`
}

// DashboardResponse carries the admin landing page counts and the most
// recent inquiries
type DashboardResponse struct {
	NewInquiries    int64             `json:"newInquiries"`
	Courses         int64             `json:"courses"`
	Universities    int64             `json:"universities"`
	TeamMembers     int64             `json:"teamMembers"`
	RecentInquiries []*models.Inquiry `json:"recentInquiries"`
}
