package dto

// SaveTeamMemberRequest represents team member create/update data
type SaveTeamMemberRequest struct {
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Order     int    `json:"order" binding:"omitempty,gte=1"`
	Bio       string `json:"bio"`
	PhotoPath string `json:"photoPath"`
	Active    *bool  `json:"active"`
}

// SaveTestimonialRequest represents testimonial create/update data
type SaveTestimonialRequest struct {
	Name      string `json:"name" binding:"required"`
	Program   string `json:"program" binding:"required"`
	Quote     string `json:"quote" binding:"required"`
	PhotoPath string `json:"photoPath"`
	Featured  *bool  `json:"featured"`
}

// SaveServiceRequest represents service create/update data
type SaveServiceRequest struct {
	Icon        string `json:"icon" binding:"max=30"`
	Order       int    `json:"order" binding:"omitempty,gte=1"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}
