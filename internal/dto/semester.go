package dto

// ── semesters ──

// SemesterForm create/update a semester. Number is required on create only,
// the service enforces that together with the accepted range.
type SemesterForm struct {
	Number      string `form:"number"      validate:"omitempty,number"   label:"número"`
	Description string `form:"description" validate:"omitempty,max=1000" label:"descripción"`
	IsActive    *bool  `form:"is_active"`
}

// SemesterResponse semester row.
type SemesterResponse struct {
	ID          string  `json:"id"`
	Number      int     `json:"number"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Image       string  `json:"image"`
	IsActive    bool    `json:"is_active"`
	UpdatedAt   string  `json:"updated_at"`
	UpdatedBy   string  `json:"updated_by"`
}
