package dto

// ── news ──

// NewsForm create/update an article. Published defaults to true on create.
type NewsForm struct {
	Title     string `form:"title"     validate:"required,max=255"                 label:"título"`
	Content   string `form:"content"   validate:"required"                         label:"contenido"`
	Location  string `form:"location"  validate:"required,max=255"                 label:"lugar"`
	Date      string `form:"date"      validate:"required,datetime=2006-01-02"     label:"fecha"`
	Published *bool  `form:"published"`
}

// NewsResponse article row.
type NewsResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	Location  string  `json:"location"`
	Content   string  `json:"content"`
	Image     *string `json:"image"`
	PublicID  *string `json:"public_id"`
	Status    bool    `json:"status"`
	CreatedBy *string `json:"created_by"`
	UpdatedBy string  `json:"updated_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
