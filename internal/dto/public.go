package dto

// ── public API projections ──

// PublicQuery filters accepted by the public listings.
type PublicQuery struct {
	Search     string `form:"search"          binding:"omitempty,max=100"`
	CategoryID string `form:"teacher_type_id" binding:"omitempty,uuid"`
	Category   string `form:"category"        binding:"omitempty,oneof=lab event student campus-life"`
	Page       int    `form:"page"            binding:"omitempty,min=1"`
}

// GetPage page number with default.
func (q *PublicQuery) GetPage() int {
	if q.Page <= 0 {
		return 1
	}
	return q.Page
}

type PublicNews struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Date     string  `json:"date"`
	Location string  `json:"location"`
	Content  string  `json:"content"`
	Image    *string `json:"image"`
}

type PublicGallery struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Image        string `json:"image"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type PublicSemester struct {
	ID          string  `json:"id"`
	Number      int     `json:"number"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Image       string  `json:"image"`
	IsActive    bool    `json:"is_active"`
}

type PublicTeacher struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	AcademicDegree string       `json:"academic_degree"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Image          string       `json:"image"`
	TeacherType    *CategoryRef `json:"teacher_type"`
}

type PublicSetting struct {
	Name               string `json:"name"`
	Image              string `json:"image,omitempty"`
	DocumentURL        string `json:"document_url,omitempty"`
	DocumentPreviewURL string `json:"document_preview_url,omitempty"`
	DocumentPages      *int   `json:"document_pages,omitempty"`
}
