package dto

// ── gallery ──

// GalleryForm create/update a gallery item.
type GalleryForm struct {
	Type string `form:"type" validate:"required,oneof=lab event student campus-life" label:"tipo"`
}

// GalleryResponse gallery row.
type GalleryResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Image        string  `json:"image"`
	ThumbnailURL string  `json:"thumbnail_url"`
	CreatedBy    *string `json:"created_by"`
	UpdatedBy    string  `json:"updated_by"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
