package dto

// ── site settings ──

// SettingForm upserts the setting identified by Name.
type SettingForm struct {
	Name string `form:"name" validate:"required,oneof=teachers-cover about-cover program-cover history-image curriculum-map-image resolution-document" label:"nombre"`
}

// SettingResponse setting row.
type SettingResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Image              string `json:"image,omitempty"`
	DocumentURL        string `json:"document_url,omitempty"`
	DocumentPreviewURL string `json:"document_preview_url,omitempty"`
	DocumentBytes      int64  `json:"document_bytes,omitempty"`
	DocumentPages      *int   `json:"document_pages,omitempty"`
	UpdatedAt          string `json:"updated_at"`
	UpdatedBy          string `json:"updated_by"`
}
