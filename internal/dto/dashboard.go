package dto

// DashboardQuery filters of the dashboard panels.
type DashboardQuery struct {
	Search        string `form:"search"          binding:"omitempty,max=100"`
	TeacherSearch string `form:"teacher_search"  binding:"omitempty,max=100"`
	CategoryID    string `form:"teacher_type_id" binding:"omitempty,uuid"`
	Page          int    `form:"page"            binding:"omitempty,min=1"`
}

// DashboardCounts totals shown on the dashboard cards.
type DashboardCounts struct {
	Galleries int64 `json:"galleries"`
	News      int64 `json:"news"`
	Semesters int64 `json:"semesters"`
	Teachers  int64 `json:"teachers"`
}

// DashboardResponse summary of recent activity.
type DashboardResponse struct {
	Galleries    []GalleryResponse            `json:"galleries"`
	News         []NewsResponse               `json:"news"`
	Semesters    []SemesterResponse           `json:"semesters"`
	Teachers     *PageResult[TeacherResponse] `json:"teachers"`
	TeacherTypes []TeacherCategoryResponse    `json:"teacher_types"`
	Counts       DashboardCounts              `json:"counts"`
}
