package handler

import "github.com/w4d32001/admin-eapiis/internal/service"

// Handler aggregates every handler.
type Handler struct {
	Auth            *AuthHandler
	User            *UserHandler
	Dashboard       *DashboardHandler
	TeacherCategory *TeacherCategoryHandler
	Teacher         *TeacherHandler
	News            *NewsHandler
	Gallery         *GalleryHandler
	Semester        *SemesterHandler
	SiteSetting     *SiteSettingHandler
	Export          *ExportHandler
	Public          *PublicHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:            NewAuthHandler(svc.Auth),
		User:            NewUserHandler(svc.User),
		Dashboard:       NewDashboardHandler(svc.Dashboard),
		TeacherCategory: NewTeacherCategoryHandler(svc.TeacherCategory),
		Teacher:         NewTeacherHandler(svc.Teacher),
		News:            NewNewsHandler(svc.News),
		Gallery:         NewGalleryHandler(svc.Gallery),
		Semester:        NewSemesterHandler(svc.Semester),
		SiteSetting:     NewSiteSettingHandler(svc.SiteSetting),
		Export:          NewExportHandler(svc.Export),
		Public:          NewPublicHandler(svc.Public),
	}
}
