package service

import (
	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/repository"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	"github.com/w4d32001/admin-eapiis/pkg/jwt"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

// Service aggregates every service.
type Service struct {
	Auth            AuthService
	User            UserService
	TeacherCategory TeacherCategoryService
	Teacher         TeacherService
	News            NewsService
	Gallery         GalleryService
	Semester        SemesterService
	SiteSetting     SiteSettingService
	Dashboard       DashboardService
	Export          ExportService
	Public          PublicService
}

// NewService creates the Service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	store media.Store,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) *Service {
	v := validation.New()
	return &Service{
		Auth:            NewAuthService(cfg, repo, jwtMgr, blacklist, logger),
		User:            NewUserService(cfg, repo, v, logger),
		TeacherCategory: NewTeacherCategoryService(cfg, repo, v, logger),
		Teacher:         NewTeacherService(cfg, repo, store, v, logger),
		News:            NewNewsService(cfg, repo, store, v, logger),
		Gallery:         NewGalleryService(cfg, repo, store, v, logger),
		Semester:        NewSemesterService(cfg, repo, store, v, logger),
		SiteSetting:     NewSiteSettingService(cfg, repo, store, v, logger),
		Dashboard:       NewDashboardService(cfg, repo, store, logger),
		Export:          NewExportService(repo, logger),
		Public:          NewPublicService(cfg, repo, store, logger),
	}
}
