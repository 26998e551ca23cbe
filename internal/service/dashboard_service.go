package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/repository"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

const (
	dashboardGalleries = 5
	dashboardNews      = 5
	dashboardSemesters = 3
)

// DashboardService back-office landing summary.
type DashboardService interface {
	Summary(ctx context.Context, q *dto.DashboardQuery) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo         *repository.Repository
	store        media.Store
	teachersPage int
	logger       *zap.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(cfg *config.Config, repo *repository.Repository, store media.Store, logger *zap.Logger) DashboardService {
	return &dashboardService{
		repo:         repo,
		store:        store,
		teachersPage: pageSize(cfg.Pagination.DashboardTeachers),
		logger:       logger,
	}
}

// Summary latest galleries, news and semesters, one page of teachers, every
// category and the totals per entity.
func (s *dashboardService) Summary(ctx context.Context, q *dto.DashboardQuery) (*dto.DashboardResponse, error) {
	galleries, galleryTotal, err := s.repo.Gallery.List(ctx, repository.ListFilter{Page: 1, PageSize: dashboardGalleries})
	if err != nil {
		return nil, s.fail("galleries", err)
	}

	news, _, err := s.repo.News.List(ctx, repository.ListFilter{Search: q.Search, Page: 1, PageSize: dashboardNews})
	if err != nil {
		return nil, s.fail("news", err)
	}

	semesters, semesterTotal, err := s.repo.Semester.List(ctx, repository.ListFilter{Page: 1, PageSize: dashboardSemesters})
	if err != nil {
		return nil, s.fail("semesters", err)
	}

	page := q.Page
	if page <= 0 {
		page = 1
	}
	teachers, teacherFiltered, err := s.repo.Teacher.List(ctx, repository.ListFilter{
		Search:     q.TeacherSearch,
		CategoryID: q.CategoryID,
		Page:       page,
		PageSize:   s.teachersPage,
	})
	if err != nil {
		return nil, s.fail("teachers", err)
	}

	categories, err := s.repo.TeacherCategory.ListAll(ctx)
	if err != nil {
		return nil, s.fail("teacher_categories", err)
	}

	newsTotal, err := s.repo.News.Count(ctx)
	if err != nil {
		return nil, s.fail("news count", err)
	}
	teacherTotal, err := s.repo.Teacher.Count(ctx)
	if err != nil {
		return nil, s.fail("teachers count", err)
	}

	return &dto.DashboardResponse{
		Galleries:    toGalleryResponses(galleries, s.store),
		News:         toNewsResponses(news),
		Semesters:    toSemesterResponses(semesters),
		Teachers:     dto.NewPageResult(toTeacherResponses(teachers), teacherFiltered, page, s.teachersPage),
		TeacherTypes: toCategoryResponses(categories),
		Counts: dto.DashboardCounts{
			Galleries: galleryTotal,
			News:      newsTotal,
			Semesters: semesterTotal,
			Teachers:  teacherTotal,
		},
	}, nil
}

func (s *dashboardService) fail(panel string, err error) error {
	s.logger.Error("dashboard query failed", zap.String("panel", panel), zap.Error(err))
	return err
}
