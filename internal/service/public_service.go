package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/repository"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

// PublicService read-only projections for the public website.
type PublicService interface {
	News(ctx context.Context, q *dto.PublicQuery) (*dto.PageResult[dto.PublicNews], error)
	Galleries(ctx context.Context, q *dto.PublicQuery) (*dto.PageResult[dto.PublicGallery], error)
	Semesters(ctx context.Context, q *dto.PublicQuery) (*dto.PageResult[dto.PublicSemester], error)
	Teachers(ctx context.Context, q *dto.PublicQuery) (*dto.PageResult[dto.PublicTeacher], error)
	Settings(ctx context.Context) ([]dto.PublicSetting, error)
}

type publicService struct {
	repo                *repository.Repository
	store               media.Store
	pageSize            int
	semestersActiveOnly bool
	logger              *zap.Logger
}

// NewPublicService creates a PublicService.
func NewPublicService(cfg *config.Config, repo *repository.Repository, store media.Store, logger *zap.Logger) PublicService {
	return &publicService{
		repo:                repo,
		store:               store,
		pageSize:            pageSize(cfg.Pagination.Public),
		semestersActiveOnly: cfg.Public.SemestersActiveOnly,
		logger:              logger,
	}
}

// News lists published articles only.
func (s *publicService) News(ctx context.Context, q *dto.PublicQuery) (*dto.PageResult[dto.PublicNews], error) {
	published := true
	page := q.GetPage()
	articles, total, err := s.repo.News.List(ctx, repository.ListFilter{
		Search:    q.Search,
		Published: &published,
		Page:      page,
		PageSize:  s.pageSize,
	})
	if err != nil {
		s.logger.Error("public news failed", zap.Error(err))
		return nil, err
	}

	items := make([]dto.PublicNews, 0, len(articles))
	for _, n := range articles {
		items = append(items, dto.PublicNews{
			ID:       n.NewsID,
			Title:    n.Title,
			Date:     n.ScheduledDate.Format(dateLayout),
			Location: n.Location,
			Content:  n.Content,
			Image:    optionalString(n.Image.URL),
		})
	}
	return dto.NewPageResult(items, total, page, s.pageSize), nil
}

func (s *publicService) Galleries(ctx context.Context, q *dto.PublicQuery) (*dto.PageResult[dto.PublicGallery], error) {
	page := q.GetPage()
	galleries, total, err := s.repo.Gallery.List(ctx, repository.ListFilter{
		Category: q.Category,
		Page:     page,
		PageSize: s.pageSize,
	})
	if err != nil {
		s.logger.Error("public galleries failed", zap.Error(err))
		return nil, err
	}

	items := make([]dto.PublicGallery, 0, len(galleries))
	for _, g := range galleries {
		items = append(items, dto.PublicGallery{
			ID:           g.GalleryItemID,
			Type:         g.Category,
			Image:        g.Image.URL,
			ThumbnailURL: s.store.DerivedURL(g.Image.StorageID, thumbnailParams...),
		})
	}
	return dto.NewPageResult(items, total, page, s.pageSize), nil
}

func (s *publicService) Semesters(ctx context.Context, q *dto.PublicQuery) (*dto.PageResult[dto.PublicSemester], error) {
	page := q.GetPage()
	semesters, total, err := s.repo.Semester.List(ctx, repository.ListFilter{
		ActiveOnly: s.semestersActiveOnly,
		Page:       page,
		PageSize:   s.pageSize,
	})
	if err != nil {
		s.logger.Error("public semesters failed", zap.Error(err))
		return nil, err
	}

	items := make([]dto.PublicSemester, 0, len(semesters))
	for _, sem := range semesters {
		items = append(items, dto.PublicSemester{
			ID:          sem.SemesterID,
			Number:      sem.Number,
			Name:        sem.Name,
			Description: sem.Description,
			Image:       sem.Image.URL,
			IsActive:    sem.IsActive,
		})
	}
	return dto.NewPageResult(items, total, page, s.pageSize), nil
}

func (s *publicService) Teachers(ctx context.Context, q *dto.PublicQuery) (*dto.PageResult[dto.PublicTeacher], error) {
	page := q.GetPage()
	teachers, total, err := s.repo.Teacher.List(ctx, repository.ListFilter{
		Search:     q.Search,
		CategoryID: q.CategoryID,
		Page:       page,
		PageSize:   s.pageSize,
	})
	if err != nil {
		s.logger.Error("public teachers failed", zap.Error(err))
		return nil, err
	}

	items := make([]dto.PublicTeacher, 0, len(teachers))
	for i := range teachers {
		t := toTeacherResponse(&teachers[i])
		items = append(items, dto.PublicTeacher{
			ID:             t.ID,
			Name:           t.Name,
			AcademicDegree: t.AcademicDegree,
			Email:          t.Email,
			Phone:          t.Phone,
			Image:          t.Image,
			TeacherType:    t.TeacherType,
		})
	}
	return dto.NewPageResult(items, total, page, s.pageSize), nil
}

// Settings returns every stored setting.
func (s *publicService) Settings(ctx context.Context) ([]dto.PublicSetting, error) {
	settings, err := s.repo.SiteSetting.List(ctx)
	if err != nil {
		s.logger.Error("public settings failed", zap.Error(err))
		return nil, err
	}

	items := make([]dto.PublicSetting, 0, len(settings))
	for _, st := range settings {
		items = append(items, dto.PublicSetting{
			Name:               st.Name,
			Image:              st.Image.URL,
			DocumentURL:        st.Document.URL,
			DocumentPreviewURL: s.store.PreviewURL(st.Document.StorageID),
			DocumentPages:      st.Document.PageCount,
		})
	}
	return items, nil
}
