package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/internal/repository"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	pkgerrors "github.com/w4d32001/admin-eapiis/pkg/errors"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

const (
	msgNewsNotFound     = "Noticia no encontrada."
	msgNewsSaveFailed   = "Error al guardar la noticia. Por favor, intenta nuevamente."
	msgNewsEditFailed   = "Error al actualizar la noticia. Por favor, intenta nuevamente."
	msgNewsDropFailed   = "Error al eliminar la noticia. Por favor, intenta nuevamente."
	msgNewsToggleFailed = "Error al actualizar el estado de la noticia. Por favor, intenta nuevamente."
)

// NewsService news use cases.
type NewsService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.NewsResponse], error)
	Create(ctx context.Context, rc RequestContext, form *dto.NewsForm, files Attachments) (*dto.NewsResponse, error)
	Update(ctx context.Context, rc RequestContext, id string, form *dto.NewsForm, files Attachments) (*dto.NewsResponse, error)
	TogglePublished(ctx context.Context, rc RequestContext, id string) (*dto.NewsResponse, error)
	Delete(ctx context.Context, rc RequestContext, id string) error
}

type newsService struct {
	repo       *repository.Repository
	pipeline   *pipeline
	validator  *validation.Validator
	pageSize   int
	imageMaxKB int64
	logger     *zap.Logger
}

// NewNewsService creates a NewsService.
func NewNewsService(cfg *config.Config, repo *repository.Repository, store media.Store, v *validation.Validator, logger *zap.Logger) NewsService {
	return &newsService{
		repo:       repo,
		pipeline:   newPipeline(store, logger),
		validator:  v,
		pageSize:   pageSize(cfg.Pagination.News),
		imageMaxKB: cfg.Media.ImageMaxKB,
		logger:     logger,
	}
}

// ────────────────────── List ──────────────────────

func (s *newsService) List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.NewsResponse], error) {
	page := q.GetPage()
	articles, total, err := s.repo.News.List(ctx, repository.ListFilter{
		Search:   q.Search,
		Page:     page,
		PageSize: s.pageSize,
	})
	if err != nil {
		s.logger.Error("list news failed", zap.Error(err))
		return nil, err
	}
	return dto.NewPageResult(toNewsResponses(articles), total, page, s.pageSize), nil
}

// ────────────────────── Create ──────────────────────

func (s *newsService) Create(ctx context.Context, rc RequestContext, form *dto.NewsForm, files Attachments) (*dto.NewsResponse, error) {
	normalizeNewsForm(form)

	errs := s.validator.Struct(form)
	if !errs.Has("date") {
		s.validator.Field(errs, "date", "fecha", form.Date, "notpast")
	}
	validation.File(errs, FieldImage, files.Get(FieldImage), validation.ImageRule("imagen", false, s.imageMaxKB))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	article := &model.NewsArticle{Published: true}
	applyNewsForm(article, form)
	article.StampCreated(rc.ActorID)

	err := s.pipeline.write(ctx, mediaWrite{
		entity: "news",
		actor:  rc,
		slots:  []mediaSlot{imageSlot(folderNews, &article.Image)},
		files:  files,
		persist: func(ctx context.Context) error {
			return s.repo.News.Create(ctx, article)
		},
		persistFailed: msgNewsSaveFailed,
		payload:       newsPayload(form),
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, article), nil
}

// ────────────────────── Update ──────────────────────

func (s *newsService) Update(ctx context.Context, rc RequestContext, id string, form *dto.NewsForm, files Attachments) (*dto.NewsResponse, error) {
	normalizeNewsForm(form)

	errs := s.validator.Struct(form)
	validation.File(errs, FieldImage, files.Get(FieldImage), validation.ImageRule("imagen", false, s.imageMaxKB))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	article, err := s.repo.News.GetByID(ctx, id)
	if err != nil {
		return nil, resolve(err, msgNewsNotFound, s.logger, "news", id)
	}

	applyNewsForm(article, form)
	article.StampUpdated(rc.ActorID)

	err = s.pipeline.write(ctx, mediaWrite{
		entity: "news",
		id:     id,
		actor:  rc,
		slots:  []mediaSlot{imageSlot(folderNews, &article.Image)},
		files:  files,
		persist: func(ctx context.Context) error {
			return s.repo.News.Update(ctx, article)
		},
		persistFailed: msgNewsEditFailed,
		payload:       newsPayload(form),
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, article), nil
}

// ────────────────────── TogglePublished ──────────────────────

func (s *newsService) TogglePublished(ctx context.Context, rc RequestContext, id string) (*dto.NewsResponse, error) {
	article, err := s.repo.News.GetByID(ctx, id)
	if err != nil {
		return nil, resolve(err, msgNewsNotFound, s.logger, "news", id)
	}

	published := !article.Published
	if err := s.repo.News.SetPublished(ctx, id, published, rc.ActorID); err != nil {
		s.logger.Error("toggle news failed",
			zap.String("id", id), zap.String("actor_id", rc.ActorID), zap.Error(err))
		return nil, pkgerrors.Persist(msgNewsToggleFailed, err)
	}

	article.Published = published
	article.StampUpdated(rc.ActorID)
	return s.reload(ctx, article), nil
}

// ────────────────────── Delete ──────────────────────

func (s *newsService) Delete(ctx context.Context, rc RequestContext, id string) error {
	article, err := s.repo.News.GetByID(ctx, id)
	if err != nil {
		return resolve(err, msgNewsNotFound, s.logger, "news", id)
	}

	return s.pipeline.remove(ctx, "news", id, rc, imageOf(article.Image),
		func(ctx context.Context) error { return s.repo.News.Delete(ctx, id, rc.ActorID) },
		msgNewsDropFailed,
	)
}

// ── helpers ──

// reload re-reads the article so the response names its last editor.
func (s *newsService) reload(ctx context.Context, article *model.NewsArticle) *dto.NewsResponse {
	if fresh, err := s.repo.News.GetByID(ctx, article.NewsID); err == nil {
		article = fresh
	}
	resp := toNewsResponse(article)
	return &resp
}

func normalizeNewsForm(form *dto.NewsForm) {
	form.Title = strings.TrimSpace(form.Title)
	form.Content = strings.TrimSpace(form.Content)
	form.Location = strings.TrimSpace(form.Location)
	form.Date = strings.TrimSpace(form.Date)
}

// applyNewsForm copies a validated form. The date has already been parsed once.
func applyNewsForm(n *model.NewsArticle, form *dto.NewsForm) {
	date, _ := time.Parse(dateLayout, form.Date)
	n.Title = form.Title
	n.Content = form.Content
	n.Location = form.Location
	n.ScheduledDate = date
	if form.Published != nil {
		n.Published = *form.Published
	}
}

func newsPayload(form *dto.NewsForm) []zap.Field {
	return []zap.Field{
		zap.String("title", form.Title),
		zap.String("location", form.Location),
		zap.String("date", form.Date),
	}
}
