package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/internal/repository"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

const (
	msgGalleryNotFound   = "Galería no encontrada."
	msgGallerySaveFailed = "Error al guardar la galería. Por favor, intenta nuevamente."
	msgGalleryEditFailed = "Error al actualizar la galería. Por favor, intenta nuevamente."
	msgGalleryDropFailed = "Error al eliminar la galería. Por favor, intenta nuevamente."
)

// GalleryService gallery use cases.
type GalleryService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.GalleryResponse], error)
	Create(ctx context.Context, rc RequestContext, form *dto.GalleryForm, files Attachments) (*dto.GalleryResponse, error)
	Update(ctx context.Context, rc RequestContext, id string, form *dto.GalleryForm, files Attachments) (*dto.GalleryResponse, error)
	Delete(ctx context.Context, rc RequestContext, id string) error
}

type galleryService struct {
	repo       *repository.Repository
	store      media.Store
	pipeline   *pipeline
	validator  *validation.Validator
	pageSize   int
	imageMaxKB int64
	logger     *zap.Logger
}

// NewGalleryService creates a GalleryService.
func NewGalleryService(cfg *config.Config, repo *repository.Repository, store media.Store, v *validation.Validator, logger *zap.Logger) GalleryService {
	return &galleryService{
		repo:       repo,
		store:      store,
		pipeline:   newPipeline(store, logger),
		validator:  v,
		pageSize:   pageSize(cfg.Pagination.Galleries),
		imageMaxKB: cfg.Media.ImageMaxKB,
		logger:     logger,
	}
}

// ────────────────────── List ──────────────────────

func (s *galleryService) List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.GalleryResponse], error) {
	page := q.GetPage()
	items, total, err := s.repo.Gallery.List(ctx, repository.ListFilter{
		Category: q.Category,
		Page:     page,
		PageSize: s.pageSize,
	})
	if err != nil {
		s.logger.Error("list gallery failed", zap.Error(err))
		return nil, err
	}
	return dto.NewPageResult(toGalleryResponses(items, s.store), total, page, s.pageSize), nil
}

// ────────────────────── Create ──────────────────────

func (s *galleryService) Create(ctx context.Context, rc RequestContext, form *dto.GalleryForm, files Attachments) (*dto.GalleryResponse, error) {
	errs := s.validator.Struct(form)
	validation.File(errs, FieldImage, files.Get(FieldImage), validation.ImageRule("imagen", true, s.imageMaxKB))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	item := &model.GalleryItem{Category: form.Type}
	item.StampCreated(rc.ActorID)

	err := s.pipeline.write(ctx, mediaWrite{
		entity:        "gallery",
		actor:         rc,
		slots:         []mediaSlot{imageSlot(folderGallery, &item.Image)},
		files:         files,
		persist:       func(ctx context.Context) error { return s.repo.Gallery.Create(ctx, item) },
		persistFailed: msgGallerySaveFailed,
		payload:       []zap.Field{zap.String("type", form.Type)},
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, item), nil
}

// ────────────────────── Update ──────────────────────

func (s *galleryService) Update(ctx context.Context, rc RequestContext, id string, form *dto.GalleryForm, files Attachments) (*dto.GalleryResponse, error) {
	errs := s.validator.Struct(form)
	validation.File(errs, FieldImage, files.Get(FieldImage), validation.ImageRule("imagen", false, s.imageMaxKB))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	item, err := s.repo.Gallery.GetByID(ctx, id)
	if err != nil {
		return nil, resolve(err, msgGalleryNotFound, s.logger, "gallery", id)
	}

	item.Category = form.Type
	item.StampUpdated(rc.ActorID)

	err = s.pipeline.write(ctx, mediaWrite{
		entity:        "gallery",
		id:            id,
		actor:         rc,
		slots:         []mediaSlot{imageSlot(folderGallery, &item.Image)},
		files:         files,
		persist:       func(ctx context.Context) error { return s.repo.Gallery.Update(ctx, item) },
		persistFailed: msgGalleryEditFailed,
		payload:       []zap.Field{zap.String("type", form.Type)},
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, item), nil
}

// ────────────────────── Delete ──────────────────────

func (s *galleryService) Delete(ctx context.Context, rc RequestContext, id string) error {
	item, err := s.repo.Gallery.GetByID(ctx, id)
	if err != nil {
		return resolve(err, msgGalleryNotFound, s.logger, "gallery", id)
	}

	return s.pipeline.remove(ctx, "gallery", id, rc, imageOf(item.Image),
		func(ctx context.Context) error { return s.repo.Gallery.Delete(ctx, id, rc.ActorID) },
		msgGalleryDropFailed,
	)
}

func (s *galleryService) reload(ctx context.Context, item *model.GalleryItem) *dto.GalleryResponse {
	if fresh, err := s.repo.Gallery.GetByID(ctx, item.GalleryItemID); err == nil {
		item = fresh
	}
	resp := toGalleryResponse(item, s.store)
	return &resp
}
