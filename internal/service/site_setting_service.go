package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/internal/repository"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

const msgSettingSaveFailed = "Error al guardar la portada. Por favor, intenta nuevamente."

// SiteSettingService static assets of the public site.
type SiteSettingService interface {
	List(ctx context.Context) ([]dto.SettingResponse, error)
	Save(ctx context.Context, rc RequestContext, form *dto.SettingForm, files Attachments) (*dto.SettingResponse, error)
}

type siteSettingService struct {
	repo          *repository.Repository
	store         media.Store
	pipeline      *pipeline
	validator     *validation.Validator
	imageMaxKB    int64
	documentMaxKB int64
	logger        *zap.Logger
}

// NewSiteSettingService creates a SiteSettingService.
func NewSiteSettingService(cfg *config.Config, repo *repository.Repository, store media.Store, v *validation.Validator, logger *zap.Logger) SiteSettingService {
	return &siteSettingService{
		repo:          repo,
		store:         store,
		pipeline:      newPipeline(store, logger),
		validator:     v,
		imageMaxKB:    cfg.Media.ImageMaxKB,
		documentMaxKB: cfg.Media.DocumentMaxKB,
		logger:        logger,
	}
}

// ────────────────────── List ──────────────────────

func (s *siteSettingService) List(ctx context.Context) ([]dto.SettingResponse, error) {
	settings, err := s.repo.SiteSetting.List(ctx)
	if err != nil {
		s.logger.Error("list site settings failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.SettingResponse, 0, len(settings))
	for i := range settings {
		result = append(result, toSettingResponse(&settings[i], s.store))
	}
	return result, nil
}

// ────────────────────── Save ──────────────────────

// Save stores the file of one setting, creating the row on first use.
// resolution-document takes a PDF, every other name an image.
func (s *siteSettingService) Save(ctx context.Context, rc RequestContext, form *dto.SettingForm, files Attachments) (*dto.SettingResponse, error) {
	errs := s.validator.Struct(form)
	if errs.Has("name") {
		return nil, errs.Err()
	}

	image, pdf := files.Get(FieldImage), files.Get(FieldPDF)
	if model.IsDocumentSetting(form.Name) {
		validation.File(errs, FieldPDF, pdf, validation.PDFRule("pdf", true, s.documentMaxKB))
		if image != nil {
			errs.Add(FieldImage, validation.NotAllowed("imagen"))
		}
	} else {
		validation.File(errs, FieldImage, image, validation.ImageRule("imagen", true, s.imageMaxKB))
		if pdf != nil {
			errs.Add(FieldPDF, validation.NotAllowed("pdf"))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	setting, err := s.repo.SiteSetting.GetByName(ctx, form.Name)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = &model.SiteSetting{Name: form.Name}
		setting.StampCreated(rc.ActorID)
	case err != nil:
		s.logger.Error("get site setting failed", zap.String("name", form.Name), zap.Error(err))
		return nil, err
	default:
		setting.StampUpdated(rc.ActorID)
	}

	slot := imageSlot(folderSettings, &setting.Image)
	if model.IsDocumentSetting(form.Name) {
		slot = documentSlot(folderDocuments, &setting.Document)
	}

	err = s.pipeline.write(ctx, mediaWrite{
		entity:        "site_setting",
		id:            setting.SettingID,
		actor:         rc,
		slots:         []mediaSlot{slot},
		files:         files,
		persist:       func(ctx context.Context) error { return s.repo.SiteSetting.Upsert(ctx, setting) },
		persistFailed: msgSettingSaveFailed,
		payload:       []zap.Field{zap.String("name", form.Name)},
	})
	if err != nil {
		return nil, err
	}

	if fresh, err := s.repo.SiteSetting.GetByName(ctx, form.Name); err == nil {
		setting = fresh
	}
	resp := toSettingResponse(setting, s.store)
	return &resp, nil
}
