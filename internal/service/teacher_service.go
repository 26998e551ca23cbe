package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/internal/repository"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

const (
	msgTeacherNotFound   = "Docente no encontrado."
	msgTeacherSaveFailed = "Error al guardar el docente. Por favor, intenta nuevamente."
	msgTeacherEditFailed = "Error al actualizar el docente. Por favor, intenta nuevamente."
	msgTeacherDropFailed = "Error al eliminar el docente. Por favor, intenta nuevamente."
)

var teacherEmailUnique = &uniqueField{field: "email", message: validation.Taken("correo electrónico")}

// TeacherService teacher directory use cases.
type TeacherService interface {
	Index(ctx context.Context, q *dto.ListQuery) (*dto.TeacherIndexResponse, error)
	Create(ctx context.Context, rc RequestContext, form *dto.TeacherForm, files Attachments) (*dto.TeacherResponse, error)
	Update(ctx context.Context, rc RequestContext, id string, form *dto.TeacherForm, files Attachments) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, rc RequestContext, id string) error
}

type teacherService struct {
	repo       *repository.Repository
	pipeline   *pipeline
	validator  *validation.Validator
	pageSize   int
	imageMaxKB int64
	logger     *zap.Logger
}

// NewTeacherService creates a TeacherService.
func NewTeacherService(cfg *config.Config, repo *repository.Repository, store media.Store, v *validation.Validator, logger *zap.Logger) TeacherService {
	return &teacherService{
		repo:       repo,
		pipeline:   newPipeline(store, logger),
		validator:  v,
		pageSize:   pageSize(cfg.Pagination.Teachers),
		imageMaxKB: cfg.Media.ImageMaxKB,
		logger:     logger,
	}
}

// ────────────────────── Index ──────────────────────

func (s *teacherService) Index(ctx context.Context, q *dto.ListQuery) (*dto.TeacherIndexResponse, error) {
	page := q.GetPage()
	teachers, total, err := s.repo.Teacher.List(ctx, repository.ListFilter{
		Search:     q.Search,
		CategoryID: q.CategoryID,
		Page:       page,
		PageSize:   s.pageSize,
	})
	if err != nil {
		s.logger.Error("list teachers failed", zap.Error(err))
		return nil, err
	}

	categories, err := s.repo.TeacherCategory.ListAll(ctx)
	if err != nil {
		s.logger.Error("list teacher categories failed", zap.Error(err))
		return nil, err
	}

	return &dto.TeacherIndexResponse{
		Teachers:     dto.NewPageResult(toTeacherResponses(teachers), total, page, s.pageSize),
		TeacherTypes: toCategoryResponses(categories),
		Filters:      *q,
	}, nil
}

// ────────────────────── Create ──────────────────────

func (s *teacherService) Create(ctx context.Context, rc RequestContext, form *dto.TeacherForm, files Attachments) (*dto.TeacherResponse, error) {
	normalizeTeacherForm(form)
	if err := s.validate(ctx, form, files, ""); err != nil {
		return nil, err
	}

	teacher := &model.Teacher{}
	applyTeacherForm(teacher, form)
	teacher.StampCreated(rc.ActorID)

	err := s.pipeline.write(ctx, mediaWrite{
		entity: "teacher",
		actor:  rc,
		slots:  []mediaSlot{imageSlot(folderTeachers, &teacher.Image)},
		files:  files,
		persist: func(ctx context.Context) error {
			return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
				if err := tx.Teacher.Create(ctx, teacher); err != nil {
					return err
				}
				fresh, err := tx.Teacher.GetByID(ctx, teacher.TeacherID)
				if err != nil {
					return err
				}
				teacher = fresh
				return nil
			})
		},
		persistFailed: msgTeacherSaveFailed,
		unique:        teacherEmailUnique,
		payload:       teacherPayload(form),
	})
	if err != nil {
		return nil, err
	}

	resp := toTeacherResponse(teacher)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *teacherService) Update(ctx context.Context, rc RequestContext, id string, form *dto.TeacherForm, files Attachments) (*dto.TeacherResponse, error) {
	normalizeTeacherForm(form)
	if err := s.validate(ctx, form, files, id); err != nil {
		return nil, err
	}

	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		return nil, resolve(err, msgTeacherNotFound, s.logger, "teacher", id)
	}

	applyTeacherForm(teacher, form)
	teacher.StampUpdated(rc.ActorID)

	err = s.pipeline.write(ctx, mediaWrite{
		entity: "teacher",
		id:     id,
		actor:  rc,
		slots:  []mediaSlot{imageSlot(folderTeachers, &teacher.Image)},
		files:  files,
		persist: func(ctx context.Context) error {
			return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
				if err := tx.Teacher.Update(ctx, teacher); err != nil {
					return err
				}
				fresh, err := tx.Teacher.GetByID(ctx, id)
				if err != nil {
					return err
				}
				teacher = fresh
				return nil
			})
		},
		persistFailed: msgTeacherEditFailed,
		unique:        teacherEmailUnique,
		payload:       teacherPayload(form),
	})
	if err != nil {
		return nil, err
	}

	resp := toTeacherResponse(teacher)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *teacherService) Delete(ctx context.Context, rc RequestContext, id string) error {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		return resolve(err, msgTeacherNotFound, s.logger, "teacher", id)
	}

	return s.pipeline.remove(ctx, "teacher", id, rc, imageOf(teacher.Image),
		func(ctx context.Context) error {
			return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
				return tx.Teacher.Delete(ctx, id, rc.ActorID)
			})
		},
		msgTeacherDropFailed,
	)
}

// ── helpers ──

func (s *teacherService) validate(ctx context.Context, form *dto.TeacherForm, files Attachments, excludeID string) error {
	errs := s.validator.Struct(form)
	validation.File(errs, FieldImage, files.Get(FieldImage), validation.ImageRule("imagen", false, s.imageMaxKB))

	if !errs.Has("email") {
		taken, err := s.repo.Teacher.EmailTaken(ctx, form.Email, excludeID)
		if err != nil {
			s.logger.Error("check teacher email failed", zap.Error(err))
			return err
		}
		if taken {
			errs.Add(teacherEmailUnique.field, teacherEmailUnique.message)
		}
	}

	if !errs.Has("teacher_type_id") {
		if _, err := s.repo.TeacherCategory.GetByID(ctx, form.CategoryID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("check teacher category failed", zap.Error(err))
				return err
			}
			errs.Add("teacher_type_id", validation.Invalid("tipo de docente"))
		}
	}

	return errs.Err()
}

func normalizeTeacherForm(form *dto.TeacherForm) {
	form.Name = strings.TrimSpace(form.Name)
	form.AcademicDegree = strings.TrimSpace(form.AcademicDegree)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	form.Phone = strings.TrimSpace(form.Phone)
}

func applyTeacherForm(t *model.Teacher, form *dto.TeacherForm) {
	categoryID := form.CategoryID
	t.Name = form.Name
	t.AcademicDegree = form.AcademicDegree
	t.Email = form.Email
	t.Phone = form.Phone
	t.CategoryID = &categoryID
	t.Category = nil
}

func teacherPayload(form *dto.TeacherForm) []zap.Field {
	return []zap.Field{
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.String("teacher_type_id", form.CategoryID),
	}
}
