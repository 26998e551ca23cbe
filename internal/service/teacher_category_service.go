package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/internal/repository"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	pkgerrors "github.com/w4d32001/admin-eapiis/pkg/errors"
)

const (
	msgCategoryNotFound   = "Tipo de docente no encontrado."
	msgCategorySaveFailed = "Error al guardar el tipo de docente. Por favor, intenta nuevamente."
	msgCategoryEditFailed = "Error al actualizar el tipo de docente. Por favor, intenta nuevamente."
	msgCategoryDropFailed = "Error al eliminar el tipo de docente. Por favor, intenta nuevamente."
)

var categoryNameUnique = &uniqueField{field: "name", message: validation.Taken("nombre")}

// TeacherCategoryService teacher category use cases.
type TeacherCategoryService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.TeacherCategoryResponse], error)
	Create(ctx context.Context, rc RequestContext, form *dto.TeacherCategoryForm) (*dto.TeacherCategoryResponse, error)
	Update(ctx context.Context, rc RequestContext, id string, form *dto.TeacherCategoryForm) (*dto.TeacherCategoryResponse, error)
	Delete(ctx context.Context, rc RequestContext, id string) error
}

type teacherCategoryService struct {
	repo         *repository.Repository
	validator    *validation.Validator
	pageSize     int
	deletePolicy string
	logger       *zap.Logger
}

// NewTeacherCategoryService creates a TeacherCategoryService.
func NewTeacherCategoryService(cfg *config.Config, repo *repository.Repository, v *validation.Validator, logger *zap.Logger) TeacherCategoryService {
	return &teacherCategoryService{
		repo:         repo,
		validator:    v,
		pageSize:     pageSize(cfg.Pagination.TeacherTypes),
		deletePolicy: cfg.TeacherCategory.DeletePolicy,
		logger:       logger,
	}
}

// ────────────────────── List ──────────────────────

func (s *teacherCategoryService) List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.TeacherCategoryResponse], error) {
	page := q.GetPage()
	categories, total, err := s.repo.TeacherCategory.List(ctx, repository.ListFilter{
		Search:   q.Search,
		Page:     page,
		PageSize: s.pageSize,
	})
	if err != nil {
		s.logger.Error("list teacher categories failed", zap.Error(err))
		return nil, err
	}
	return dto.NewPageResult(toCategoryResponses(categories), total, page, s.pageSize), nil
}

// ────────────────────── Create ──────────────────────

func (s *teacherCategoryService) Create(ctx context.Context, rc RequestContext, form *dto.TeacherCategoryForm) (*dto.TeacherCategoryResponse, error) {
	form.Name = strings.TrimSpace(form.Name)
	if err := s.validate(ctx, form, ""); err != nil {
		return nil, err
	}

	category := &model.TeacherCategory{Name: form.Name}
	category.StampCreated(rc.ActorID)

	if err := s.repo.TeacherCategory.Create(ctx, category); err != nil {
		if verr := categoryNameUnique.conflict(err); verr != nil {
			return nil, verr
		}
		s.logger.Error("create teacher category failed",
			zap.String("actor_id", rc.ActorID), zap.String("name", form.Name), zap.Error(err))
		return nil, pkgerrors.Persist(msgCategorySaveFailed, err)
	}
	if fresh, err := s.repo.TeacherCategory.GetByID(ctx, category.CategoryID); err == nil {
		category = fresh
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *teacherCategoryService) Update(ctx context.Context, rc RequestContext, id string, form *dto.TeacherCategoryForm) (*dto.TeacherCategoryResponse, error) {
	form.Name = strings.TrimSpace(form.Name)
	if err := s.validate(ctx, form, id); err != nil {
		return nil, err
	}

	category, err := s.repo.TeacherCategory.GetByID(ctx, id)
	if err != nil {
		return nil, resolve(err, msgCategoryNotFound, s.logger, "teacher_category", id)
	}

	category.Name = form.Name
	category.StampUpdated(rc.ActorID)

	if err := s.repo.TeacherCategory.Update(ctx, category); err != nil {
		if verr := categoryNameUnique.conflict(err); verr != nil {
			return nil, verr
		}
		s.logger.Error("update teacher category failed",
			zap.String("id", id), zap.String("actor_id", rc.ActorID), zap.String("name", form.Name), zap.Error(err))
		return nil, pkgerrors.Persist(msgCategoryEditFailed, err)
	}
	if fresh, err := s.repo.TeacherCategory.GetByID(ctx, id); err == nil {
		category = fresh
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *teacherCategoryService) Delete(ctx context.Context, rc RequestContext, id string) error {
	if _, err := s.repo.TeacherCategory.GetByID(ctx, id); err != nil {
		return resolve(err, msgCategoryNotFound, s.logger, "teacher_category", id)
	}

	var err error
	switch s.deletePolicy {
	case config.DeletePolicyRestrict:
		count, cerr := s.repo.Teacher.CountByCategory(ctx, id)
		if cerr != nil {
			s.logger.Error("count teachers by category failed", zap.String("id", id), zap.Error(cerr))
			return pkgerrors.Persist(msgCategoryDropFailed, cerr)
		}
		if count > 0 {
			return &pkgerrors.RelationsError{
				Message: "No se puede eliminar el tipo de docente porque tiene docentes asociados.",
				Relations: map[string]pkgerrors.Relation{
					"teachers": {Count: count, Message: fmt.Sprintf("Tiene %d docente(s) asociado(s)", count)},
				},
			}
		}
		err = s.repo.TeacherCategory.Delete(ctx, id, rc.ActorID)
	case config.DeletePolicyNullify:
		err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
			if err := tx.Teacher.ClearCategory(ctx, id, rc.ActorID); err != nil {
				return err
			}
			return tx.TeacherCategory.Delete(ctx, id, rc.ActorID)
		})
	default:
		err = s.repo.TeacherCategory.Delete(ctx, id, rc.ActorID)
	}

	if err != nil {
		s.logger.Error("delete teacher category failed",
			zap.String("id", id), zap.String("actor_id", rc.ActorID), zap.Error(err))
		return pkgerrors.Persist(msgCategoryDropFailed, err)
	}
	return nil
}

func (s *teacherCategoryService) validate(ctx context.Context, form *dto.TeacherCategoryForm, excludeID string) error {
	errs := s.validator.Struct(form)
	if !errs.Has("name") {
		taken, err := s.repo.TeacherCategory.NameTaken(ctx, form.Name, excludeID)
		if err != nil {
			s.logger.Error("check category name failed", zap.Error(err))
			return err
		}
		if taken {
			errs.Add(categoryNameUnique.field, categoryNameUnique.message)
		}
	}
	return errs.Err()
}
