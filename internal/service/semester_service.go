package service

import (
	"context"
	"strconv"
	"strings"

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
	msgSemesterNotFound     = "Semestre no encontrado."
	msgSemesterSaveFailed   = "Error al guardar el semestre. Por favor, intenta nuevamente."
	msgSemesterEditFailed   = "Error al actualizar el semestre. Por favor, intenta nuevamente."
	msgSemesterDropFailed   = "Error al eliminar el semestre. Por favor, intenta nuevamente."
	msgSemesterToggleFailed = "Error al actualizar el estado del semestre. Por favor, intenta nuevamente."
)

var semesterNumberUnique = &uniqueField{field: "number", message: validation.Taken("número")}

// ── semester names ──

const (
	lastRegularSemester = 10
	electiveSemester    = 11
)

var ordinals = [...]string{
	"Primer", "Segundo", "Tercer", "Cuarto", "Quinto",
	"Sexto", "Séptimo", "Octavo", "Noveno", "Décimo",
}

// SemesterName derives the display name of a semester number. ok is false
// outside 1..10, and for 11 unless elective semesters are allowed.
func SemesterName(number int, allowElective bool) (name string, ok bool) {
	switch {
	case number >= 1 && number <= lastRegularSemester:
		return ordinals[number-1] + " Semestre", true
	case number == electiveSemester && allowElective:
		return "Electivo", true
	default:
		return "", false
	}
}

// SemesterService semester use cases.
type SemesterService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.SemesterResponse], error)
	Create(ctx context.Context, rc RequestContext, form *dto.SemesterForm, files Attachments) (*dto.SemesterResponse, error)
	Update(ctx context.Context, rc RequestContext, id string, form *dto.SemesterForm, files Attachments) (*dto.SemesterResponse, error)
	ToggleActive(ctx context.Context, rc RequestContext, id string) (*dto.SemesterResponse, error)
	Delete(ctx context.Context, rc RequestContext, id string) error
}

type semesterService struct {
	repo          *repository.Repository
	pipeline      *pipeline
	validator     *validation.Validator
	pageSize      int
	coverMaxKB    int64
	allowElective bool
	logger        *zap.Logger
}

// NewSemesterService creates a SemesterService.
func NewSemesterService(cfg *config.Config, repo *repository.Repository, store media.Store, v *validation.Validator, logger *zap.Logger) SemesterService {
	return &semesterService{
		repo:          repo,
		pipeline:      newPipeline(store, logger),
		validator:     v,
		pageSize:      pageSize(cfg.Pagination.Semesters),
		coverMaxKB:    cfg.Media.CoverMaxKB,
		allowElective: cfg.Semester.AllowElective,
		logger:        logger,
	}
}

// ────────────────────── List ──────────────────────

func (s *semesterService) List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.SemesterResponse], error) {
	page := q.GetPage()
	semesters, total, err := s.repo.Semester.List(ctx, repository.ListFilter{Page: page, PageSize: s.pageSize})
	if err != nil {
		s.logger.Error("list semesters failed", zap.Error(err))
		return nil, err
	}
	return dto.NewPageResult(toSemesterResponses(semesters), total, page, s.pageSize), nil
}

// ────────────────────── Create ──────────────────────

func (s *semesterService) Create(ctx context.Context, rc RequestContext, form *dto.SemesterForm, files Attachments) (*dto.SemesterResponse, error) {
	number, err := s.validate(ctx, form, files, "", true)
	if err != nil {
		return nil, err
	}

	name, _ := SemesterName(number, s.allowElective)
	semester := &model.Semester{
		Number:      number,
		Name:        name,
		Description: optionalString(strings.TrimSpace(form.Description)),
		IsActive:    true,
	}
	if form.IsActive != nil {
		semester.IsActive = *form.IsActive
	}
	semester.StampCreated(rc.ActorID)

	err = s.pipeline.write(ctx, mediaWrite{
		entity:        "semester",
		actor:         rc,
		slots:         []mediaSlot{imageSlot(folderSemesters, &semester.Image)},
		files:         files,
		persist:       func(ctx context.Context) error { return s.repo.Semester.Create(ctx, semester) },
		persistFailed: msgSemesterSaveFailed,
		unique:        semesterNumberUnique,
		payload:       []zap.Field{zap.Int("number", number)},
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, semester), nil
}

// ────────────────────── Update ──────────────────────

func (s *semesterService) Update(ctx context.Context, rc RequestContext, id string, form *dto.SemesterForm, files Attachments) (*dto.SemesterResponse, error) {
	number, err := s.validate(ctx, form, files, id, false)
	if err != nil {
		return nil, err
	}

	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		return nil, resolve(err, msgSemesterNotFound, s.logger, "semester", id)
	}

	if number > 0 {
		semester.Number = number
		semester.Name, _ = SemesterName(number, s.allowElective)
	}
	semester.Description = optionalString(strings.TrimSpace(form.Description))
	if form.IsActive != nil {
		semester.IsActive = *form.IsActive
	}
	semester.StampUpdated(rc.ActorID)

	err = s.pipeline.write(ctx, mediaWrite{
		entity:        "semester",
		id:            id,
		actor:         rc,
		slots:         []mediaSlot{imageSlot(folderSemesters, &semester.Image)},
		files:         files,
		persist:       func(ctx context.Context) error { return s.repo.Semester.Update(ctx, semester) },
		persistFailed: msgSemesterEditFailed,
		unique:        semesterNumberUnique,
		payload:       []zap.Field{zap.Int("number", semester.Number)},
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, semester), nil
}

// ────────────────────── ToggleActive ──────────────────────

func (s *semesterService) ToggleActive(ctx context.Context, rc RequestContext, id string) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		return nil, resolve(err, msgSemesterNotFound, s.logger, "semester", id)
	}

	active := !semester.IsActive
	if err := s.repo.Semester.SetActive(ctx, id, active, rc.ActorID); err != nil {
		s.logger.Error("toggle semester failed",
			zap.String("id", id), zap.String("actor_id", rc.ActorID), zap.Error(err))
		return nil, pkgerrors.Persist(msgSemesterToggleFailed, err)
	}

	semester.IsActive = active
	semester.StampUpdated(rc.ActorID)
	return s.reload(ctx, semester), nil
}

// ────────────────────── Delete ──────────────────────

func (s *semesterService) Delete(ctx context.Context, rc RequestContext, id string) error {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		return resolve(err, msgSemesterNotFound, s.logger, "semester", id)
	}

	return s.pipeline.remove(ctx, "semester", id, rc, imageOf(semester.Image),
		func(ctx context.Context) error { return s.repo.Semester.Delete(ctx, id, rc.ActorID) },
		msgSemesterDropFailed,
	)
}

// ── helpers ──

// validate checks the form and returns the parsed number, 0 when an update
// leaves it unchanged. Range is checked before any name is derived.
func (s *semesterService) validate(ctx context.Context, form *dto.SemesterForm, files Attachments, excludeID string, creating bool) (int, error) {
	form.Number = strings.TrimSpace(form.Number)

	errs := s.validator.Struct(form)
	validation.File(errs, FieldImage, files.Get(FieldImage), validation.ImageRule("imagen", creating, s.coverMaxKB))

	number := 0
	switch {
	case errs.Has("number"):
	case form.Number == "":
		if creating {
			errs.Add("number", validation.Required("número"))
		}
	default:
		n, err := strconv.Atoi(form.Number)
		if err != nil {
			errs.Add("number", validation.Invalid("número"))
			break
		}
		if _, ok := SemesterName(n, s.allowElective); !ok {
			upper := lastRegularSemester
			if s.allowElective {
				upper = electiveSemester
			}
			errs.Add("number", validation.Between("número", 1, upper))
			break
		}
		taken, err := s.repo.Semester.NumberTaken(ctx, n, excludeID)
		if err != nil {
			s.logger.Error("check semester number failed", zap.Error(err))
			return 0, err
		}
		if taken {
			errs.Add(semesterNumberUnique.field, semesterNumberUnique.message)
			break
		}
		number = n
	}

	return number, errs.Err()
}

func (s *semesterService) reload(ctx context.Context, semester *model.Semester) *dto.SemesterResponse {
	if fresh, err := s.repo.Semester.GetByID(ctx, semester.SemesterID); err == nil {
		semester = fresh
	}
	resp := toSemesterResponse(semester)
	return &resp
}
