package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/internal/repository"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	pkgerrors "github.com/w4d32001/admin-eapiis/pkg/errors"
)

const (
	msgUserSaveFailed = "Error al registrar el usuario. Por favor, intenta nuevamente."
	msgUserDropFailed = "Error al eliminar el usuario. Por favor, intenta nuevamente."
	msgUserHasRecords = "No se puede eliminar el usuario porque tiene registros asociados"
)

// ErrSelfDelete an administrator tried to remove their own account.
var ErrSelfDelete = errors.New("cannot delete own account")

var userEmailUnique = &uniqueField{field: "email", message: validation.Taken("correo electrónico")}

// UserService administrator account use cases.
type UserService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.UserResponse], error)
	Create(ctx context.Context, rc RequestContext, form *dto.UserForm) (*dto.UserResponse, error)
	Delete(ctx context.Context, rc RequestContext, id string) error
	ForceDelete(ctx context.Context, rc RequestContext, id string) error
}

type userService struct {
	repo      *repository.Repository
	validator *validation.Validator
	pageSize  int
	logger    *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(cfg *config.Config, repo *repository.Repository, v *validation.Validator, logger *zap.Logger) UserService {
	return &userService{
		repo:      repo,
		validator: v,
		pageSize:  pageSize(cfg.Pagination.Users),
		logger:    logger,
	}
}

// ────────────────────── List ──────────────────────

func (s *userService) List(ctx context.Context, q *dto.ListQuery) (*dto.PageResult[dto.UserResponse], error) {
	page := q.GetPage()
	users, total, err := s.repo.User.List(ctx, repository.ListFilter{
		Search:   q.Search,
		Page:     page,
		PageSize: s.pageSize,
	})
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}
	return dto.NewPageResult(items, total, page, s.pageSize), nil
}

// ────────────────────── Create ──────────────────────

func (s *userService) Create(ctx context.Context, rc RequestContext, form *dto.UserForm) (*dto.UserResponse, error) {
	if !rc.IsAdmin() {
		return nil, pkgerrors.ErrForbidden
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))

	errs := s.validator.Struct(form)
	if !errs.Has("email") {
		taken, err := s.repo.User.EmailTaken(ctx, form.Email, "")
		if err != nil {
			s.logger.Error("check user email failed", zap.Error(err))
			return nil, err
		}
		if taken {
			errs.Add(userEmailUnique.field, userEmailUnique.message)
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: string(hash),
		Role:         form.Role,
	}
	user.StampCreated(rc.ActorID)

	if err := s.repo.User.Create(ctx, user); err != nil {
		if verr := userEmailUnique.conflict(err); verr != nil {
			return nil, verr
		}
		s.logger.Error("create user failed",
			zap.String("actor_id", rc.ActorID), zap.String("email", form.Email), zap.Error(err))
		return nil, pkgerrors.Persist(msgUserSaveFailed, err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

// Delete refuses while any record still names the user as author or editor.
func (s *userService) Delete(ctx context.Context, rc RequestContext, id string) error {
	if err := s.checkDeletable(ctx, rc, id); err != nil {
		return err
	}

	refs, err := s.repo.Audit.CountReferences(ctx, id)
	if err != nil {
		s.logger.Error("count user references failed", zap.String("id", id), zap.Error(err))
		return pkgerrors.Persist(msgUserDropFailed, err)
	}
	if refs.Total() > 0 {
		return relationsOf(refs)
	}

	if err := s.repo.User.Delete(ctx, id, rc.ActorID); err != nil {
		s.logger.Error("delete user failed",
			zap.String("id", id), zap.String("actor_id", rc.ActorID), zap.Error(err))
		return pkgerrors.Persist(msgUserDropFailed, err)
	}
	return nil
}

// ────────────────────── ForceDelete ──────────────────────

// ForceDelete clears every reference to the user and removes it. Admin only.
func (s *userService) ForceDelete(ctx context.Context, rc RequestContext, id string) error {
	if !rc.IsAdmin() {
		return pkgerrors.ErrForbidden
	}
	if err := s.checkDeletable(ctx, rc, id); err != nil {
		return err
	}

	refs, err := s.repo.Audit.CountReferences(ctx, id)
	if err != nil {
		s.logger.Error("count user references failed", zap.String("id", id), zap.Error(err))
		return pkgerrors.Persist(msgUserDropFailed, err)
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Audit.ClearReferences(ctx, id); err != nil {
			return err
		}
		return tx.User.Delete(ctx, id, rc.ActorID)
	})
	if err != nil {
		s.logger.Error("force delete user failed",
			zap.String("id", id), zap.String("actor_id", rc.ActorID), zap.Error(err))
		return pkgerrors.Persist(msgUserDropFailed, err)
	}

	s.logger.Warn("user force deleted",
		zap.String("id", id),
		zap.String("actor_id", rc.ActorID),
		zap.Int64("created_records", refs.Created),
		zap.Int64("updated_records", refs.Updated),
	)
	return nil
}

func (s *userService) checkDeletable(ctx context.Context, rc RequestContext, id string) error {
	if id == rc.ActorID {
		return ErrSelfDelete
	}
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		return resolve(err, ErrUserNotFound.Message, s.logger, "user", id)
	}
	return nil
}

func relationsOf(refs repository.UserReferences) *pkgerrors.RelationsError {
	relations := make(map[string]pkgerrors.Relation)
	if refs.Created > 0 {
		relations["created_records"] = pkgerrors.Relation{
			Count:   refs.Created,
			Message: fmt.Sprintf("Ha creado %d registro(s)", refs.Created),
		}
	}
	if refs.Updated > 0 {
		relations["updated_records"] = pkgerrors.Relation{
			Count:   refs.Updated,
			Message: fmt.Sprintf("Ha actualizado %d registro(s)", refs.Updated),
		}
	}
	return &pkgerrors.RelationsError{Message: msgUserHasRecords, Relations: relations}
}
