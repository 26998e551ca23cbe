package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
	pkgerrors "github.com/w4d32001/admin-eapiis/pkg/errors"
)

func setupCategoryService(policy string) (TeacherCategoryService, *mockRepos) {
	repo, mocks := newMockRepository()
	cfg := testConfig()
	cfg.TeacherCategory.DeletePolicy = policy
	return NewTeacherCategoryService(cfg, repo, fixedValidator(), nopLogger), mocks
}

func TestTeacherCategoryService_CreateUnique(t *testing.T) {
	svc, _ := setupCategoryService(config.DeletePolicyIgnore)

	first, err := svc.Create(context.Background(), admin("u-1"), &dto.TeacherCategoryForm{Name: "Nombrado"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.Create(context.Background(), admin("u-1"), &dto.TeacherCategoryForm{Name: " Nombrado "})
	assertFieldError(t, err, "name")

	if _, err := svc.Update(context.Background(), admin("u-1"), first.ID, &dto.TeacherCategoryForm{Name: "Nombrado"}); err != nil {
		t.Errorf("renaming to its own name: %v", err)
	}
}

func TestTeacherCategoryService_ConcurrentDuplicateName(t *testing.T) {
	svc, mocks := setupCategoryService(config.DeletePolicyIgnore)

	mocks.category.createErr = gorm.ErrDuplicatedKey
	_, err := svc.Create(context.Background(), admin("u-1"), &dto.TeacherCategoryForm{Name: "Contratado"})
	assertFieldError(t, err, "name")
	if errors.Is(err, pkgerrors.ErrPersist) {
		t.Errorf("duplicate must not be reported as a failed write: %v", err)
	}
}

func seedTeacherIn(m *mockRepos, categoryID string) string {
	teacher := &model.Teacher{Name: "Docente", Email: "d@unamba.edu.pe", Phone: "999999999", CategoryID: &categoryID}
	_ = m.teacher.Create(context.Background(), teacher)
	return teacher.TeacherID
}

func TestTeacherCategoryService_DeletePolicies(t *testing.T) {
	t.Run("ignore leaves teachers untouched", func(t *testing.T) {
		svc, mocks := setupCategoryService(config.DeletePolicyIgnore)
		cat := mocks.seedCategory("Contratado")
		teacherID := seedTeacherIn(mocks, cat)

		if err := svc.Delete(context.Background(), admin("u-1"), cat); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if got := mocks.teacher.teachers[teacherID].CategoryID; got == nil || *got != cat {
			t.Error("teacher keeps its category id")
		}
	})

	t.Run("restrict refuses while teachers remain", func(t *testing.T) {
		svc, mocks := setupCategoryService(config.DeletePolicyRestrict)
		cat := mocks.seedCategory("Contratado")
		seedTeacherIn(mocks, cat)

		err := svc.Delete(context.Background(), admin("u-1"), cat)
		if !errors.Is(err, pkgerrors.ErrHasRelations) {
			t.Fatalf("expected ErrHasRelations, got %v", err)
		}
		if _, ok := mocks.category.categories[cat]; !ok {
			t.Error("category must survive")
		}
	})

	t.Run("nullify detaches teachers", func(t *testing.T) {
		svc, mocks := setupCategoryService(config.DeletePolicyNullify)
		cat := mocks.seedCategory("Contratado")
		teacherID := seedTeacherIn(mocks, cat)

		if err := svc.Delete(context.Background(), admin("u-1"), cat); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if mocks.teacher.teachers[teacherID].CategoryID != nil {
			t.Error("teacher category must be cleared")
		}
		if _, ok := mocks.category.categories[cat]; ok {
			t.Error("category must be gone")
		}
	})
}
