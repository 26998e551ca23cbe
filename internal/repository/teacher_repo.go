package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/w4d32001/admin-eapiis/internal/model"
)

// TeacherRepository teacher data access.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	List(ctx context.Context, f ListFilter) ([]model.Teacher, int64, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id string, deletedBy string) error
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	ClearCategory(ctx context.Context, categoryID, updatedBy string) error
	Count(ctx context.Context) (int64, error)
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo creates a TeacherRepository.
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(teacher).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Updater").
		Where("teacher_id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) List(ctx context.Context, f ListFilter) ([]model.Teacher, int64, error) {
	var teachers []model.Teacher
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Teacher{}).
		Scopes(search(f.Search, "name", "email", "phone"))
	if f.CategoryID != "" {
		db = db.Where("category_id = ?", f.CategoryID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Category").
		Preload("Updater").
		Scopes(newestFirst("teacher_id"), paginate(f)).
		Find(&teachers).Error
	if err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

func (r *teacherRepo) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(teacher).Error
}

func (r *teacherRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return softDelete(r.db.WithContext(ctx), &model.Teacher{}, "teacher_id", id, deletedBy)
}

func (r *teacherRepo) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).Model(&model.Teacher{}).Where("LOWER(email) = LOWER(?)", email)
	if excludeID != "" {
		db = db.Where("teacher_id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *teacherRepo) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Teacher{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

// ClearCategory detaches every teacher from a category.
func (r *teacherRepo) ClearCategory(ctx context.Context, categoryID, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Teacher{}).
		Where("category_id = ?", categoryID).
		Updates(map[string]interface{}{
			"category_id": nil,
			"updated_by":  updatedBy,
			"updated_at":  gorm.Expr("NOW()"),
		}).Error
}

func (r *teacherRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Teacher{}).Count(&count).Error
	return count, err
}
