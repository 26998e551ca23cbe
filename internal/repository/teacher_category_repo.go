package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/w4d32001/admin-eapiis/internal/model"
)

// TeacherCategoryRepository teacher category data access.
type TeacherCategoryRepository interface {
	Create(ctx context.Context, category *model.TeacherCategory) error
	GetByID(ctx context.Context, id string) (*model.TeacherCategory, error)
	List(ctx context.Context, f ListFilter) ([]model.TeacherCategory, int64, error)
	ListAll(ctx context.Context) ([]model.TeacherCategory, error)
	Update(ctx context.Context, category *model.TeacherCategory) error
	Delete(ctx context.Context, id string, deletedBy string) error
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
}

type teacherCategoryRepo struct {
	db *gorm.DB
}

// NewTeacherCategoryRepo creates a TeacherCategoryRepository.
func NewTeacherCategoryRepo(db *gorm.DB) TeacherCategoryRepository {
	return &teacherCategoryRepo{db: db}
}

func (r *teacherCategoryRepo) Create(ctx context.Context, category *model.TeacherCategory) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
}

func (r *teacherCategoryRepo) GetByID(ctx context.Context, id string) (*model.TeacherCategory, error) {
	var category model.TeacherCategory
	err := r.db.WithContext(ctx).
		Preload("Updater").
		Where("category_id = ?", id).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *teacherCategoryRepo) List(ctx context.Context, f ListFilter) ([]model.TeacherCategory, int64, error) {
	var categories []model.TeacherCategory
	var total int64

	db := r.db.WithContext(ctx).Model(&model.TeacherCategory{}).Scopes(search(f.Search, "name"))
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Updater").
		Scopes(newestFirst("category_id"), paginate(f)).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *teacherCategoryRepo) ListAll(ctx context.Context) ([]model.TeacherCategory, error) {
	var categories []model.TeacherCategory
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *teacherCategoryRepo) Update(ctx context.Context, category *model.TeacherCategory) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error
}

func (r *teacherCategoryRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return softDelete(r.db.WithContext(ctx), &model.TeacherCategory{}, "category_id", id, deletedBy)
}

func (r *teacherCategoryRepo) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).Model(&model.TeacherCategory{}).Where("name = ?", name)
	if excludeID != "" {
		db = db.Where("category_id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}
