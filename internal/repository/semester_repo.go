package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/w4d32001/admin-eapiis/internal/model"
)

// SemesterRepository semester data access.
type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	GetByID(ctx context.Context, id string) (*model.Semester, error)
	List(ctx context.Context, f ListFilter) ([]model.Semester, int64, error)
	Update(ctx context.Context, semester *model.Semester) error
	SetActive(ctx context.Context, id string, active bool, updatedBy string) error
	Delete(ctx context.Context, id string, deletedBy string) error
	NumberTaken(ctx context.Context, number int, excludeID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo creates a SemesterRepository.
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(semester).Error
}

func (r *semesterRepo) GetByID(ctx context.Context, id string) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Preload("Updater").
		Where("semester_id = ?", id).
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) List(ctx context.Context, f ListFilter) ([]model.Semester, int64, error) {
	var semesters []model.Semester
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Semester{})
	if f.ActiveOnly {
		db = db.Where("is_active = ?", true)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Updater").
		Scopes(newestFirst("semester_id"), paginate(f)).
		Find(&semesters).Error
	if err != nil {
		return nil, 0, err
	}
	return semesters, total, nil
}

func (r *semesterRepo) Update(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(semester).Error
}

func (r *semesterRepo) SetActive(ctx context.Context, id string, active bool, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Semester{}).
		Where("semester_id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_by": updatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *semesterRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return softDelete(r.db.WithContext(ctx), &model.Semester{}, "semester_id", id, deletedBy)
}

// NumberTaken checks uniqueness among semesters that are not deleted.
func (r *semesterRepo) NumberTaken(ctx context.Context, number int, excludeID string) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).Model(&model.Semester{}).Where("number = ?", number)
	if excludeID != "" {
		db = db.Where("semester_id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *semesterRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Semester{}).Count(&count).Error
	return count, err
}
