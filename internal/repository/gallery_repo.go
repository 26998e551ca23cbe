package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/w4d32001/admin-eapiis/internal/model"
)

// GalleryRepository gallery data access.
type GalleryRepository interface {
	Create(ctx context.Context, item *model.GalleryItem) error
	GetByID(ctx context.Context, id string) (*model.GalleryItem, error)
	List(ctx context.Context, f ListFilter) ([]model.GalleryItem, int64, error)
	Update(ctx context.Context, item *model.GalleryItem) error
	Delete(ctx context.Context, id string, deletedBy string) error
	Count(ctx context.Context) (int64, error)
}

type galleryRepo struct {
	db *gorm.DB
}

// NewGalleryRepo creates a GalleryRepository.
func NewGalleryRepo(db *gorm.DB) GalleryRepository {
	return &galleryRepo{db: db}
}

func (r *galleryRepo) Create(ctx context.Context, item *model.GalleryItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *galleryRepo) GetByID(ctx context.Context, id string) (*model.GalleryItem, error) {
	var item model.GalleryItem
	err := r.db.WithContext(ctx).
		Preload("Updater").
		Where("gallery_item_id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *galleryRepo) List(ctx context.Context, f ListFilter) ([]model.GalleryItem, int64, error) {
	var items []model.GalleryItem
	var total int64

	db := r.db.WithContext(ctx).Model(&model.GalleryItem{})
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Updater").
		Scopes(newestFirst("gallery_item_id"), paginate(f)).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *galleryRepo) Update(ctx context.Context, item *model.GalleryItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (r *galleryRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return softDelete(r.db.WithContext(ctx), &model.GalleryItem{}, "gallery_item_id", id, deletedBy)
}

func (r *galleryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.GalleryItem{}).Count(&count).Error
	return count, err
}
