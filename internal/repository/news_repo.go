package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/w4d32001/admin-eapiis/internal/model"
)

// NewsRepository news data access.
type NewsRepository interface {
	Create(ctx context.Context, article *model.NewsArticle) error
	GetByID(ctx context.Context, id string) (*model.NewsArticle, error)
	List(ctx context.Context, f ListFilter) ([]model.NewsArticle, int64, error)
	Update(ctx context.Context, article *model.NewsArticle) error
	SetPublished(ctx context.Context, id string, published bool, updatedBy string) error
	Delete(ctx context.Context, id string, deletedBy string) error
	Count(ctx context.Context) (int64, error)
}

type newsRepo struct {
	db *gorm.DB
}

// NewNewsRepo creates a NewsRepository.
func NewNewsRepo(db *gorm.DB) NewsRepository {
	return &newsRepo{db: db}
}

func (r *newsRepo) Create(ctx context.Context, article *model.NewsArticle) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(article).Error
}

func (r *newsRepo) GetByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	var article model.NewsArticle
	err := r.db.WithContext(ctx).
		Preload("Updater").
		Where("news_id = ?", id).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *newsRepo) List(ctx context.Context, f ListFilter) ([]model.NewsArticle, int64, error) {
	var articles []model.NewsArticle
	var total int64

	db := r.db.WithContext(ctx).Model(&model.NewsArticle{}).
		Scopes(search(f.Search, "title", "content", "location"))
	if f.Published != nil {
		db = db.Where("published = ?", *f.Published)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Updater").
		Scopes(newestFirst("news_id"), paginate(f)).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *newsRepo) Update(ctx context.Context, article *model.NewsArticle) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(article).Error
}

func (r *newsRepo) SetPublished(ctx context.Context, id string, published bool, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.NewsArticle{}).
		Where("news_id = ?", id).
		Updates(map[string]interface{}{
			"published":  published,
			"updated_by": updatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *newsRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return softDelete(r.db.WithContext(ctx), &model.NewsArticle{}, "news_id", id, deletedBy)
}

func (r *newsRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.NewsArticle{}).Count(&count).Error
	return count, err
}
