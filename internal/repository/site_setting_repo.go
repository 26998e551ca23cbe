package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/w4d32001/admin-eapiis/internal/model"
)

// SiteSettingRepository site setting data access. Rows are keyed by name.
type SiteSettingRepository interface {
	GetByName(ctx context.Context, name string) (*model.SiteSetting, error)
	List(ctx context.Context) ([]model.SiteSetting, error)
	Upsert(ctx context.Context, setting *model.SiteSetting) error
}

type siteSettingRepo struct {
	db *gorm.DB
}

// NewSiteSettingRepo creates a SiteSettingRepository.
func NewSiteSettingRepo(db *gorm.DB) SiteSettingRepository {
	return &siteSettingRepo{db: db}
}

func (r *siteSettingRepo) GetByName(ctx context.Context, name string) (*model.SiteSetting, error) {
	var setting model.SiteSetting
	err := r.db.WithContext(ctx).
		Preload("Updater").
		Where("name = ?", name).
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *siteSettingRepo) List(ctx context.Context) ([]model.SiteSetting, error) {
	var settings []model.SiteSetting
	err := r.db.WithContext(ctx).
		Preload("Updater").
		Order("name ASC").
		Find(&settings).Error
	return settings, err
}

// Upsert inserts the setting or replaces the media of the existing row
// with the same name. created_* survive the update. gorm only fills
// updated_at on insert when it is zero, so a row loaded for editing
// would otherwise write its old timestamp back.
func (r *siteSettingRepo) Upsert(ctx context.Context, setting *model.SiteSetting) error {
	setting.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"image_url",
				"image_storage_id",
				"document_url",
				"document_storage_id",
				"document_byte_size",
				"document_page_count",
				"updated_at",
				"updated_by",
			}),
		}).
		Create(setting).Error
}
