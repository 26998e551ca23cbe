package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every repository.
type Repository struct {
	db *gorm.DB

	User            UserRepository
	TeacherCategory TeacherCategoryRepository
	Teacher         TeacherRepository
	News            NewsRepository
	Gallery         GalleryRepository
	Semester        SemesterRepository
	SiteSetting     SiteSettingRepository
	Audit           AuditRepository
}

// NewRepository creates the Repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:              db,
		User:            NewUserRepo(db),
		TeacherCategory: NewTeacherCategoryRepo(db),
		Teacher:         NewTeacherRepo(db),
		News:            NewNewsRepo(db),
		Gallery:         NewGalleryRepo(db),
		Semester:        NewSemesterRepo(db),
		SiteSetting:     NewSiteSettingRepo(db),
		Audit:           NewAuditRepo(db),
	}
}

// Transaction runs fn with repositories bound to a single transaction.
// A Repository built without a database (tests) runs fn on itself.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
