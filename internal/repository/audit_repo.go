package repository

import (
	"context"

	"gorm.io/gorm"
)

// AuditedTables are the tables whose rows carry created_by/updated_by
// pointing at an administrator.
var AuditedTables = []string{
	"news",
	"teachers",
	"teacher_categories",
	"gallery_items",
	"semesters",
	"site_settings",
}

// hardDeleted tables have no deleted_at column; every row is live.
var hardDeleted = map[string]bool{
	"site_settings": true,
}

// UserReferences counts rows that still point at a user.
type UserReferences struct {
	Created int64
	Updated int64
}

// Total is the number of referencing rows.
func (u UserReferences) Total() int64 { return u.Created + u.Updated }

// AuditRepository resolves the weak created_by/updated_by references.
type AuditRepository interface {
	CountReferences(ctx context.Context, userID string) (UserReferences, error)
	ClearReferences(ctx context.Context, userID string) error
}

type auditRepo struct {
	db *gorm.DB
}

// NewAuditRepo creates an AuditRepository.
func NewAuditRepo(db *gorm.DB) AuditRepository {
	return &auditRepo{db: db}
}

// CountReferences counts live rows created by the user, and rows last updated
// by the user that someone else created.
func (r *auditRepo) CountReferences(ctx context.Context, userID string) (UserReferences, error) {
	var refs UserReferences
	for _, table := range AuditedTables {
		var created, updated int64
		live := r.db.WithContext(ctx).Table(table)
		if !hardDeleted[table] {
			live = live.Where("deleted_at IS NULL")
		}
		live = live.Session(&gorm.Session{})

		if err := live.
			Where("created_by = ?", userID).
			Count(&created).Error; err != nil {
			return refs, err
		}
		if err := live.
			Where("updated_by = ?", userID).
			Where("created_by IS DISTINCT FROM updated_by").
			Count(&updated).Error; err != nil {
			return refs, err
		}

		refs.Created += created
		refs.Updated += updated
	}
	return refs, nil
}

// ClearReferences nulls every created_by/updated_by equal to the user,
// soft-deleted rows included.
func (r *auditRepo) ClearReferences(ctx context.Context, userID string) error {
	for _, table := range AuditedTables {
		for _, column := range []string{"created_by", "updated_by"} {
			err := r.db.WithContext(ctx).
				Table(table).
				Where(column+" = ?", userID).
				Update(column, gorm.Expr("NULL")).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}
