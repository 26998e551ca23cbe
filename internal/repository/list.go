package repository

import (
	"strings"

	"gorm.io/gorm"
)

// ListFilter narrows and pages a listing. PageSize 0 returns every row.
type ListFilter struct {
	Search     string
	CategoryID string
	Category   string
	Published  *bool
	ActiveOnly bool
	Page       int
	PageSize   int
}

func (f ListFilter) offset() int {
	if f.Page <= 1 || f.PageSize <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// search matches term as a case-insensitive substring of any column.
func search(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" {
			return db
		}
		pattern := "%" + escapeLike(term) + "%"
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, c := range columns {
			conds = append(conds, c+" ILIKE ?")
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

func paginate(f ListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.PageSize <= 0 {
			return db
		}
		return db.Offset(f.offset()).Limit(f.PageSize)
	}
}

// newestFirst orders by creation time, falling back to the key for rows
// created in the same instant.
func newestFirst(pk string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order(pk + " DESC")
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

// softDelete marks a row deleted and records who did it.
func softDelete(db *gorm.DB, model interface{}, pk, id, deletedBy string) error {
	return db.Model(model).
		Where(pk+" = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
