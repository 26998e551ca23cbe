package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	pkgerrors "github.com/w4d32001/admin-eapiis/pkg/errors"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

// RequestContext identifies who performs an operation.
type RequestContext struct {
	ActorID string
	Role    string
}

// IsAdmin reports whether the actor holds the administrator role.
func (r RequestContext) IsAdmin() bool { return r.Role == model.RoleAdmin }

// Attachments files of one submission keyed by form field.
type Attachments map[string]*media.Upload

// Form fields that carry files.
const (
	FieldImage = "image"
	FieldPDF   = "pdf"
)

// Get returns the file sent under field, nil when absent.
func (a Attachments) Get(field string) *media.Upload {
	if a == nil {
		return nil
	}
	return a[field]
}

// Remote folders per entity.
const (
	folderTeachers  = "teachers"
	folderNews      = "news"
	folderGallery   = "galleries"
	folderSemesters = "semesters"
	folderSettings  = "settings"
	folderDocuments = "settings/documents"
)

const uploadFailedMessage = "Error al subir la imagen. Por favor, intenta nuevamente."

// mediaSlot is one media column of an entity.
type mediaSlot struct {
	field   string
	folder  string
	kind    media.Kind
	current string
	apply   func(*media.Asset)
}

// storedMedia is an asset already on the media host.
type storedMedia struct {
	storageID string
	kind      media.Kind
}

// mediaWrite is one pass through upload, replace and persist.
type mediaWrite struct {
	entity        string
	id            string
	actor         RequestContext
	slots         []mediaSlot
	files         Attachments
	persist       func(ctx context.Context) error
	persistFailed string
	unique        *uniqueField
	payload       []zap.Field
}

// uniqueField is the form field backed by a unique index on the written row.
type uniqueField struct {
	field   string
	message string
}

// conflict turns a unique index violation into the field error the check
// before the write reports. Concurrent writes can both pass that check.
func (u *uniqueField) conflict(err error) error {
	if u == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	errs := validation.Errors{}
	errs.Add(u.field, u.message)
	return errs.Err()
}

// pipeline runs the media side of every create/update/delete. Uploads happen
// before the row is written; replaced assets are removed on a best effort
// basis and never block the write.
type pipeline struct {
	store  media.Store
	logger *zap.Logger
}

func newPipeline(store media.Store, logger *zap.Logger) *pipeline {
	return &pipeline{store: store, logger: logger}
}

// ────────────────────── Write ──────────────────────

func (p *pipeline) write(ctx context.Context, w mediaWrite) error {
	type uploaded struct {
		slot  mediaSlot
		asset *media.Asset
	}
	var done []uploaded

	for _, slot := range w.slots {
		file := w.files.Get(slot.field)
		if file == nil {
			continue
		}

		asset, err := p.upload(ctx, slot, file)
		if err != nil {
			p.logger.Error("media upload failed",
				zap.String("entity", w.entity),
				zap.String("id", w.id),
				zap.String("actor_id", w.actor.ActorID),
				zap.String("field", slot.field),
				zap.Error(err),
			)
			for _, u := range done {
				p.logger.Warn("uploaded media left orphaned",
					zap.String("entity", w.entity),
					zap.String("storage_id", u.asset.StorageID))
			}
			return pkgerrors.MediaUpload(uploadFailedMessage, err)
		}
		done = append(done, uploaded{slot: slot, asset: asset})
	}

	for _, u := range done {
		if u.slot.current != "" && u.slot.current != u.asset.StorageID {
			p.discard(ctx, w.entity, w.id, storedMedia{storageID: u.slot.current, kind: u.slot.kind})
		}
		u.slot.apply(u.asset)
	}

	if err := w.persist(ctx); err != nil {
		if verr := w.unique.conflict(err); verr != nil {
			fields := append([]zap.Field{
				zap.String("entity", w.entity),
				zap.String("id", w.id),
				zap.String("field", w.unique.field),
			}, w.payload...)
			for _, u := range done {
				fields = append(fields, zap.String("orphaned_storage_id", u.asset.StorageID))
			}
			p.logger.Warn("unique constraint rejected write", fields...)
			return verr
		}
		fields := append([]zap.Field{
			zap.String("entity", w.entity),
			zap.String("id", w.id),
			zap.String("actor_id", w.actor.ActorID),
			zap.Error(err),
		}, w.payload...)
		for _, u := range done {
			fields = append(fields, zap.String("orphaned_storage_id", u.asset.StorageID))
		}
		p.logger.Error("persist failed", fields...)
		return pkgerrors.Persist(w.persistFailed, err)
	}
	return nil
}

func (p *pipeline) upload(ctx context.Context, slot mediaSlot, file *media.Upload) (*media.Asset, error) {
	if slot.kind == media.KindDocument {
		return p.store.UploadDocument(ctx, slot.folder, file)
	}
	return p.store.Upload(ctx, slot.folder, file)
}

// ────────────────────── Remove ──────────────────────

// remove deletes the stored media of a record and then the record.
func (p *pipeline) remove(ctx context.Context, entity, id string, actor RequestContext, assets []storedMedia, del func(ctx context.Context) error, failed string) error {
	for _, a := range assets {
		if a.storageID != "" {
			p.discard(ctx, entity, id, a)
		}
	}

	if err := del(ctx); err != nil {
		p.logger.Error("delete failed",
			zap.String("entity", entity),
			zap.String("id", id),
			zap.String("actor_id", actor.ActorID),
			zap.Error(err),
		)
		return pkgerrors.Persist(failed, err)
	}
	return nil
}

// discard removes a remote asset, logging instead of failing.
func (p *pipeline) discard(ctx context.Context, entity, id string, a storedMedia) {
	if err := p.store.Delete(ctx, a.storageID, a.kind); err != nil {
		p.logger.Warn("media delete failed",
			zap.String("entity", entity),
			zap.String("id", id),
			zap.String("storage_id", a.storageID),
			zap.Error(err),
		)
	}
}

// ── helpers ──

// resolve maps a lookup failure to a NotFoundError or a persist error.
func resolve(err error, notFound string, logger *zap.Logger, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.NotFound(notFound)
	}
	logger.Error("lookup failed", zap.String("entity", entity), zap.String("id", id), zap.Error(err))
	return err
}

func imageSlot(folder string, ref *model.MediaRef) mediaSlot {
	return mediaSlot{
		field:   FieldImage,
		folder:  folder,
		kind:    media.KindImage,
		current: ref.StorageID,
		apply: func(a *media.Asset) {
			ref.URL = a.URL
			ref.StorageID = a.StorageID
		},
	}
}

func documentSlot(folder string, ref *model.DocumentRef) mediaSlot {
	return mediaSlot{
		field:   FieldPDF,
		folder:  folder,
		kind:    media.KindDocument,
		current: ref.StorageID,
		apply: func(a *media.Asset) {
			ref.URL = a.URL
			ref.StorageID = a.StorageID
			ref.ByteSize = a.ByteSize
			ref.PageCount = a.PageCount
		},
	}
}

func imageOf(ref model.MediaRef) []storedMedia {
	return []storedMedia{{storageID: ref.StorageID, kind: media.KindImage}}
}

func pageSize(cfgSize int) int {
	if cfgSize < 0 {
		return 0
	}
	return cfgSize
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
