package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

// ── fake media store ──

type fakeStore struct {
	media.URLBuilder
	uploads   []string
	deletes   []string
	uploadErr error
	deleteErr error
	seq       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{URLBuilder: media.NewURLBuilder("https://res.cloudinary.com", "demo")}
}

func (f *fakeStore) Upload(_ context.Context, folder string, file *media.Upload) (*media.Asset, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.seq++
	id := fmt.Sprintf("%s/asset-%d", folder, f.seq)
	f.uploads = append(f.uploads, id)
	return &media.Asset{
		URL:       "https://res.cloudinary.com/demo/image/upload/v1/" + id + ".png",
		StorageID: id,
		Format:    "png",
		ByteSize:  file.Size,
	}, nil
}

func (f *fakeStore) UploadDocument(ctx context.Context, folder string, file *media.Upload) (*media.Asset, error) {
	asset, err := f.Upload(ctx, folder, file)
	if err != nil {
		return nil, err
	}
	pages := 3
	asset.Format = "pdf"
	asset.PageCount = &pages
	return asset, nil
}

func (f *fakeStore) Delete(_ context.Context, storageID string, _ media.Kind) error {
	f.deletes = append(f.deletes, storageID)
	return f.deleteErr
}

// ── fixtures ──

var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")
	txtBytes = []byte("plain text is not an image")

	errRemote = errors.New("remote unavailable")
	errDB     = errors.New("connection reset")
)

func fileOf(name string, data []byte) *media.Upload {
	return &media.Upload{
		Filename: name,
		Size:     int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func withImage() Attachments {
	return Attachments{FieldImage: fileOf("foto.png", pngBytes)}
}

func testConfig() *config.Config {
	return &config.Config{
		Media: config.MediaConfig{ImageMaxKB: 2048, CoverMaxKB: 5120, DocumentMaxKB: 20480},
		Pagination: config.PaginationConfig{
			Teachers: 15, TeacherTypes: 15, News: 15, Galleries: 15,
			Semesters: 15, Users: 15, DashboardTeachers: 8, Public: 15,
		},
		TeacherCategory: config.TeacherCategoryConfig{DeletePolicy: config.DeletePolicyIgnore},
	}
}

// fixedValidator pins "today" to 2025-03-10.
func fixedValidator() *validation.Validator {
	return validation.NewWithClock(func() time.Time {
		return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	})
}

var nopLogger = zap.NewNop()

func admin(id string) RequestContext  { return RequestContext{ActorID: id, Role: "admin"} }
func editor(id string) RequestContext { return RequestContext{ActorID: id, Role: "editor"} }

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	fields := validation.FieldsOf(err)
	if fields == nil {
		t.Fatalf("expected validation error on %q, got %v", field, err)
	}
	if !fields.Has(field) {
		t.Fatalf("expected field %q to fail, got %v", field, fields)
	}
}

func validationMessages(err error, field string) []string {
	return validation.FieldsOf(err)[field]
}
