package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

type fakeUploadAPI struct {
	uploadParams  uploader.UploadParams
	uploadResult  *uploader.UploadResult
	uploadErr     error
	destroyParams uploader.DestroyParams
	destroyResult *uploader.DestroyResult
	destroyErr    error
	body          []byte
}

func (f *fakeUploadAPI) Upload(_ context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.uploadParams = params
	if r, ok := file.(io.Reader); ok {
		f.body, _ = io.ReadAll(r)
	}
	return f.uploadResult, f.uploadErr
}

func (f *fakeUploadAPI) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyParams = params
	return f.destroyResult, f.destroyErr
}

func testUpload(name string, data []byte) *Upload {
	return &Upload{
		Filename: name,
		Size:     int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func newTestCloudinary(f *fakeUploadAPI) *Cloudinary {
	return newCloudinary(f, NewURLBuilder("https://res.cloudinary.com", "demo"), zap.NewNop())
}

func TestCloudinary_Upload(t *testing.T) {
	f := &fakeUploadAPI{uploadResult: &uploader.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/image/upload/v1/teachers/ana.jpg",
		PublicID:  "teachers/ana",
		Format:    "jpg",
		Width:     800,
		Height:    600,
		Bytes:     1234,
	}}
	c := newTestCloudinary(f)

	asset, err := c.Upload(context.Background(), "teachers", testUpload("ana.jpg", []byte("img")))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if asset.StorageID != "teachers/ana" || asset.Width != 800 || asset.ByteSize != 1234 {
		t.Errorf("unexpected asset %+v", asset)
	}
	if f.uploadParams.Folder != "teachers" || f.uploadParams.FilenameOverride != "ana.jpg" {
		t.Errorf("unexpected params %+v", f.uploadParams)
	}
	if string(f.body) != "img" {
		t.Errorf("file content not streamed, got %q", f.body)
	}
}

func TestCloudinary_Upload_ErrorResponse(t *testing.T) {
	f := &fakeUploadAPI{uploadResult: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}
	c := newTestCloudinary(f)

	if _, err := c.Upload(context.Background(), "news", testUpload("x.png", nil)); err == nil {
		t.Fatal("expected error from error response")
	}
}

func TestCloudinary_UploadDocument_PageCount(t *testing.T) {
	f := &fakeUploadAPI{uploadResult: &uploader.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/image/upload/v1/settings/res.pdf",
		PublicID:  "settings/res",
		Bytes:     2048,
		Pages:     3,
	}}
	c := newTestCloudinary(f)

	asset, err := c.UploadDocument(context.Background(), "settings", testUpload("res.pdf", []byte("%PDF")))
	if err != nil {
		t.Fatalf("UploadDocument failed: %v", err)
	}
	if asset.PageCount == nil || *asset.PageCount != 3 {
		t.Errorf("expected 3 pages, got %v", asset.PageCount)
	}
	if asset.Format != "pdf" {
		t.Errorf("expected default format pdf, got %s", asset.Format)
	}
}

func TestCloudinary_Delete(t *testing.T) {
	tests := []struct {
		name    string
		result  *uploader.DestroyResult
		err     error
		wantErr bool
	}{
		{"ok", &uploader.DestroyResult{Result: "ok"}, nil, false},
		{"not found", &uploader.DestroyResult{Result: "not found"}, nil, true},
		{"transport", nil, errors.New("timeout"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeUploadAPI{destroyResult: tt.result, destroyErr: tt.err}
			c := newTestCloudinary(f)

			err := c.Delete(context.Background(), "news/a", KindImage)
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if f.destroyParams.PublicID != "news/a" {
				t.Errorf("unexpected public id %s", f.destroyParams.PublicID)
			}
		})
	}
}

func TestCloudinary_Delete_EmptyID(t *testing.T) {
	f := &fakeUploadAPI{}
	c := newTestCloudinary(f)

	if err := c.Delete(context.Background(), "", KindImage); err != nil {
		t.Errorf("empty id should be a no-op, got %v", err)
	}
	if f.destroyParams.PublicID != "" {
		t.Error("destroy should not be called")
	}
}
