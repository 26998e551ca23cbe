package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/pkg/metrics"
)

// Images and PDFs are both stored as image resources.
const imageResource = "image"

// uploadAPI is the subset of the Cloudinary upload API in use.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// Cloudinary is the Store backed by cloudinary.com.
type Cloudinary struct {
	URLBuilder
	api    uploadAPI
	logger *zap.Logger
}

// NewCloudinary connects with the configured credentials.
func NewCloudinary(cfg *config.MediaConfig, logger *zap.Logger) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return newCloudinary(&cld.Upload, NewURLBuilder(cfg.DeliveryDomain, cfg.CloudName), logger), nil
}

func newCloudinary(upl uploadAPI, urls URLBuilder, logger *zap.Logger) *Cloudinary {
	return &Cloudinary{URLBuilder: urls, api: upl, logger: logger}
}

// Upload stores an image with automatic quality.
func (c *Cloudinary) Upload(ctx context.Context, folder string, file *Upload) (*Asset, error) {
	params := uploader.UploadParams{
		Folder:           folder,
		UseFilename:      api.Bool(true),
		UniqueFilename:   api.Bool(true),
		FilenameOverride: file.Filename,
		Transformation:   "q_auto:good",
	}
	res, err := c.upload(ctx, file, params, KindImage)
	if err != nil {
		return nil, err
	}

	return &Asset{
		URL:       res.SecureURL,
		StorageID: res.PublicID,
		Format:    res.Format,
		Width:     res.Width,
		Height:    res.Height,
		ByteSize:  int64(res.Bytes),
	}, nil
}

// UploadDocument stores a PDF. PDFs go in as image resources so the host
// reports a page count and can render page previews.
func (c *Cloudinary) UploadDocument(ctx context.Context, folder string, file *Upload) (*Asset, error) {
	params := uploader.UploadParams{
		Folder:           folder,
		UseFilename:      api.Bool(true),
		UniqueFilename:   api.Bool(true),
		FilenameOverride: file.Filename,
		ResourceType:     imageResource,
	}
	res, err := c.upload(ctx, file, params, KindDocument)
	if err != nil {
		return nil, err
	}

	format := res.Format
	if format == "" {
		format = "pdf"
	}
	asset := &Asset{
		URL:       res.SecureURL,
		StorageID: res.PublicID,
		Format:    format,
		ByteSize:  int64(res.Bytes),
	}
	if res.Pages > 0 {
		pages := res.Pages
		asset.PageCount = &pages
	}
	return asset, nil
}

// Delete destroys an asset. A result other than "ok" is an error.
func (c *Cloudinary) Delete(ctx context.Context, storageID string, kind Kind) error {
	if storageID == "" {
		return nil
	}

	res, err := c.api.Destroy(ctx, uploader.DestroyParams{
		PublicID:     storageID,
		ResourceType: imageResource,
	})
	if err == nil && res.Error.Message != "" {
		err = errors.New(res.Error.Message)
	}
	if err == nil && res.Result != "ok" {
		err = fmt.Errorf("destroy %s: result %q", storageID, res.Result)
	}

	metrics.ObserveMedia("delete", string(kind), err)
	return err
}

func (c *Cloudinary) upload(ctx context.Context, file *Upload, params uploader.UploadParams, kind Kind) (*uploader.UploadResult, error) {
	rc, err := file.Open()
	if err != nil {
		metrics.ObserveMedia("upload", string(kind), err)
		return nil, fmt.Errorf("open %s: %w", file.Filename, err)
	}
	defer rc.Close()

	res, err := c.api.Upload(ctx, io.Reader(rc), params)
	if err == nil && res.Error.Message != "" {
		err = errors.New(res.Error.Message)
	}
	metrics.ObserveMedia("upload", string(kind), err)
	if err != nil {
		return nil, fmt.Errorf("upload %s to %s: %w", file.Filename, params.Folder, err)
	}

	c.logger.Debug("media uploaded",
		zap.String("folder", params.Folder),
		zap.String("storage_id", res.PublicID),
		zap.Int("bytes", res.Bytes),
	)
	return res, nil
}

