// Package media talks to the remote media host that stores every image and
// PDF the back-office publishes.
package media

import (
	"context"
	"io"
)

// Kind selects how an asset is stored and removed remotely.
type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

// Upload is a file received from a client, not yet sent anywhere.
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// Asset is what the media host reports after a successful upload.
type Asset struct {
	URL       string
	StorageID string
	Format    string
	Width     int
	Height    int
	ByteSize  int64
	PageCount *int
}

// Store is the remote media host.
type Store interface {
	// Upload stores an image under folder.
	Upload(ctx context.Context, folder string, file *Upload) (*Asset, error)
	// UploadDocument stores a PDF under folder.
	UploadDocument(ctx context.Context, folder string, file *Upload) (*Asset, error)
	// Delete removes an asset. Callers treat failures as warnings.
	Delete(ctx context.Context, storageID string, kind Kind) error
	// DerivedURL builds a transformed delivery URL without any remote call.
	DerivedURL(storageID string, params ...Param) string
	// PreviewURL builds the first-page image of a stored PDF.
	PreviewURL(storageID string, params ...Param) string
}
