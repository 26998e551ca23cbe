package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

// bindForm decodes a multipart or urlencoded body into form. Attachments are
// read separately by readAttachments.
func bindForm(c *gin.Context, form interface{}) bool {
	if err := c.ShouldBind(form); err != nil {
		respondBindError(c, err, msgInvalidData)
		return false
	}
	return true
}

// bindQuery decodes list filters.
func bindQuery(c *gin.Context, q interface{}) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		respondBindError(c, err, msgInvalidParams)
		return false
	}
	return true
}

// readAttachments collects the named file parts. Missing parts are skipped,
// the services decide which are required.
func readAttachments(c *gin.Context, fields ...string) (service.Attachments, bool) {
	files := make(service.Attachments, len(fields))
	for _, field := range fields {
		fh, err := c.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				continue
			}
			respondBindError(c, err, msgInvalidData)
			return nil, false
		}
		files[field] = uploadOf(fh)
	}
	return files, true
}

func uploadOf(fh *multipart.FileHeader) *media.Upload {
	return &media.Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
