package validation

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/w4d32001/admin-eapiis/pkg/media"
)

var (
	ImageMIMEs = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	PDFMIMEs   = []string{"application/pdf"}
)

// FileRule constrains one uploaded file.
type FileRule struct {
	Label    string
	Required bool
	MaxBytes int64
	MIMEs    []string
	// Extensions lists what the message names as accepted, e.g. "jpeg, png".
	Extensions string
}

// ImageRule accepts the usual web image formats up to maxKB kilobytes.
func ImageRule(label string, required bool, maxKB int64) FileRule {
	return FileRule{
		Label:      label,
		Required:   required,
		MaxBytes:   maxKB * 1024,
		MIMEs:      ImageMIMEs,
		Extensions: "jpeg, png, jpg, gif, webp",
	}
}

// PDFRule accepts a PDF up to maxKB kilobytes.
func PDFRule(label string, required bool, maxKB int64) FileRule {
	return FileRule{
		Label:      label,
		Required:   required,
		MaxBytes:   maxKB * 1024,
		MIMEs:      PDFMIMEs,
		Extensions: "pdf",
	}
}

// File checks f against rule and records failures under field. The content
// type is sniffed from the bytes, the client supplied type is ignored.
func File(errs Errors, field string, f *media.Upload, rule FileRule) {
	if f == nil {
		if rule.Required {
			errs.Add(field, Required(rule.Label))
		}
		return
	}

	if rule.MaxBytes > 0 && f.Size > rule.MaxBytes {
		errs.Add(field, fmt.Sprintf("El campo %s no debe pesar más de %d kilobytes.", rule.Label, rule.MaxBytes/1024))
	}

	if len(rule.MIMEs) == 0 {
		return
	}
	detected, err := sniff(f)
	if err != nil || !mimetype.EqualsAny(detected, rule.MIMEs...) {
		errs.Add(field, fmt.Sprintf("El campo %s debe ser un archivo de tipo: %s.", rule.Label, rule.Extensions))
	}
}

func sniff(f *media.Upload) (string, error) {
	if f.Open == nil {
		return "", fmt.Errorf("no content")
	}
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	mt, err := mimetype.DetectReader(rc)
	if err != nil {
		return "", err
	}
	return strings.ToLower(mt.String()), nil
}
