package validation

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/w4d32001/admin-eapiis/pkg/media"
)

type sampleForm struct {
	Name  string `form:"name"  validate:"required,max=10"   label:"nombre"`
	Email string `form:"email" validate:"required,email"    label:"correo"`
	Phone string `form:"phone" validate:"required,min=9,max=12"`
	Date  string `form:"date"  validate:"required,datetime=2006-01-02,notpast" label:"fecha"`
	Kind  string `form:"type"  validate:"required,oneof=lab event"`
}

func fixedClock() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }

func TestStruct_CollectsAllFields(t *testing.T) {
	v := NewWithClock(fixedClock)

	errs := v.Struct(&sampleForm{
		Name:  strings.Repeat("x", 11),
		Email: "not-an-email",
		Phone: "123",
		Date:  "2026-03-09",
		Kind:  "party",
	})

	for _, f := range []string{"name", "email", "phone", "date", "type"} {
		if !errs.Has(f) {
			t.Errorf("expected an error for %s, got %v", f, errs)
		}
	}
	if got := errs["name"][0]; got != "El campo nombre no debe superar 10 caracteres." {
		t.Errorf("unexpected name message %q", got)
	}
	if got := errs["date"][0]; got != "El campo fecha debe ser una fecha posterior o igual a hoy." {
		t.Errorf("unexpected date message %q", got)
	}
}

func TestNewWithClock_RegistersNotPast(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("building the validator panicked: %v", r)
		}
	}()
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	v := NewWithClock(func() time.Time { return today })

	type dated struct {
		Date string `form:"date" validate:"notpast"`
	}
	if errs := v.Struct(&dated{Date: "2025-03-10"}); len(errs) != 0 {
		t.Errorf("today is not past: %v", errs)
	}
	if errs := v.Struct(&dated{Date: "2025-03-09"}); !errs.Has("date") {
		t.Error("yesterday must be rejected")
	}
}

func TestStruct_Valid(t *testing.T) {
	v := NewWithClock(fixedClock)

	errs := v.Struct(&sampleForm{
		Name:  "Ana",
		Email: "ana@unap.edu.pe",
		Phone: "951234567",
		Date:  "2026-03-10",
		Kind:  "lab",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if errs.Err() != nil {
		t.Error("Err should be nil when nothing failed")
	}
}

func TestStruct_RequiredMessageUsesFormNameWithoutLabel(t *testing.T) {
	v := New()

	errs := v.Struct(&sampleForm{})
	if got := errs["phone"][0]; got != "El campo phone es obligatorio." {
		t.Errorf("unexpected message %q", got)
	}
}

func TestErrors_Err(t *testing.T) {
	errs := Errors{}
	errs.Add("number", Taken("número"))

	err := errs.Err()
	if !errors.Is(err, ErrInvalid) {
		t.Fatal("expected ErrInvalid")
	}
	if FieldsOf(err)["number"][0] != "El número ya ha sido registrado." {
		t.Errorf("unexpected fields %v", FieldsOf(err))
	}
	if FieldsOf(errors.New("x")) != nil {
		t.Error("non validation error should yield nil fields")
	}
}

func upload(data []byte) *media.Upload {
	return &media.Upload{
		Filename: "f",
		Size:     int64(len(data)),
		Open:     func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}

var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	pdfBytes = []byte("%PDF-1.7\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")
)

func TestFile_Image(t *testing.T) {
	tests := []struct {
		name    string
		file    *media.Upload
		rule    FileRule
		wantErr bool
	}{
		{"missing optional", nil, ImageRule("imagen", false, 2048), false},
		{"missing required", nil, ImageRule("imagen", true, 2048), true},
		{"png ok", upload(pngBytes), ImageRule("imagen", true, 2048), false},
		{"pdf as image", upload(pdfBytes), ImageRule("imagen", true, 2048), true},
		{"pdf ok", upload(pdfBytes), PDFRule("pdf", true, 20480), false},
		{"too large", &media.Upload{Size: 3 << 20, Open: upload(pngBytes).Open}, ImageRule("imagen", true, 2048), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Errors{}
			File(errs, "image", tt.file, tt.rule)
			if errs.Has("image") != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, errs)
			}
		})
	}
}
