package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound_MatchesKind(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("Docente no encontrado."))
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("wrapped NotFoundError should match ErrNotFound")
	}
	if got := Message(err, "x"); got != "Docente no encontrado." {
		t.Errorf("unexpected message %q", got)
	}
}

func TestOperationError_UnwrapsKindAndCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := MediaUpload("Error al subir la imagen.", cause)

	if !errors.Is(err, ErrMediaUpload) {
		t.Error("should match ErrMediaUpload")
	}
	if !errors.Is(err, cause) {
		t.Error("should match the cause")
	}
	if errors.Is(err, ErrPersist) {
		t.Error("should not match ErrPersist")
	}
	if got := Message(err, "fallback"); got != "Error al subir la imagen." {
		t.Errorf("cause leaked into message: %q", got)
	}
}

func TestMessage_Fallback(t *testing.T) {
	if got := Message(errors.New("boom"), "Error interno"); got != "Error interno" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestRelationsError(t *testing.T) {
	err := &RelationsError{
		Message:   "No se puede eliminar",
		Relations: map[string]Relation{"created_records": {Count: 2}},
	}
	if !errors.Is(err, ErrHasRelations) {
		t.Error("should match ErrHasRelations")
	}
}
