package errors

import "errors"

// Error kinds shared by every module. Services wrap them with a localized
// message; handlers only ever inspect the kind.
var (
	ErrNotFound     = errors.New("record not found")
	ErrMediaUpload  = errors.New("media upload failed")
	ErrPersist      = errors.New("persist failed")
	ErrForbidden    = errors.New("forbidden")
	ErrHasRelations = errors.New("record is still referenced")
)

// NotFoundError is a not-found with a message safe to show to the user.
type NotFoundError struct {
	Message string
}

// NotFound builds a NotFoundError.
func NotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// OperationError is a failed write. Message is the localized text for the
// response, Err the underlying cause which must never reach the client.
type OperationError struct {
	Kind    error
	Message string
	Err     error
}

// MediaUpload wraps a media host failure.
func MediaUpload(message string, err error) *OperationError {
	return &OperationError{Kind: ErrMediaUpload, Message: message, Err: err}
}

// Persist wraps a database failure.
func Persist(message string, err error) *OperationError {
	return &OperationError{Kind: ErrPersist, Message: message, Err: err}
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() []error { return []error{e.Kind, e.Err} }

// Relation is one group of rows still pointing at a record.
type Relation struct {
	Count   int64  `json:"count"`
	Message string `json:"message"`
}

// RelationsError reports why a record cannot be removed.
type RelationsError struct {
	Message   string
	Relations map[string]Relation
}

func (e *RelationsError) Error() string { return e.Message }

func (e *RelationsError) Is(target error) bool { return target == ErrHasRelations }

// Message returns the user-facing text carried by err, or fallback.
func Message(err error, fallback string) string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Message
	}
	var op *OperationError
	if errors.As(err, &op) && op.Message != "" {
		return op.Message
	}
	var rel *RelationsError
	if errors.As(err, &rel) {
		return rel.Message
	}
	return fallback
}
