package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/internal/validation"
	pkgerrors "github.com/w4d32001/admin-eapiis/pkg/errors"
	"github.com/w4d32001/admin-eapiis/pkg/observability"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

const (
	msgInvalidData   = "Los datos proporcionados no son válidos."
	msgInvalidParams = "Parámetros de consulta inválidos."
	msgTooLarge      = "El archivo o la solicitud exceden el tamaño permitido."
	msgForbidden     = "No tienes permiso para realizar esta acción."
	msgBadLogin      = "Las credenciales proporcionadas son incorrectas."
	msgSelfDelete    = "No puedes eliminar tu propia cuenta."
)

// respondError maps a service error to its HTTP reply. fallback is the
// message shown for unexpected failures.
func respondError(c *gin.Context, err error, fallback string) {
	if fields := validation.FieldsOf(err); fields != nil {
		response.FieldErrors(c, msgInvalidData, fields)
		return
	}

	var rel *pkgerrors.RelationsError
	switch {
	case errors.As(err, &rel):
		response.Conflict(c, 10007, rel.Message, rel.Relations)
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.NotFound(c, 10004, pkgerrors.Message(err, "Registro no encontrado."))
	case errors.Is(err, pkgerrors.ErrForbidden):
		response.Forbidden(c, 10003, msgForbidden)
	case errors.Is(err, pkgerrors.ErrMediaUpload):
		response.BadGateway(c, 10008, pkgerrors.Message(err, fallback))
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11001, msgBadLogin)
	case errors.Is(err, service.ErrSelfDelete):
		response.BadRequest(c, 10009, msgSelfDelete)
	default:
		observability.CaptureErr(err, map[string]string{"route": c.FullPath()})
		_ = c.Error(err)
		response.InternalErrorMessage(c, pkgerrors.Message(err, fallback))
	}
}

// respondBindError answers a request whose body or query could not be decoded.
func respondBindError(c *gin.Context, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, msgTooLarge)
		return
	}
	response.BadRequest(c, 10001, message)
}
