package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the admin envelope.
type Response struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Details interface{}         `json:"details,omitempty"`
}

// Pagination page metadata.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PageData a paginated list.
type PageData struct {
	List       interface{} `json:"list"`
	Pagination Pagination  `json:"pagination"`
}

// PublicList is the envelope of the read-only public API.
type PublicList struct {
	Data interface{} `json:"data"`
	Meta *Pagination `json:"meta,omitempty"`
}

// NewPagination computes the page count. pageSize <= 0 means everything
// fits on one page.
func NewPagination(total int64, page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	totalPages := 1
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
		if totalPages == 0 {
			totalPages = 1
		}
	}
	return Pagination{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

// ── success ──

// OK 200.
func OK(c *gin.Context, data interface{}) {
	Flash(c, http.StatusOK, "success", data)
}

// Created 201.
func Created(c *gin.Context, data interface{}) {
	Flash(c, http.StatusCreated, "success", data)
}

// Flash replies with a user-facing success message.
func Flash(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// OKPage 200 with pagination.
func OKPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data: PageData{
			List:       list,
			Pagination: NewPagination(total, page, pageSize),
		},
	})
}

// Public replies with the public API envelope.
func Public(c *gin.Context, list interface{}, meta *Pagination) {
	c.JSON(http.StatusOK, PublicList{Data: list, Meta: meta})
}

// ── errors ──

// Error generic error reply.
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorWithDetails error reply carrying structured details.
func ErrorWithDetails(c *gin.Context, httpStatus int, code int, message string, details interface{}) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// FieldErrors 422 with every failed field.
func FieldErrors(c *gin.Context, message string, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Code:    10006,
		Message: message,
		Errors:  errs,
	})
}

// ── shortcuts ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code int, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, code int, message string) {
	Error(c, http.StatusForbidden, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// Conflict 409
func Conflict(c *gin.Context, code int, message string, details interface{}) {
	ErrorWithDetails(c, http.StatusConflict, code, message, details)
}

// BadGateway 502, used when the media host rejects an upload.
func BadGateway(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadGateway, code, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, 50000, "Error interno del servidor.")
}

// InternalErrorMessage 500 with an operation specific message.
func InternalErrorMessage(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, 50000, message)
}
