package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/admin-api/internal/model"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
)

// Envelope is the uniform response body. ok reports business success;
// transport-level success alone never implies it.
type Envelope struct {
	OK      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// PageEnvelope wraps list responses together with the pagination block.
type PageEnvelope struct {
	OK         bool           `json:"ok"`
	Data       interface{}    `json:"data"`
	Pagination model.PageInfo `json:"pagination"`
}

func NewSuccessResponse(data interface{}) *Envelope {
	return &Envelope{OK: true, Data: data}
}

func NewErrorResponse(message string) *Envelope {
	return &Envelope{OK: false, Message: message}
}

func NewPageResponse(data interface{}, page model.PageInfo) *PageEnvelope {
	return &PageEnvelope{OK: true, Data: data, Pagination: page}
}

// WriteError maps a service error to its HTTP status and ok:false envelope.
func WriteError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(statusFor(appErr.Code), NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}

func statusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrBadRequest, apperrors.ErrValidation:
		return http.StatusBadRequest
	case apperrors.ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
