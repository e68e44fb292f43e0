package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/admin-api/internal/handler"
	"github.com/hamyaran/admin-api/internal/model"
	authsvc "github.com/hamyaran/admin-api/internal/service/auth"
)

type Handler struct {
	service authsvc.AuthService
}

func NewHandler(service authsvc.AuthService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public authentication endpoints. These stay
// outside the authenticated group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/sign-in", h.SignIn)
	r.POST("/token/refresh", h.Refresh)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	tokens, err := h.service.SignIn(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tokens))
}

func (h *Handler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	tokens, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tokens))
}
