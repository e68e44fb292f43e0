package healthassist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/admin-api/internal/handler"
	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/service/healthassist"
)

type Handler struct {
	service healthassist.HealthAssistService
}

func NewHandler(service healthassist.HealthAssistService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	assists := r.Group("/health-assists")
	{
		assists.POST("", h.CreateHealthAssist)
		assists.GET("", h.ListHealthAssists)
		assists.GET("/:id", h.GetHealthAssist)
		assists.PATCH("/:id", h.UpdateHealthAssist)
		assists.DELETE("/:id", h.DeleteHealthAssist)
	}
}

// CreateHealthAssist accepts a multipart form: the profile fields plus an
// optional letterFile attachment.
func (h *Handler) CreateHealthAssist(c *gin.Context) {
	var req model.CreateHealthAssistRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	letter := handler.FormFile(c, "letterFile")
	created, err := h.service.CreateHealthAssist(c.Request.Context(), &req, letter)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetHealthAssist(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	found, err := h.service.GetHealthAssist(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListHealthAssists(c *gin.Context) {
	f := handler.BindListFilter(c)
	assists, page, err := h.service.ListHealthAssists(c.Request.Context(), f)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewPageResponse(assists, page))
}

func (h *Handler) UpdateHealthAssist(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	var req model.UpdateHealthAssistRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	letter := handler.FormFile(c, "letterFile")
	updated, err := h.service.UpdateHealthAssist(c.Request.Context(), id, &req, letter)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteHealthAssist(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteHealthAssist(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
