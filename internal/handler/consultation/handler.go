package consultation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/admin-api/internal/handler"
	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/service/consultation"
)

type Handler struct {
	service consultation.ConsultationRequestService
}

func NewHandler(service consultation.ConsultationRequestService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/consultation-requests")
	{
		g.POST("", h.CreateRequest)
		g.GET("", h.ListRequests)
		g.GET("/:id", h.GetRequest)
		g.PATCH("/:id", h.UpdateRequest)
		g.DELETE("/:id", h.DeleteRequest)
	}
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var req model.CreateConsultationRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.service.CreateRequest(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetRequest(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	found, err := h.service.GetRequest(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListRequests(c *gin.Context) {
	f := handler.BindListFilter(c)
	found, page, err := h.service.ListRequests(c.Request.Context(), f)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewPageResponse(found, page))
}

func (h *Handler) UpdateRequest(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	var req model.UpdateConsultationRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	updated, err := h.service.UpdateRequest(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteRequest(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRequest(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
