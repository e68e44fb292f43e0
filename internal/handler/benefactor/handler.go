package benefactor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/admin-api/internal/handler"
	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/service/benefactor"
)

type Handler struct {
	service benefactor.BenefactorService
}

func NewHandler(service benefactor.BenefactorService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	benefactors := r.Group("/benefactors")
	{
		benefactors.POST("", h.CreateBenefactor)
		benefactors.GET("", h.ListBenefactors)
		benefactors.GET("/:id", h.GetBenefactor)
		benefactors.PATCH("/:id", h.UpdateBenefactor)
		benefactors.DELETE("/:id", h.DeleteBenefactor)
	}
}

func (h *Handler) CreateBenefactor(c *gin.Context) {
	var req model.CreateBenefactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.service.CreateBenefactor(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetBenefactor(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	found, err := h.service.GetBenefactor(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListBenefactors(c *gin.Context) {
	f := handler.BindListFilter(c)
	benefactors, page, err := h.service.ListBenefactors(c.Request.Context(), f)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewPageResponse(benefactors, page))
}

func (h *Handler) UpdateBenefactor(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	var req model.UpdateBenefactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	updated, err := h.service.UpdateBenefactor(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteBenefactor(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteBenefactor(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
