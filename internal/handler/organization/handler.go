package organization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/admin-api/internal/handler"
	"github.com/hamyaran/admin-api/internal/model"
	orgsvc "github.com/hamyaran/admin-api/internal/service/organization"
)

type Handler struct {
	orgs         orgsvc.GovernmentOrganizationService
	associations orgsvc.AssociationService
}

func NewHandler(orgs orgsvc.GovernmentOrganizationService, associations orgsvc.AssociationService) *Handler {
	return &Handler{orgs: orgs, associations: associations}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	og := r.Group("/government-organizations")
	{
		og.POST("", h.CreateGovernmentOrganization)
		og.GET("", h.ListGovernmentOrganizations)
		og.GET("/:id", h.GetGovernmentOrganization)
		og.PATCH("/:id", h.UpdateGovernmentOrganization)
		og.DELETE("/:id", h.DeleteGovernmentOrganization)
	}
	ag := r.Group("/associations")
	{
		ag.POST("", h.CreateAssociation)
		ag.GET("", h.ListAssociations)
		ag.GET("/:id", h.GetAssociation)
		ag.PATCH("/:id", h.UpdateAssociation)
		ag.DELETE("/:id", h.DeleteAssociation)
	}
}

func (h *Handler) CreateGovernmentOrganization(c *gin.Context) {
	var req model.CreateGovernmentOrganizationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.orgs.CreateGovernmentOrganization(c.Request.Context(), &req, handler.FormFile(c, "logo"))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetGovernmentOrganization(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	found, err := h.orgs.GetGovernmentOrganization(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListGovernmentOrganizations(c *gin.Context) {
	f := handler.BindListFilter(c)
	found, page, err := h.orgs.ListGovernmentOrganizations(c.Request.Context(), f)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewPageResponse(found, page))
}

func (h *Handler) UpdateGovernmentOrganization(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	var req model.UpdateGovernmentOrganizationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	updated, err := h.orgs.UpdateGovernmentOrganization(c.Request.Context(), id, &req, handler.FormFile(c, "logo"))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteGovernmentOrganization(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	if err := h.orgs.DeleteGovernmentOrganization(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) CreateAssociation(c *gin.Context) {
	var req model.CreateAssociationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.associations.CreateAssociation(c.Request.Context(), &req, handler.FormFile(c, "logo"))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetAssociation(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	found, err := h.associations.GetAssociation(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListAssociations(c *gin.Context) {
	f := handler.BindListFilter(c)
	found, page, err := h.associations.ListAssociations(c.Request.Context(), f)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewPageResponse(found, page))
}

func (h *Handler) UpdateAssociation(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	var req model.UpdateAssociationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	updated, err := h.associations.UpdateAssociation(c.Request.Context(), id, &req, handler.FormFile(c, "logo"))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteAssociation(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	if err := h.associations.DeleteAssociation(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
