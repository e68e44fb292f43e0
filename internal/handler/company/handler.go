package company

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/admin-api/internal/handler"
	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/service/company"
)

type Handler struct {
	service company.PrivateCompanyService
}

func NewHandler(service company.PrivateCompanyService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/private-companies")
	{
		companies.POST("", h.CreatePrivateCompany)
		companies.GET("", h.ListPrivateCompanies)
		companies.GET("/:id", h.GetPrivateCompany)
		companies.PATCH("/:id", h.UpdatePrivateCompany)
		companies.DELETE("/:id", h.DeletePrivateCompany)
	}
}

func bindFiles(c *gin.Context) company.Files {
	return company.Files{
		MembershipRequest: handler.FormFile(c, "membershipRequest"),
		ActivityLicense:   handler.FormFile(c, "activityLicense"),
		CollectionLogo:    handler.FormFile(c, "collectionLogo"),
	}
}

func (h *Handler) CreatePrivateCompany(c *gin.Context) {
	var req model.CreatePrivateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.service.CreatePrivateCompany(c.Request.Context(), &req, bindFiles(c))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetPrivateCompany(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	found, err := h.service.GetPrivateCompany(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListPrivateCompanies(c *gin.Context) {
	f := handler.BindListFilter(c)
	companies, page, err := h.service.ListPrivateCompanies(c.Request.Context(), f)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewPageResponse(companies, page))
}

func (h *Handler) UpdatePrivateCompany(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	var req model.UpdatePrivateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	updated, err := h.service.UpdatePrivateCompany(c.Request.Context(), id, &req, bindFiles(c))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeletePrivateCompany(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePrivateCompany(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
