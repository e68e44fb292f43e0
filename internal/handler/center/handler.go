package center

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/admin-api/internal/handler"
	"github.com/hamyaran/admin-api/internal/model"
	centers "github.com/hamyaran/admin-api/internal/service/center"
)

// Handler serves the three center-like resources. They share the multipart
// contract and the status lifecycle, so they live together.
type Handler struct {
	services centers.ServiceCenterService
	medical  centers.MedicalCenterService
	charity  centers.CharityCenterService
}

func NewHandler(services centers.ServiceCenterService, medical centers.MedicalCenterService,
	charity centers.CharityCenterService) *Handler {
	return &Handler{services: services, medical: medical, charity: charity}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	sc := r.Group("/service-centers")
	{
		sc.POST("", h.CreateServiceCenter)
		sc.GET("", h.ListServiceCenters)
		sc.GET("/:id", h.GetServiceCenter)
		sc.PATCH("/:id", h.UpdateServiceCenter)
		sc.DELETE("/:id", h.DeleteServiceCenter)
	}
	mc := r.Group("/medical-centers")
	{
		mc.POST("", h.CreateMedicalCenter)
		mc.GET("", h.ListMedicalCenters)
		mc.GET("/:id", h.GetMedicalCenter)
		mc.PATCH("/:id", h.UpdateMedicalCenter)
		mc.DELETE("/:id", h.DeleteMedicalCenter)
	}
	cc := r.Group("/charity-centers")
	{
		cc.POST("", h.CreateCharityCenter)
		cc.GET("", h.ListCharityCenters)
		cc.GET("/:id", h.GetCharityCenter)
		cc.PATCH("/:id", h.UpdateCharityCenter)
		cc.DELETE("/:id", h.DeleteCharityCenter)
	}
}

func (h *Handler) CreateServiceCenter(c *gin.Context) {
	var req model.CreateServiceCenterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.services.CreateServiceCenter(c.Request.Context(), &req, handler.FormFile(c, "licenseFile"))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetServiceCenter(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	found, err := h.services.GetServiceCenter(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListServiceCenters(c *gin.Context) {
	f := handler.BindListFilter(c)
	found, page, err := h.services.ListServiceCenters(c.Request.Context(), f)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewPageResponse(found, page))
}

func (h *Handler) UpdateServiceCenter(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	var req model.UpdateServiceCenterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	updated, err := h.services.UpdateServiceCenter(c.Request.Context(), id, &req, handler.FormFile(c, "licenseFile"))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteServiceCenter(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	if err := h.services.DeleteServiceCenter(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) CreateMedicalCenter(c *gin.Context) {
	var req model.CreateMedicalCenterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.medical.CreateMedicalCenter(c.Request.Context(), &req, handler.FormFile(c, "licenseFile"))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetMedicalCenter(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	found, err := h.medical.GetMedicalCenter(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListMedicalCenters(c *gin.Context) {
	f := handler.BindListFilter(c)
	found, page, err := h.medical.ListMedicalCenters(c.Request.Context(), f)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewPageResponse(found, page))
}

func (h *Handler) UpdateMedicalCenter(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	var req model.UpdateMedicalCenterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	updated, err := h.medical.UpdateMedicalCenter(c.Request.Context(), id, &req, handler.FormFile(c, "licenseFile"))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteMedicalCenter(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	if err := h.medical.DeleteMedicalCenter(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func charityFiles(c *gin.Context) centers.CharityFiles {
	return centers.CharityFiles{
		CharterOrLicense: handler.FormFile(c, "charterOrLicenseFile"),
		Logo:             handler.FormFile(c, "logo"),
	}
}

func (h *Handler) CreateCharityCenter(c *gin.Context) {
	var req model.CreateCharityCenterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.charity.CreateCharityCenter(c.Request.Context(), &req, charityFiles(c))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetCharityCenter(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	found, err := h.charity.GetCharityCenter(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListCharityCenters(c *gin.Context) {
	f := handler.BindListFilter(c)
	found, page, err := h.charity.ListCharityCenters(c.Request.Context(), f)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewPageResponse(found, page))
}

func (h *Handler) UpdateCharityCenter(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	var req model.UpdateCharityCenterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	updated, err := h.charity.UpdateCharityCenter(c.Request.Context(), id, &req, charityFiles(c))
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteCharityCenter(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		return
	}
	if err := h.charity.DeleteCharityCenter(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
