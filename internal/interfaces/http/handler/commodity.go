package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/tradedesk/backend/internal/application/catalog"
)

// CommodityHandler handles commodity master-data endpoints
type CommodityHandler struct {
	BaseHandler
	commodityService *catalogapp.CommodityService
}

// NewCommodityHandler creates a new CommodityHandler
func NewCommodityHandler(commodityService *catalogapp.CommodityService) *CommodityHandler {
	return &CommodityHandler{commodityService: commodityService}
}

// Create handles POST /commodities
func (h *CommodityHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCommodityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.commodityService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /commodities/:id
func (h *CommodityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commodity ID")
		return
	}

	resp, err := h.commodityService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /commodities
func (h *CommodityHandler) List(c *gin.Context) {
	var filter catalogapp.CommodityListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, total, err := h.commodityService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update handles PUT /commodities/:id
func (h *CommodityHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commodity ID")
		return
	}

	var req catalogapp.UpdateCommodityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.commodityService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /commodities/:id (soft delete)
func (h *CommodityHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commodity ID")
		return
	}

	if err := h.commodityService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
