package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	billingapp "github.com/tradedesk/backend/internal/application/billing"
)

// PaymentTermHandler handles payment-term master-data endpoints
type PaymentTermHandler struct {
	BaseHandler
	termService *billingapp.PaymentTermService
}

// NewPaymentTermHandler creates a new PaymentTermHandler
func NewPaymentTermHandler(termService *billingapp.PaymentTermService) *PaymentTermHandler {
	return &PaymentTermHandler{termService: termService}
}

// Create handles POST /payment-terms
func (h *PaymentTermHandler) Create(c *gin.Context) {
	var req billingapp.CreatePaymentTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.termService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /payment-terms/:id
func (h *PaymentTermHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment term ID")
		return
	}

	resp, err := h.termService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /payment-terms
func (h *PaymentTermHandler) List(c *gin.Context) {
	var filter billingapp.PaymentTermListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, total, err := h.termService.List(c.Request.Context(), filter)
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

// Update handles PUT /payment-terms/:id
func (h *PaymentTermHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment term ID")
		return
	}

	var req billingapp.UpdatePaymentTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.termService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /payment-terms/:id (soft delete)
func (h *PaymentTermHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment term ID")
		return
	}

	if err := h.termService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
