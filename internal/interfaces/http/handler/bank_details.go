package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	billingapp "github.com/tradedesk/backend/internal/application/billing"
)

// BankDetailsHandler handles seller bank-account endpoints. The route
// GET /bank-details/default is registered before the :id route so the
// literal segment is never parsed as an ID.
type BankDetailsHandler struct {
	BaseHandler
	bankService *billingapp.BankDetailsService
}

// NewBankDetailsHandler creates a new BankDetailsHandler
func NewBankDetailsHandler(bankService *billingapp.BankDetailsService) *BankDetailsHandler {
	return &BankDetailsHandler{bankService: bankService}
}

// Create handles POST /bank-details
func (h *BankDetailsHandler) Create(c *gin.Context) {
	var req billingapp.CreateBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.bankService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /bank-details/:id
func (h *BankDetailsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid bank details ID")
		return
	}

	resp, err := h.bankService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetDefault handles GET /bank-details/default
func (h *BankDetailsHandler) GetDefault(c *gin.Context) {
	resp, err := h.bankService.GetDefault(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /bank-details
func (h *BankDetailsHandler) List(c *gin.Context) {
	var filter billingapp.BankDetailsListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, total, err := h.bankService.List(c.Request.Context(), filter)
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

// Update handles PUT /bank-details/:id
func (h *BankDetailsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid bank details ID")
		return
	}

	var req billingapp.UpdateBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.bankService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /bank-details/:id (soft delete, clears default)
func (h *BankDetailsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid bank details ID")
		return
	}

	if err := h.bankService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
