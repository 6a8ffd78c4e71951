package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contractapp "github.com/tradedesk/backend/internal/application/contract"
)

// ContractHandler handles contract endpoints
type ContractHandler struct {
	BaseHandler
	contractService *contractapp.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *contractapp.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// Create handles POST /contracts
func (h *ContractHandler) Create(c *gin.Context) {
	var req contractapp.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contractService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /contracts/:id, returning the contract with its
// references expanded
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	resp, err := h.contractService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /contracts
func (h *ContractHandler) List(c *gin.Context) {
	var filter contractapp.ContractListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, total, err := h.contractService.List(c.Request.Context(), filter)
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

// Search handles GET /contracts/search?query=. Returns a bare array,
// no pagination meta.
func (h *ContractHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		h.BadRequest(c, "Query parameter is required")
		return
	}

	responses, err := h.contractService.Search(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}

// Calculate handles POST /contracts/calculate, the financial preview
func (h *ContractHandler) Calculate(c *gin.Context) {
	var req contractapp.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.Success(c, h.contractService.Calculate(c.Request.Context(), req))
}

// Update handles PUT /contracts/:id
func (h *ContractHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	var req contractapp.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contractService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /contracts/:id (hard delete)
func (h *ContractHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
