package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contractapp "github.com/tradedesk/backend/internal/application/contract"
	"github.com/tradedesk/backend/internal/infrastructure/pdf"
)

// ExportHandler renders contracts and release notes as PDF downloads
type ExportHandler struct {
	BaseHandler
	contractService *contractapp.ContractService
	salesRenderer   *pdf.SalesContractRenderer
	releaseRenderer *pdf.ReleaseNoteRenderer
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(contractService *contractapp.ContractService) *ExportHandler {
	return &ExportHandler{
		contractService: contractService,
		salesRenderer:   pdf.NewSalesContractRenderer(),
		releaseRenderer: pdf.NewReleaseNoteRenderer(),
	}
}

// ExportContract handles GET /export/pdf/:id
func (h *ExportHandler) ExportContract(c *gin.Context) {
	doc, ok := h.loadDocument(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.salesRenderer.Render(&buf, doc); err != nil {
		h.InternalError(c, "Failed to render contract PDF")
		return
	}

	filename := fmt.Sprintf("Contract_%s.pdf", doc.Contract.ContractNumber)
	sendPDF(c, filename, buf.Bytes())
}

// ExportReleaseNote handles GET /export/release-note/:id. The filename
// is keyed on the debit-note number, falling back to the contract
// number when no debit note has been issued.
func (h *ExportHandler) ExportReleaseNote(c *gin.Context) {
	doc, ok := h.loadDocument(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.releaseRenderer.Render(&buf, doc); err != nil {
		h.InternalError(c, "Failed to render release note PDF")
		return
	}

	key := doc.Contract.DebitNoteNumber
	if key == "" {
		key = doc.Contract.ContractNumber
	}
	sendPDF(c, fmt.Sprintf("Release_Note_%s.pdf", key), buf.Bytes())
}

func (h *ExportHandler) loadDocument(c *gin.Context) (pdf.ContractDocument, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return pdf.ContractDocument{}, false
	}

	populated, err := h.contractService.GetPopulated(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return pdf.ContractDocument{}, false
	}

	return pdf.ContractDocument{
		Contract: populated.Contract,
		Buyer:    populated.Buyer,
		Seller:   populated.Seller,
		Bank:     populated.BankDetails,
	}, true
}

func sendPDF(c *gin.Context, filename string, content []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}
