package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/tradedesk/backend/internal/domain/contract"
)

// taxRate is the fixed debit-note tax applied to the contract total.
var taxRate = decimal.RequireFromString("0.0625")

// ReleaseNoteRenderer renders the combined release/debit note.
type ReleaseNoteRenderer struct {
	fontFamily string
}

// NewReleaseNoteRenderer creates a new ReleaseNoteRenderer
func NewReleaseNoteRenderer() *ReleaseNoteRenderer {
	return &ReleaseNoteRenderer{fontFamily: "Arial"}
}

// Render writes the release/debit note PDF for the given snapshot to w.
func (r *ReleaseNoteRenderer) Render(w io.Writer, doc ContractDocument) error {
	c := doc.Contract

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header
	pdf.SetFont(r.fontFamily, "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Debit note # %s", orNA(c.DebitNoteNumber)), "", 1, "R", false, 0, "")
	pdf.SetFont(r.fontFamily, "", 10)
	if c.InvoiceDate != nil {
		pdf.CellFormat(0, 5, fmt.Sprintf("Invoice Date: %s", c.InvoiceDate.Format("02 Jan 2006")), "", 1, "R", false, 0, "")
	}
	if c.DueDate != nil {
		pdf.CellFormat(0, 5, fmt.Sprintf("Due Date: %s", c.DueDate.Format("02 Jan 2006")), "", 1, "R", false, 0, "")
	}
	pdf.CellFormat(0, 5, fmt.Sprintf("Contract No: %s", c.ContractNumber), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Bill-to block
	pdf.SetFont(r.fontFamily, "B", 11)
	pdf.CellFormat(0, 6, "BILL TO:", "", 1, "L", false, 0, "")
	pdf.SetFont(r.fontFamily, "", 10)
	pdf.CellFormat(0, 5, doc.Buyer.CompanyName, "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 5, doc.Buyer.Address, "", "L", false)
	pdf.Ln(4)

	subtotal := contract.TotalAmount(c.Quantity, c.UnitPrice)
	tax := subtotal.Mul(taxRate).Round(2)
	grandTotal := subtotal.Add(tax)

	r.renderItemTable(pdf, doc, subtotal, tax)

	// Amount in words
	pdf.Ln(2)
	pdf.SetFont(r.fontFamily, "I", 9)
	words := contract.AmountInWords(grandTotal, c.Currency)
	pdf.MultiCell(0, 5, strings.ToUpper(words), "", "L", false)
	pdf.Ln(2)

	// Summary
	r.renderSummaryLine(pdf, "Subtotal", c.Currency, subtotal, false)
	r.renderSummaryLine(pdf, "Tax (6.25%)", c.Currency, tax, false)
	r.renderSummaryLine(pdf, "Total", c.Currency, grandTotal, true)
	pdf.Ln(4)

	if c.HasRelease() {
		r.renderReleaseBlock(pdf, c)
	}

	// Seller block
	pdf.SetFont(r.fontFamily, "B", 11)
	pdf.CellFormat(0, 6, "SELLER:", "", 1, "L", false, 0, "")
	pdf.SetFont(r.fontFamily, "", 10)
	pdf.CellFormat(0, 5, doc.Seller.CompanyName, "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 5, doc.Seller.Address, "", "L", false)
	pdf.Ln(3)

	// Bank block
	pdf.SetFont(r.fontFamily, "B", 11)
	pdf.CellFormat(0, 6, "PAYMENT TO:", "", 1, "L", false, 0, "")
	pdf.SetFont(r.fontFamily, "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Bank: %s", doc.Bank.BankName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Account Name: %s", doc.Bank.AccountName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Account Number: %s", doc.Bank.AccountNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("SWIFT Code: %s", doc.Bank.SwiftCode), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// renderItemTable renders the single-row contract item table.
func (r *ReleaseNoteRenderer) renderItemTable(pdf *gofpdf.Fpdf, doc ContractDocument, subtotal, tax decimal.Decimal) {
	c := doc.Contract
	widths := []float64{80, 25, 30, 30, 15}
	headers := []string{"Description", "Quantity", "Unit Price", "Amount", "Tax"}

	pdf.SetFont(r.fontFamily, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(r.fontFamily, "", 9)
	pdf.CellFormat(widths[0], 7, c.CommodityDescription, "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[1], 7, fmt.Sprintf("%s %s", formatQuantity(c.Quantity), c.Unit), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2], 7, formatAmount(c.UnitPrice), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 7, formatAmount(subtotal), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, formatAmount(tax), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
}

func (r *ReleaseNoteRenderer) renderSummaryLine(pdf *gofpdf.Fpdf, label, currency string, amount decimal.Decimal, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont(r.fontFamily, style, 10)
	pdf.CellFormat(135, 6, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 6, fmt.Sprintf("%s %s", currency, formatAmount(amount)), "", 1, "R", false, 0, "")
}

// renderReleaseBlock renders release tracking details. Only printed
// when a release mechanism has been chosen.
func (r *ReleaseNoteRenderer) renderReleaseBlock(pdf *gofpdf.Fpdf, c *contract.Contract) {
	pdf.SetFont(r.fontFamily, "B", 11)
	pdf.CellFormat(0, 6, "RELEASE INFORMATION", "", 1, "L", false, 0, "")
	pdf.SetFont(r.fontFamily, "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Release Type: %s", c.ReleaseType.Label()), "", 1, "L", false, 0, "")
	if c.ReleaseStatus != contract.ReleaseStatusNotApplicable {
		pdf.CellFormat(0, 5, fmt.Sprintf("Release Status: %s", c.ReleaseStatus), "", 1, "L", false, 0, "")
	}
	if c.ReleaseDate != nil {
		pdf.CellFormat(0, 5, fmt.Sprintf("Release Date: %s", c.ReleaseDate.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	}
	if c.ReleaseRemarks != "" {
		pdf.MultiCell(0, 5, fmt.Sprintf("Remarks: %s", c.ReleaseRemarks), "", "L", false)
	}
	pdf.Ln(3)
}
