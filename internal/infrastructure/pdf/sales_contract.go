package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// SalesContractRenderer renders the printable sales contract.
type SalesContractRenderer struct {
	fontFamily string
}

// NewSalesContractRenderer creates a new SalesContractRenderer
func NewSalesContractRenderer() *SalesContractRenderer {
	return &SalesContractRenderer{fontFamily: "Arial"}
}

// Render writes the sales contract PDF for the given snapshot to w.
func (r *SalesContractRenderer) Render(w io.Writer, doc ContractDocument) error {
	c := doc.Contract

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont(r.fontFamily, "B", 16)
	pdf.CellFormat(0, 10, "SALES CONTRACT", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(r.fontFamily, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Contract No: %s", c.ContractNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", c.ContractDate.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	r.renderPartyBlock(pdf, "SELLER", doc.Seller.CompanyName, doc.Seller.Address, doc.Seller.Email, doc.Seller.Phone)
	r.renderPartyBlock(pdf, "BUYER", doc.Buyer.CompanyName, doc.Buyer.Address, doc.Buyer.Email, doc.Buyer.Phone)

	// Article 1
	r.renderHeading(pdf, "ARTICLE 1: COMMODITY, QUALITY & QUANTITY")
	r.renderLabeled(pdf, "1.1 Commodity", c.CommodityDescription)

	quantity := fmt.Sprintf("%s %s", formatQuantity(c.Quantity), c.Unit)
	if !c.Tolerance.IsZero() {
		quantity += fmt.Sprintf(" (+/- %s%%)", formatQuantity(c.Tolerance))
	}
	r.renderLabeled(pdf, "1.2 Quantity", quantity)
	if !c.Tolerance.IsZero() {
		pdf.SetFont(r.fontFamily, "I", 9)
		rangeLine := fmt.Sprintf("Quantity range: %s - %s %s",
			formatQuantity(c.MinQuantity), formatQuantity(c.MaxQuantity), c.Unit)
		pdf.CellFormat(0, 5, rangeLine, "", 1, "L", false, 0, "")
	}
	if c.Origin != "" {
		r.renderLabeled(pdf, "1.3 Origin", c.Origin)
	}
	r.renderLabeled(pdf, "1.4 Packing", c.Packing)
	if c.QualitySpec != "" {
		r.renderLabeled(pdf, "1.5 Quality Specification", c.QualitySpec)
	}
	pdf.Ln(3)

	// Article 2
	r.renderHeading(pdf, "ARTICLE 2: PRICE")
	r.renderLabeled(pdf, "2.1 Unit Price",
		fmt.Sprintf("%s %s per %s", c.Currency, formatAmount(c.UnitPrice), c.Unit))
	r.renderLabeled(pdf, "2.2 Total Amount",
		fmt.Sprintf("%s %s", c.Currency, formatAmount(c.TotalAmount)))
	if c.TotalAmountText != "" {
		pdf.SetFont(r.fontFamily, "I", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Say: %s", c.TotalAmountText), "", 1, "L", false, 0, "")
	}
	if !c.Tolerance.IsZero() {
		pdf.SetFont(r.fontFamily, "I", 9)
		amountRange := fmt.Sprintf("Amount range: %s %s - %s %s",
			c.Currency, formatAmount(c.MinTotalAmount), c.Currency, formatAmount(c.MaxTotalAmount))
		pdf.CellFormat(0, 5, amountRange, "", 1, "L", false, 0, "")
	}
	r.renderLabeled(pdf, "2.3 Price Terms", fmt.Sprintf("%s %s", c.Incoterm, c.PortLocation))
	pdf.Ln(3)

	// Article 3
	r.renderHeading(pdf, "ARTICLE 3: PAYMENT")
	pdf.SetFont(r.fontFamily, "", 10)
	pdf.MultiCell(0, 5, c.PaymentTermText, "", "L", false)
	pdf.Ln(2)

	// Bank details
	r.renderHeading(pdf, "SELLER'S BANK DETAILS")
	pdf.SetFont(r.fontFamily, "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Bank: %s", doc.Bank.BankName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Account Name: %s", doc.Bank.AccountName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Account Number: %s", doc.Bank.AccountNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("SWIFT Code: %s", doc.Bank.SwiftCode), "", 1, "L", false, 0, "")
	if doc.Bank.BankAddress != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("Bank Address: %s", doc.Bank.BankAddress), "", 1, "L", false, 0, "")
	}
	if doc.Bank.IBAN != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("IBAN: %s", doc.Bank.IBAN), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// Article 4 (optional)
	if c.ShipmentPeriod != "" {
		r.renderHeading(pdf, "ARTICLE 4: SHIPMENT")
		pdf.SetFont(r.fontFamily, "", 10)
		pdf.MultiCell(0, 5, c.ShipmentPeriod, "", "L", false)
		pdf.Ln(2)
	}

	if c.AdditionalTerms != "" {
		r.renderHeading(pdf, "ADDITIONAL TERMS & CONDITIONS")
		pdf.SetFont(r.fontFamily, "", 10)
		pdf.MultiCell(0, 5, c.AdditionalTerms, "", "L", false)
		pdf.Ln(2)
	}

	r.renderSignatures(pdf, doc)

	return pdf.Output(w)
}

// renderPartyBlock renders a SELLER/BUYER identification block.
// Email and phone always print, with N/A when missing.
func (r *SalesContractRenderer) renderPartyBlock(pdf *gofpdf.Fpdf, role, name, address, email, phone string) {
	pdf.SetFont(r.fontFamily, "B", 11)
	pdf.CellFormat(0, 6, role+":", "", 1, "L", false, 0, "")
	pdf.SetFont(r.fontFamily, "", 10)
	pdf.CellFormat(0, 5, name, "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 5, address, "", "L", false)
	pdf.CellFormat(0, 5, fmt.Sprintf("Email: %s    Phone: %s", orNA(email), orNA(phone)), "", 1, "L", false, 0, "")
	pdf.Ln(3)
}

func (r *SalesContractRenderer) renderHeading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(r.fontFamily, "B", 11)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
}

func (r *SalesContractRenderer) renderLabeled(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont(r.fontFamily, "B", 10)
	pdf.CellFormat(50, 5, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont(r.fontFamily, "", 10)
	pdf.MultiCell(0, 5, value, "", "L", false)
}

// renderSignatures lays out the two-column signature block.
func (r *SalesContractRenderer) renderSignatures(pdf *gofpdf.Fpdf, doc ContractDocument) {
	pdf.Ln(12)
	colWidth := 90.0
	line := strings.Repeat("_", 30)

	pdf.SetFont(r.fontFamily, "B", 10)
	pdf.CellFormat(colWidth, 6, "FOR SELLER", "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth, 6, "FOR BUYER", "", 1, "L", false, 0, "")

	pdf.Ln(14)
	pdf.SetFont(r.fontFamily, "", 10)
	pdf.CellFormat(colWidth, 5, line, "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth, 5, line, "", 1, "L", false, 0, "")
	pdf.CellFormat(colWidth, 5, doc.Seller.CompanyName, "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth, 5, doc.Buyer.CompanyName, "", 1, "L", false, 0, "")
}
