package funds

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"sampark/frontend/shared/pdfkit"
)

const dateLayout = "02/01/2006"

func renderSlipPDF(data SlipData) ([]byte, error) {
	tx := data.Transaction
	code := BarcodeValue(tx)
	barcodePNG, err := pdfkit.Code128PNG(code, 1200, 240)
	if err != nil {
		return nil, fmt.Errorf("render barcode %q: %w", code, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fund Release Slip "+code, false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	margin := 15.0
	contentW := pageW - 2*margin

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "SAMPARK 360", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(0, 8, "Fund Release Slip", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	titleFont := pdfkit.FitFontSize(pdf, "Helvetica", "B", 18, 10, pdfkit.OrDash(tx.ProjectTitle), contentW)
	pdf.SetFont("Helvetica", "B", titleFont)
	pdf.CellFormat(0, 10, pdfkit.OrDash(tx.ProjectTitle), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	rows := [][2]string{
		{"Transaction", tx.ID},
		{"Project", tx.ProjectID},
		{"Reference No", pdfkit.OrDash(tx.ReferenceNo)},
		{"Type", pdfkit.OrDash(tx.TransactionType)},
		{"Purpose", pdfkit.OrDash(tx.Purpose)},
		{"Amount", pdfkit.Rupees(tx.Amount)},
		{"From / To", pdfkit.OrDash(tx.FromEntity) + " -> " + pdfkit.OrDash(tx.ToEntity)},
		{"Status", string(tx.Status)},
		{"Approved By", pdfkit.OrDash(tx.ApprovedByName)},
		{"Comments", pdfkit.OrDash(tx.Comments)},
	}
	if !tx.TransactionDate.IsZero() {
		rows = append(rows, [2]string{"Date", tx.TransactionDate.Format(dateLayout)})
	}
	labelW := 45.0
	pdf.SetLineWidth(0.2)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(labelW, 8, row[0], "1", 0, "L", false, 0, "")
		size := pdfkit.FitFontSize(pdf, "Helvetica", "", 11, 7, row[1], contentW-labelW-2)
		pdf.SetFont("Helvetica", "", size)
		pdf.CellFormat(contentW-labelW, 8, row[1], "1", 1, "L", false, 0, "")
	}

	if len(tx.LedgerEntries) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Ledger", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, e := range tx.LedgerEntries {
			pdf.CellFormat(30, 7, e.Date.Format(dateLayout), "B", 0, "L", false, 0, "")
			pdf.CellFormat(contentW-70, 7, e.Description, "B", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, pdfkit.Rupees(e.Amount), "B", 1, "R", false, 0, "")
		}
	}

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := "slip-barcode-" + tx.ID
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	imgW, imgH := 140.0, 28.0
	y := 225.0
	pdf.ImageOptions(imageName, (pageW-imgW)/2, y, imgW, imgH, false, opt, 0, "")
	pdf.SetY(y + imgH + 2)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, code, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, fmt.Sprintf("Printed %s by %s", data.PrintedAt.Format(dateLayout), pdfkit.OrDash(data.PrintedBy)), "", 1, "C", false, 0, "")

	return pdfkit.Output(pdf)
}
