package reports

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"sampark/frontend/shared/pdfkit"
	"sampark/models"
)

type column struct {
	title string
	width float64
	align string
	value func(models.Project) string
}

var projectColumns = []column{
	{"ID", 14, "L", func(p models.Project) string { return p.ID }},
	{"Title", 78, "L", func(p models.Project) string { return p.Title }},
	{"Component", 28, "L", func(p models.Project) string { return string(p.Component) }},
	{"State", 36, "L", func(p models.Project) string { return pdfkit.OrDash(p.StateName) }},
	{"District", 32, "L", func(p models.Project) string { return pdfkit.OrDash(p.DistrictName) }},
	{"Status", 30, "L", func(p models.Project) string { return string(p.CurrentStatus) }},
	{"Progress", 20, "R", func(p models.Project) string { return fmt.Sprintf("%d%%", p.ProgressPercent) }},
	{"Budget", 39, "R", func(p models.Project) string { return pdfkit.Rupees(p.BudgetAllocated) }},
}

func renderProjectsPDF(s Summary, projects []models.Project, printedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("SAMPARK 360 Project Report", false)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "SAMPARK 360 Project Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated "+printedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	t := s.Totals
	lines := [][2]string{
		{"Total projects", fmt.Sprint(t.TotalProjects)},
		{"Total budget", pdfkit.Rupees(t.TotalBudget)},
		{"Funds released", pdfkit.Rupees(t.TotalReleased)},
		{"Funds utilised", pdfkit.Rupees(t.TotalUtilized)},
		{"Average progress", fmt.Sprintf("%.1f%%", t.AvgProgress)},
		{"On time", fmt.Sprintf("%d%%", t.OnTimePercent)},
	}
	for _, l := range lines {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 7, l[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, l[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Projects by status", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, sc := range s.ProjectStatus {
		pdf.CellFormat(60, 6, sc.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprint(sc.Projects), "", 1, "R", false, 0, "")
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Projects", "", 1, "L", false, 0, "")
	writeHeader(pdf)
	pdf.SetFont("Helvetica", "", 9)
	for _, p := range projects {
		for i, c := range projectColumns {
			ln := 0
			if i == len(projectColumns)-1 {
				ln = 1
			}
			text := c.value(p)
			pdf.SetFont("Helvetica", "", pdfkit.FitFontSize(pdf, "Helvetica", "", 9, 6, text, c.width-2))
			pdf.CellFormat(c.width, 7, text, "1", ln, c.align, false, 0, "")
		}
	}
	return pdfkit.Output(pdf)
}

func writeHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 236, 245)
	for i, c := range projectColumns {
		ln := 0
		if i == len(projectColumns)-1 {
			ln = 1
		}
		pdf.CellFormat(c.width, 8, c.title, "1", ln, "C", true, 0, "")
	}
}
