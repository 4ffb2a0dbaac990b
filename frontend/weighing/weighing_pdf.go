package weighing

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfLeftX        = 10.0
	pdfValueX       = 50.0
	pdfRowHeight    = 6.0
	pdfFirstRowY    = 56.0
	pdfFooterY      = 120.0
	pdfContinueY    = 20.0
	pdfBottomY      = 277.0
	pdfFooterHeight = 30.0
	pdfTextWidth    = 190.0
)

type pdfPos struct {
	Page int
	Y    float64
}

type pdfLayout struct {
	Rows   []pdfPos
	Total  pdfPos
	Footer pdfPos
}

// layoutReceipt places weight rows at a fixed pitch below the header. Rows
// continue on a new page when they reach the bottom margin, and the footer
// is pushed below the total when the rows reach it.
func layoutReceipt(rows int) pdfLayout {
	var l pdfLayout
	page := 1
	y := pdfFirstRowY
	for i := 0; i < rows; i++ {
		if y > pdfBottomY {
			page++
			y = pdfContinueY
		}
		l.Rows = append(l.Rows, pdfPos{Page: page, Y: y})
		y += pdfRowHeight
	}

	totalY := y + pdfRowHeight
	if totalY > pdfBottomY {
		page++
		totalY = pdfContinueY
	}
	l.Total = pdfPos{Page: page, Y: totalY}

	footerY := pdfFooterY
	if page > 1 {
		footerY = pdfContinueY
	}
	if minY := totalY + pdfRowHeight; footerY < minY {
		footerY = minY
	}
	if footerY+pdfFooterHeight > pdfBottomY {
		page++
		footerY = pdfContinueY
	}
	l.Footer = pdfPos{Page: page, Y: footerY}
	return l
}

// RenderReceiptPDF renders the saved receipt.
func RenderReceiptPDF(r Receipt) ([]byte, error) {
	pdf := newReceiptPDF(r)
	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return out.Bytes(), nil
}

func newReceiptPDF(r Receipt) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	layout := layoutReceipt(len(r.Lines))
	page := 1
	pdf.AddPage()
	gotoPage := func(p int) {
		for page < p {
			pdf.AddPage()
			page++
		}
		pdf.SetFont("Helvetica", "", 10)
	}

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pdfLeftX, 20, tr("Informações do Cliente"))

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(pdfLeftX, 30, tr("Nome: "+r.ClientName))
	pdf.Text(pdfLeftX, 36, tr("Telefone: "+r.Phone))
	pdf.Text(pdfLeftX, 42, tr("Tipo de Produto: "+r.Product))
	pdf.Text(pdfLeftX, 50, tr("Pesos:"))

	for i, line := range r.Lines {
		pos := layout.Rows[i]
		gotoPage(pos.Page)
		pdf.Text(pdfLeftX, pos.Y, tr(line.Label))
		pdf.Text(pdfValueX, pos.Y, tr(line.Value))
	}

	gotoPage(layout.Total.Page)
	pdf.Text(pdfLeftX, layout.Total.Y, tr("Total (KG): "+r.Total))

	gotoPage(layout.Footer.Page)
	y := layout.Footer.Y
	pdf.Text(pdfLeftX, y, tr("Todos os direitos reservados."))
	pdf.Text(pdfLeftX, y+pdfRowHeight, tr(r.Business.Name))
	pdf.Text(pdfLeftX, y+2*pdfRowHeight, tr(r.Business.Phone))
	// MultiCell positions by the cell top, Text by the baseline.
	pdf.SetXY(pdfLeftX, y+3*pdfRowHeight-3)
	pdf.MultiCell(pdfTextWidth, 4.5, tr(r.Business.Disclaimer), "", "L", false)
	return pdf
}
