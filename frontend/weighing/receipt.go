package weighing

import (
	"fmt"
	"strings"

	"pesagem/infrastructure/config"
	weighinfra "pesagem/infrastructure/weighing"
	"pesagem/models"
)

// ReceiptLine is one weight row as shown on both receipts.
type ReceiptLine struct {
	Label string
	Value string
}

// Receipt holds every string printed on the PDF and the print page, built
// once from the record so both outputs show the same figures.
type Receipt struct {
	ClientName string
	Phone      string
	Product    string
	Lines      []ReceiptLine
	Total      string
	Business   config.Business
}

// BuildReceipt formats record for export. It does not modify record.
func BuildReceipt(record models.ClientRecord, business config.Business) Receipt {
	lines := make([]ReceiptLine, 0, len(record.Weights))
	for i, w := range record.Weights {
		lines = append(lines, ReceiptLine{
			Label: fmt.Sprintf("Peso %d (KG):", i+1),
			Value: weighinfra.FormatKG(w),
		})
	}
	return Receipt{
		ClientName: strings.TrimSpace(record.Name),
		Phone:      strings.TrimSpace(record.Phone),
		Product:    record.Product.Label(),
		Lines:      lines,
		Total:      weighinfra.FormatKG(weighinfra.Sum(record.Weights)),
		Business:   business,
	}
}

// FileName is the name the saved PDF is offered under.
func (r Receipt) FileName() string {
	return r.ClientName + "_salvo.pdf"
}

// PrintTitle is the document title of the print page.
func (r Receipt) PrintTitle() string {
	return r.ClientName + "_impresso"
}
