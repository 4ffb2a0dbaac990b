package weighing

import (
	weighinfra "pesagem/infrastructure/weighing"
	"pesagem/models"
)

type ProductOption struct {
	Value    string
	Label    string
	Selected bool
}

type WeightRow struct {
	Index   int
	Value   string
	Editing bool
	Scratch string
}

type PageData struct {
	BusinessName string
	Name         string
	Phone        string
	Products     []ProductOption
	NewWeight    string
	Rows         []WeightRow
	Total        string
	Editing      bool
	Message      string
	Status       string
	DownloadURL  string
}

// NewPageData builds the form view of a draft.
func NewPageData(d models.Draft, businessName string) PageData {
	data := PageData{
		BusinessName: businessName,
		Name:         d.Record.Name,
		Phone:        d.Record.Phone,
		NewWeight:    d.NewWeight,
		Total:        weighinfra.FormatKG(weighinfra.Sum(d.Record.Weights)),
		Editing:      d.Edit != nil,
	}
	for _, p := range models.ProductTypes {
		data.Products = append(data.Products, ProductOption{
			Value:    string(p),
			Label:    p.Label(),
			Selected: p == d.Record.Product,
		})
	}
	for i, w := range d.Record.Weights {
		row := WeightRow{Index: i, Value: weighinfra.FormatKG(w)}
		if d.Editing(i) {
			row.Editing = true
			row.Scratch = d.Edit.Scratch
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}
