package models

import (
	"strings"
	"time"
)

// ProductType is the kind of coffee being weighed. The zero value means unset.
type ProductType string

const (
	ProductDry   ProductType = "dry"
	ProductRipe  ProductType = "ripe"
	ProductClean ProductType = "clean"
)

// ProductTypes lists the selectable products in display order.
var ProductTypes = []ProductType{ProductDry, ProductRipe, ProductClean}

var productLabels = map[ProductType]string{
	ProductDry:   "Café seco",
	ProductRipe:  "Café maduro",
	ProductClean: "Café limpo",
}

// Label returns the pt-BR label shown on the form and on receipts.
func (p ProductType) Label() string {
	return productLabels[p]
}

// IsSet reports whether p is one of the known products.
func (p ProductType) IsSet() bool {
	_, ok := productLabels[p]
	return ok
}

// ParseProductType accepts either a product key or its label.
func ParseProductType(v string) (ProductType, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	for _, p := range ProductTypes {
		if string(p) == v || p.Label() == v {
			return p, true
		}
	}
	return "", false
}

// ClientRecord is the client, product and weights currently being entered.
type ClientRecord struct {
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
	Product ProductType `json:"product"`
	Weights []float64   `json:"weights"`
}

// EditSession is an in-place edit of one weight entry.
type EditSession struct {
	Index   int
	Scratch string
}

// Draft is the whole form state owned by one browser. Edit is nil while no
// weight entry is being edited.
type Draft struct {
	Record    ClientRecord
	Edit      *EditSession
	NewWeight string
}

// Editing reports whether the weight at index is in an active edit session.
func (d Draft) Editing(index int) bool {
	return d.Edit != nil && d.Edit.Index == index
}

// Clone returns a copy that shares no mutable memory with d.
func (d Draft) Clone() Draft {
	out := d
	if d.Record.Weights != nil {
		out.Record.Weights = append([]float64(nil), d.Record.Weights...)
	}
	if d.Edit != nil {
		edit := *d.Edit
		out.Edit = &edit
	}
	return out
}

// Export is a generated receipt waiting to be downloaded.
type Export struct {
	FileName  string
	PDF       []byte
	CreatedAt time.Time
}
