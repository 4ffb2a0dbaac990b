package weighing

import (
	"strings"

	"pesagem/models"
)

// Event is one operator action on the draft.
type Event interface {
	apply(d models.Draft) (models.Draft, error)
}

// Apply runs ev against a copy of d. The input draft is never modified; on
// error the returned draft carries only the input buffers the operator typed.
func Apply(d models.Draft, ev Event) (models.Draft, error) {
	return ev.apply(d.Clone())
}

// SetClient copies the client fields from the form.
type SetClient struct {
	Name    string
	Phone   string
	Product models.ProductType
}

func (e SetClient) apply(d models.Draft) (models.Draft, error) {
	d.Record.Name = e.Name
	d.Record.Phone = e.Phone
	d.Record.Product = e.Product
	return d, nil
}

// KeepInput records what is typed in the input boxes without acting on it.
// Scratch only applies while an edit session is open.
type KeepInput struct {
	NewWeight string
	Scratch   string
}

func (e KeepInput) apply(d models.Draft) (models.Draft, error) {
	d.NewWeight = e.NewWeight
	if d.Edit != nil {
		d.Edit.Scratch = e.Scratch
	}
	return d, nil
}

// AddWeight appends a weight typed in the add input. Blank text is ignored.
type AddWeight struct {
	Text string
}

func (e AddWeight) apply(d models.Draft) (models.Draft, error) {
	if strings.TrimSpace(e.Text) == "" {
		d.NewWeight = ""
		return d, nil
	}
	v, err := ParseWeight(e.Text)
	if err != nil {
		d.NewWeight = e.Text
		return d, err
	}
	d.Record.Weights = append(d.Record.Weights, v)
	d.NewWeight = ""
	return d, nil
}

// RemoveWeight deletes the weight at Index.
type RemoveWeight struct {
	Index int
}

func (e RemoveWeight) apply(d models.Draft) (models.Draft, error) {
	if e.Index < 0 || e.Index >= len(d.Record.Weights) {
		return d, ErrWeightIndex
	}
	d.Record.Weights = append(d.Record.Weights[:e.Index], d.Record.Weights[e.Index+1:]...)
	if d.Edit != nil {
		switch {
		case d.Edit.Index == e.Index:
			d.Edit = nil
		case d.Edit.Index > e.Index:
			d.Edit.Index--
		}
	}
	return d, nil
}

// BeginEdit opens an edit session on the weight at Index, replacing any
// session already open.
type BeginEdit struct {
	Index int
}

func (e BeginEdit) apply(d models.Draft) (models.Draft, error) {
	if e.Index < 0 || e.Index >= len(d.Record.Weights) {
		return d, ErrWeightIndex
	}
	d.Edit = &models.EditSession{
		Index:   e.Index,
		Scratch: FormatInput(d.Record.Weights[e.Index]),
	}
	return d, nil
}

// CommitEdit overwrites the edited weight with Text and closes the session.
// When Text does not parse the session stays open with the typed text.
type CommitEdit struct {
	Text string
}

func (e CommitEdit) apply(d models.Draft) (models.Draft, error) {
	if d.Edit == nil {
		return d, nil
	}
	if d.Edit.Index >= len(d.Record.Weights) {
		d.Edit = nil
		return d, ErrWeightIndex
	}
	v, err := ParseWeight(e.Text)
	if err != nil {
		d.Edit.Scratch = e.Text
		return d, err
	}
	d.Record.Weights[d.Edit.Index] = v
	d.Edit = nil
	return d, nil
}

// CancelEdit closes the session without touching the weights.
type CancelEdit struct{}

func (CancelEdit) apply(d models.Draft) (models.Draft, error) {
	d.Edit = nil
	return d, nil
}

// Reset returns the empty initial draft.
type Reset struct{}

func (Reset) apply(models.Draft) (models.Draft, error) {
	return models.Draft{}, nil
}
