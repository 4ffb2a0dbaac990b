package weighing

import (
	"errors"
	"reflect"
	"testing"

	"pesagem/models"
)

func draftWithWeights(weights ...float64) models.Draft {
	return models.Draft{Record: models.ClientRecord{Weights: weights}}
}

func TestAddWeight_NormalizesComma(t *testing.T) {
	t.Parallel()

	d := models.Draft{NewWeight: "12,5"}
	got, err := Apply(d, AddWeight{Text: "12,5"})
	if err != nil {
		t.Fatalf("add weight: %v", err)
	}
	if !reflect.DeepEqual(got.Record.Weights, []float64{12.5}) {
		t.Fatalf("expected [12.5], got %v", got.Record.Weights)
	}
	if got.NewWeight != "" {
		t.Fatalf("expected cleared input buffer, got %q", got.NewWeight)
	}
}

func TestAddWeight_InvalidLeavesSequence(t *testing.T) {
	t.Parallel()

	d := draftWithWeights(1)
	got, err := Apply(d, AddWeight{Text: "abc"})
	if !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
	if !reflect.DeepEqual(got.Record.Weights, []float64{1}) {
		t.Fatalf("expected unchanged weights, got %v", got.Record.Weights)
	}
	if got.NewWeight != "abc" {
		t.Fatalf("expected typed text kept in buffer, got %q", got.NewWeight)
	}
}

func TestAddWeight_BlankIsNoop(t *testing.T) {
	t.Parallel()

	got, err := Apply(draftWithWeights(1), AddWeight{Text: "   "})
	if err != nil {
		t.Fatalf("expected blank add to be silent, got %v", err)
	}
	if len(got.Record.Weights) != 1 {
		t.Fatalf("expected unchanged weights, got %v", got.Record.Weights)
	}
}

func TestCommitEdit_ReplacesEntry(t *testing.T) {
	t.Parallel()

	d := draftWithWeights(10, 20, 30)
	d, err := Apply(d, BeginEdit{Index: 1})
	if err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if d.Edit == nil || d.Edit.Index != 1 || d.Edit.Scratch != "20" {
		t.Fatalf("unexpected edit session: %+v", d.Edit)
	}

	got, err := Apply(d, CommitEdit{Text: "25"})
	if err != nil {
		t.Fatalf("commit edit: %v", err)
	}
	if !reflect.DeepEqual(got.Record.Weights, []float64{10, 25, 30}) {
		t.Fatalf("expected [10 25 30], got %v", got.Record.Weights)
	}
	if got.Edit != nil {
		t.Fatalf("expected edit session closed, got %+v", got.Edit)
	}
}

func TestCancelEdit_LeavesEntries(t *testing.T) {
	t.Parallel()

	d, err := Apply(draftWithWeights(10, 20, 30), BeginEdit{Index: 1})
	if err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	got, err := Apply(d, CancelEdit{})
	if err != nil {
		t.Fatalf("cancel edit: %v", err)
	}
	if !reflect.DeepEqual(got.Record.Weights, []float64{10, 20, 30}) {
		t.Fatalf("expected [10 20 30], got %v", got.Record.Weights)
	}
	if got.Edit != nil {
		t.Fatalf("expected idle after cancel")
	}
}

func TestCommitEdit_InvalidKeepsSession(t *testing.T) {
	t.Parallel()

	d, _ := Apply(draftWithWeights(10, 20), BeginEdit{Index: 0})
	got, err := Apply(d, CommitEdit{Text: "dez"})
	if !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
	if got.Edit == nil || got.Edit.Index != 0 || got.Edit.Scratch != "dez" {
		t.Fatalf("expected session kept with typed text, got %+v", got.Edit)
	}
	if !reflect.DeepEqual(got.Record.Weights, []float64{10, 20}) {
		t.Fatalf("expected unchanged weights, got %v", got.Record.Weights)
	}
}

func TestCommitEdit_WithoutSessionIsNoop(t *testing.T) {
	t.Parallel()

	got, err := Apply(draftWithWeights(5), CommitEdit{Text: "9"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Record.Weights[0] != 5 {
		t.Fatalf("expected unchanged weight, got %v", got.Record.Weights)
	}
}

func TestRemoveWeight(t *testing.T) {
	t.Parallel()

	got, err := Apply(draftWithWeights(1, 2, 3), RemoveWeight{Index: 0})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !reflect.DeepEqual(got.Record.Weights, []float64{2, 3}) {
		t.Fatalf("expected [2 3], got %v", got.Record.Weights)
	}

	if _, err := Apply(draftWithWeights(1), RemoveWeight{Index: 3}); !errors.Is(err, ErrWeightIndex) {
		t.Fatalf("expected ErrWeightIndex, got %v", err)
	}
	if _, err := Apply(draftWithWeights(1), RemoveWeight{Index: -1}); !errors.Is(err, ErrWeightIndex) {
		t.Fatalf("expected ErrWeightIndex for negative index, got %v", err)
	}
}

func TestRemoveWeight_AdjustsEditSession(t *testing.T) {
	t.Parallel()

	d, _ := Apply(draftWithWeights(1, 2, 3), BeginEdit{Index: 2})
	got, err := Apply(d, RemoveWeight{Index: 0})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got.Edit == nil || got.Edit.Index != 1 {
		t.Fatalf("expected session shifted to index 1, got %+v", got.Edit)
	}

	got, err = Apply(got, RemoveWeight{Index: 1})
	if err != nil {
		t.Fatalf("remove edited: %v", err)
	}
	if got.Edit != nil {
		t.Fatalf("expected session cancelled when its entry is removed")
	}
}

func TestAddWhileEditing(t *testing.T) {
	t.Parallel()

	d, _ := Apply(draftWithWeights(1, 2), BeginEdit{Index: 1})
	d, err := Apply(d, AddWeight{Text: "3"})
	if err != nil {
		t.Fatalf("add while editing: %v", err)
	}
	if d.Edit == nil || d.Edit.Index != 1 {
		t.Fatalf("expected edit session untouched, got %+v", d.Edit)
	}
	d, err = Apply(d, CommitEdit{Text: "2,5"})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if !reflect.DeepEqual(d.Record.Weights, []float64{1, 2.5, 3}) {
		t.Fatalf("expected [1 2.5 3], got %v", d.Record.Weights)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := draftWithWeights(10, 20, 30)
	in.Edit = &models.EditSession{Index: 1, Scratch: "20"}
	if _, err := Apply(in, RemoveWeight{Index: 0}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := Apply(in, CommitEdit{Text: "99"}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if !reflect.DeepEqual(in.Record.Weights, []float64{10, 20, 30}) {
		t.Fatalf("input weights mutated: %v", in.Record.Weights)
	}
	if in.Edit.Index != 1 || in.Edit.Scratch != "20" {
		t.Fatalf("input edit session mutated: %+v", in.Edit)
	}
}

func TestSetClientAndReset(t *testing.T) {
	t.Parallel()

	d, err := Apply(models.Draft{}, SetClient{Name: "Maria", Phone: "999", Product: models.ProductRipe})
	if err != nil {
		t.Fatalf("set client: %v", err)
	}
	d, _ = Apply(d, AddWeight{Text: "1"})
	d, _ = Apply(d, BeginEdit{Index: 0})
	if d.Record.Name != "Maria" || d.Record.Product != models.ProductRipe {
		t.Fatalf("unexpected record: %+v", d.Record)
	}

	got, err := Apply(d, Reset{})
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !reflect.DeepEqual(got, models.Draft{}) {
		t.Fatalf("expected empty draft after reset, got %+v", got)
	}
}

func TestKeepInput(t *testing.T) {
	t.Parallel()

	d, err := Apply(draftWithWeights(4), KeepInput{NewWeight: "3,", Scratch: "ignored"})
	if err != nil {
		t.Fatalf("keep input: %v", err)
	}
	if d.NewWeight != "3," || d.Edit != nil {
		t.Fatalf("unexpected draft: %+v", d)
	}

	d, _ = Apply(d, BeginEdit{Index: 0})
	d, _ = Apply(d, KeepInput{NewWeight: "", Scratch: "4,2"})
	if d.Edit == nil || d.Edit.Scratch != "4,2" {
		t.Fatalf("expected scratch kept, got %+v", d.Edit)
	}
	if d.Record.Weights[0] != 4 {
		t.Fatalf("expected weights untouched, got %v", d.Record.Weights)
	}
}
