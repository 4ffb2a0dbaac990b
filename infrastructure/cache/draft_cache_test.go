package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"pesagem/models"
)

func TestDraftCache_UpdateStoresResult(t *testing.T) {
	t.Parallel()

	c := NewDraftCache()
	got, err := c.Update("tok", func(d models.Draft) (models.Draft, error) {
		d.Record.Name = "Maria"
		d.Record.Weights = append(d.Record.Weights, 1.5)
		return d, nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Record.Name != "Maria" {
		t.Fatalf("expected returned draft, got %+v", got)
	}
	stored := c.Get("tok")
	if stored.Record.Name != "Maria" || len(stored.Record.Weights) != 1 {
		t.Fatalf("expected stored draft, got %+v", stored)
	}
	if empty := c.Get("other"); empty.Record.Name != "" || len(empty.Record.Weights) != 0 {
		t.Fatalf("expected empty draft for unknown token, got %+v", empty)
	}
}

func TestDraftCache_UpdateKeepsResultOnError(t *testing.T) {
	t.Parallel()

	c := NewDraftCache()
	boom := errors.New("boom")
	_, err := c.Update("tok", func(d models.Draft) (models.Draft, error) {
		d.NewWeight = "abc"
		return d, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got := c.Get("tok"); got.NewWeight != "abc" {
		t.Fatalf("expected typed input kept, got %q", got.NewWeight)
	}
}

func TestDraftCache_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	c := NewDraftCache()
	_, _ = c.Update("tok", func(d models.Draft) (models.Draft, error) {
		d.Record.Weights = []float64{1, 2}
		return d, nil
	})
	got := c.Get("tok")
	got.Record.Weights[0] = 99
	if again := c.Get("tok"); again.Record.Weights[0] != 1 {
		t.Fatalf("expected cache isolated from caller mutation, got %v", again.Record.Weights)
	}
}

func TestDraftCache_ConcurrentUpdatesSerialize(t *testing.T) {
	t.Parallel()

	c := NewDraftCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Update("tok", func(d models.Draft) (models.Draft, error) {
				d.Record.Weights = append(d.Record.Weights, 1)
				return d, nil
			})
		}()
	}
	wg.Wait()
	if got := len(c.Get("tok").Record.Weights); got != 50 {
		t.Fatalf("expected 50 weights, got %d", got)
	}
}

func TestDraftCache_SweepsIdleDrafts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	c := NewDraftCache()
	c.now = func() time.Time { return now }
	_, _ = c.Update("old", func(d models.Draft) (models.Draft, error) { return d, nil })

	now = now.Add(DraftIdleTTL + time.Minute)
	_, _ = c.Update("new", func(d models.Draft) (models.Draft, error) { return d, nil })
	if c.Len() != 1 {
		t.Fatalf("expected idle draft swept, have %d drafts", c.Len())
	}
}
