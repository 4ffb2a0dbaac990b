package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"pesagem/models"
)

func TestWrite_LogsRecord(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService(slog.New(slog.NewJSONHandler(&buf, nil)))

	svc.Write(context.Background(), ActionReceiptSaved, models.ClientRecord{
		Name:    "Maria",
		Product: models.ProductDry,
		Weights: []float64{1.5, 2.25},
	}, slog.String("file", "Maria_salvo.pdf"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "audit" || entry["action"] != ActionReceiptSaved || entry["file"] != "Maria_salvo.pdf" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["weights"] != float64(2) {
		t.Fatalf("expected weight count 2, got %v", entry["weights"])
	}
	var record models.ClientRecord
	if err := json.Unmarshal([]byte(entry["record"].(string)), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.Name != "Maria" || len(record.Weights) != 2 {
		t.Fatalf("unexpected record %+v", record)
	}
}
