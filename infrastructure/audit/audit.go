package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"

	"pesagem/models"
)

const (
	ActionReceiptSaved   = "receipt_saved"
	ActionReceiptPrinted = "receipt_printed"
)

// Service writes one structured log record per finished receipt.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

func (s *Service) Write(ctx context.Context, action string, record models.ClientRecord, attrs ...slog.Attr) {
	recordJSON, err := marshal(record)
	if err != nil {
		s.logger.ErrorContext(ctx, "audit marshal failed", slog.String("action", action), slog.Any("err", err))
		return
	}
	all := []slog.Attr{
		slog.String("action", action),
		slog.String("request_id", middleware.GetReqID(ctx)),
		slog.Int("weights", len(record.Weights)),
		slog.String("record", recordJSON),
	}
	all = append(all, attrs...)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "audit", all...)
}

func marshal(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
