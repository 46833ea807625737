package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/MKhiriev/go-punch-tracker/internal/adapter"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// punchRecord is one CSV row of the punch export.
type punchRecord struct {
	ID        int64   `csv:"id"`
	SessionID int64   `csv:"session_id"`
	PunchType string  `csv:"punch_type"`
	Speed     float64 `csv:"speed"`
	Count     int     `csv:"count"`
	Timestamp string  `csv:"timestamp"`
	Notes     string  `csv:"notes"`
}

type exportService struct {
	api adapter.TrainingAPI

	logger *logger.Logger
}

func NewExportService(api adapter.TrainingAPI, logger *logger.Logger) ExportService {
	return &exportService{api: api, logger: logger}
}

// PunchesCSV implements [ExportService]. Timestamps are written in RFC 3339
// UTC.
func (e *exportService) PunchesCSV(ctx context.Context, sessionID int64, w io.Writer) error {
	punches, err := e.api.SessionPunches(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("error fetching punches: %w", err)
	}

	records := make([]*punchRecord, 0, len(punches))
	for _, p := range punches {
		records = append(records, newPunchRecord(p))
	}

	if err = gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}

	e.logger.Debug().Int64("session_id", sessionID).Int("rows", len(records)).Msg("punches exported")
	return nil
}

func newPunchRecord(p models.Punch) *punchRecord {
	return &punchRecord{
		ID:        p.ID,
		SessionID: p.SessionID,
		PunchType: p.PunchType,
		Speed:     p.Speed,
		Count:     p.Count,
		Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
		Notes:     p.Notes,
	}
}
