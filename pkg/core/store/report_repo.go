package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// StoredReport is a persisted report plus its identity row.
type StoredReport struct {
	ID        string                 `json:"id"`
	Report    models.FinancialReport `json:"report"`
	CreatedAt time.Time              `json:"createdAt"`
}

// ReportRepo stores generated reports as JSONB rows.
//
// Schema:
//
//	CREATE TABLE IF NOT EXISTS financial_reports (
//	  id UUID PRIMARY KEY,
//	  period_start TEXT,
//	  period_end TEXT,
//	  report_json JSONB,
//	  created_at TIMESTAMPTZ
//	);
type ReportRepo struct{}

// NewReportRepo creates a new repository instance.
func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

// Save persists a report and returns its generated ID.
func (r *ReportRepo) Save(ctx context.Context, report *models.FinancialReport) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO financial_reports (id, period_start, period_end, report_json, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = pool.Exec(ctx, query, id, report.DateRange.Start, report.DateRange.End, jsonData, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// Load retrieves one report by ID.
func (r *ReportRepo) Load(ctx context.Context, id string) (*StoredReport, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var (
		jsonData  []byte
		createdAt time.Time
	)
	query := `SELECT report_json, created_at FROM financial_reports WHERE id = $1;`
	err := pool.QueryRow(ctx, query, id).Scan(&jsonData, &createdAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("report %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	stored := &StoredReport{ID: id, CreatedAt: createdAt}
	if err := json.Unmarshal(jsonData, &stored.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return stored, nil
}

// ListRecent returns the newest report rows, without their JSON payloads.
func (r *ReportRepo) ListRecent(ctx context.Context, limit int) ([]StoredReport, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, period_start, period_end, created_at
		FROM financial_reports
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var out []StoredReport
	for rows.Next() {
		var s StoredReport
		if err := rows.Scan(&s.ID, &s.Report.DateRange.Start, &s.Report.DateRange.End, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
