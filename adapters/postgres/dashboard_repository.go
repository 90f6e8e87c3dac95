// Package postgres persists dashboard layouts. Only chart-config lists are
// stored; datasets themselves never touch the database.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"govista/domain/core"
	"govista/domain/dataset"
)

// DashboardRepository handles saved dashboard layouts
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// EnsureSchema creates the dashboards table if it does not exist
func (r *DashboardRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS dashboards (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			data_name TEXT NOT NULL DEFAULT '',
			elements JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create dashboards table: %w", err)
	}
	return nil
}

// dashboardRecord is the row shape for sqlx scanning
type dashboardRecord struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	DataName  string    `db:"data_name"`
	Elements  []byte    `db:"elements"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Save inserts or updates a dashboard layout
func (r *DashboardRepository) Save(ctx context.Context, dashboard *dataset.Dashboard) error {
	elementsJSON, err := json.Marshal(dashboard.Elements)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard elements: %w", err)
	}

	query := `
		INSERT INTO dashboards (id, name, data_name, elements, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			data_name = EXCLUDED.data_name,
			elements = EXCLUDED.elements,
			updated_at = now()`

	_, err = r.db.ExecContext(ctx, query,
		dashboard.ID.String(),
		dashboard.Name,
		dashboard.DataName,
		elementsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save dashboard: %w", err)
	}
	return nil
}

// Get loads one dashboard by ID; sql.ErrNoRows maps to nil, nil
func (r *DashboardRepository) Get(ctx context.Context, id core.DashboardID) (*dataset.Dashboard, error) {
	var record dashboardRecord
	query := `SELECT id, name, data_name, elements, updated_at FROM dashboards WHERE id = $1`
	if err := r.db.GetContext(ctx, &record, query, id.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}
	return record.toDomain()
}

// List returns all saved dashboards, most recently updated first
func (r *DashboardRepository) List(ctx context.Context) ([]dataset.Dashboard, error) {
	var records []dashboardRecord
	query := `SELECT id, name, data_name, elements, updated_at FROM dashboards ORDER BY updated_at DESC`
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}

	dashboards := make([]dataset.Dashboard, 0, len(records))
	for _, record := range records {
		dashboard, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		dashboards = append(dashboards, *dashboard)
	}
	return dashboards, nil
}

// Delete removes a dashboard by ID
func (r *DashboardRepository) Delete(ctx context.Context, id core.DashboardID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dashboards WHERE id = $1`, id.String()); err != nil {
		return fmt.Errorf("failed to delete dashboard: %w", err)
	}
	return nil
}

func (record dashboardRecord) toDomain() (*dataset.Dashboard, error) {
	var elements []dataset.DashboardElement
	if err := json.Unmarshal(record.Elements, &elements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard elements: %w", err)
	}
	return &dataset.Dashboard{
		ID:        core.DashboardID(record.ID),
		Name:      record.Name,
		DataName:  record.DataName,
		Elements:  elements,
		UpdatedAt: core.NewTimestamp(record.UpdatedAt),
	}, nil
}
