package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-salud/internal/domain/entity"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo persiste el log de transiciones de estado (append-only).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

func (r *AlertRepo) Create(ctx context.Context, alert *entity.Alert) error {
	query := `
		INSERT INTO stock_alerts (id, organization_id, location_id, item_id, prev_status, new_status, days_of_supply, notified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		alert.ID, alert.OrganizationID, alert.LocationID, alert.ItemID,
		alert.PrevStatus, alert.NewStatus, alert.DaysOfSupply, alert.Notified, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

// GetLastStatuses devuelve el new_status de la transición más reciente por (sede, insumo).
func (r *AlertRepo) GetLastStatuses(ctx context.Context, organizationID string) ([]repository.LastStatusRow, error) {
	const query = `
		SELECT DISTINCT ON (location_id, item_id)
			location_id, item_id, new_status
		FROM stock_alerts
		WHERE organization_id = $1
		ORDER BY location_id, item_id, created_at DESC`

	rows, err := r.q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("alerts.GetLastStatuses: %w", err)
	}
	defer rows.Close()

	var results []repository.LastStatusRow
	for rows.Next() {
		var row repository.LastStatusRow
		if err := rows.Scan(&row.LocationID, &row.ItemID, &row.Status); err != nil {
			return nil, fmt.Errorf("scan last status: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *AlertRepo) ListRecent(ctx context.Context, organizationID string, limit int) ([]*entity.Alert, error) {
	const query = `
		SELECT id, organization_id, location_id, item_id, prev_status, new_status, days_of_supply, notified, created_at
		FROM stock_alerts
		WHERE organization_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.q.Query(ctx, query, organizationID, limit)
	if err != nil {
		return nil, fmt.Errorf("alerts.ListRecent: %w", err)
	}
	defer rows.Close()

	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(
			&a.ID, &a.OrganizationID, &a.LocationID, &a.ItemID,
			&a.PrevStatus, &a.NewStatus, &a.DaysOfSupply, &a.Notified, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
