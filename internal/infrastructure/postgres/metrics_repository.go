package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

var _ repository.StockMetricsRepository = (*StockMetricsRepo)(nil)

// StockMetricsRepo consultas de solo lectura sobre las tablas de hechos.
// Es el equivalente de la "tabla dinámica" del diseño original: junta el último
// conteo por (sede, insumo) con el consumo promedio de la ventana y el lead time.
type StockMetricsRepo struct {
	pool *pgxpool.Pool
}

// NewStockMetricsRepository construye el adaptador de métricas.
func NewStockMetricsRepository(pool *pgxpool.Pool) *StockMetricsRepo {
	return &StockMetricsRepo{pool: pool}
}

// GetStockMetrics devuelve una fila por (sede, insumo) con al menos un conteo:
//   - cantidad vigente: el conteo con mayor reported_at (DISTINCT ON)
//   - tasa diaria: SUM(consumo en ventana) / windowDays (COALESCE a 0 sin consumo)
//
// Los insumos con lead_time_days = 0 quedan excluidos (sin lead time no hay
// clasificación posible; ver contrato del repositorio).
// Si locationID es vacío, considera todas las sedes de la organización.
func (r *StockMetricsRepo) GetStockMetrics(
	ctx context.Context,
	organizationID, locationID string,
	windowDays int,
) ([]repository.StockMetricsRow, error) {
	var (
		query string
		args  []any
	)

	const baseSelect = `
	WITH latest AS (
		SELECT DISTINCT ON (ir.location_id, ir.item_id)
			ir.location_id, ir.item_id, ir.quantity, ir.reported_at
		FROM inventory_records ir
		JOIN locations l ON l.id = ir.location_id
		WHERE l.organization_id = $1
		ORDER BY ir.location_id, ir.item_id, ir.reported_at DESC
	),
	usage AS (
		SELECT ur.location_id, ur.item_id,
		       SUM(ur.quantity) / $2::numeric AS daily_rate
		FROM usage_records ur
		JOIN locations l ON l.id = ur.location_id
		WHERE l.organization_id = $1
		  AND ur.used_at >= now() - ($2::int * INTERVAL '1 day')
		GROUP BY ur.location_id, ur.item_id
	)
	SELECT
		l.id, l.code, l.name,
		i.id, i.code, i.name, i.unit,
		latest.quantity,
		COALESCE(usage.daily_rate, 0) AS daily_rate,
		i.lead_time_days,
		latest.reported_at
	FROM latest
	JOIN locations l ON l.id = latest.location_id
	JOIN items     i ON i.id = latest.item_id
	LEFT JOIN usage ON usage.location_id = latest.location_id
	               AND usage.item_id     = latest.item_id
	WHERE i.lead_time_days > 0`

	if locationID != "" {
		query = baseSelect + `
	  AND l.id = $3
	ORDER BY l.code, i.code`
		args = []any{organizationID, windowDays, locationID}
	} else {
		query = baseSelect + `
	ORDER BY l.code, i.code`
		args = []any{organizationID, windowDays}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("metrics.GetStockMetrics: %w", err)
	}
	defer rows.Close()

	var results []repository.StockMetricsRow
	for rows.Next() {
		var row repository.StockMetricsRow
		if err := rows.Scan(
			&row.LocationID, &row.LocationCode, &row.LocationName,
			&row.ItemID, &row.ItemCode, &row.ItemName, &row.Unit,
			&row.CurrentQuantity, &row.DailyUsageRate,
			&row.LeadTimeDays, &row.LastReportAt,
		); err != nil {
			return nil, fmt.Errorf("metrics: scan stock metrics: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountReportingLocations cuenta las sedes con al menos un conteo en la ventana.
func (r *StockMetricsRepo) CountReportingLocations(
	ctx context.Context,
	organizationID string,
	windowDays int,
) (int, error) {
	const query = `
	SELECT COUNT(DISTINCT ir.location_id)
	FROM inventory_records ir
	JOIN locations l ON l.id = ir.location_id
	WHERE l.organization_id = $1
	  AND ir.reported_at >= now() - ($2::int * INTERVAL '1 day')`

	var n int
	if err := r.pool.QueryRow(ctx, query, organizationID, windowDays).Scan(&n); err != nil {
		return 0, fmt.Errorf("metrics.CountReportingLocations: %w", err)
	}
	return n, nil
}
