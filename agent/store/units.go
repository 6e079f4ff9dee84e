package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// StatusAvailable marks a unit as rentable in the dashboard-owned units table.
const StatusAvailable = "disponivel"

// UnitGateway is a read-only view over the units table; the agent never
// writes to it.
type UnitGateway struct {
	db *bun.DB
}

var _ contractx.UnitGateway = (*UnitGateway)(nil)

func NewUnitGateway(db *bun.DB) *UnitGateway {
	return &UnitGateway{db: db}
}

func (g *UnitGateway) ListAvailable(ctx context.Context) ([]contractx.AvailableUnit, error) {
	var rows []unitRow
	err := g.db.NewSelect().
		Model(&rows).
		Where("status = ?", StatusAvailable).
		OrderExpr("unit_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available units: %w", err)
	}

	units := make([]contractx.AvailableUnit, 0, len(rows))
	for _, row := range rows {
		units = append(units, contractx.AvailableUnit{
			UnitNumber:  row.UnitNumber,
			Price:       row.Price,
			Description: row.Description,
			Status:      row.Status,
			VideoPath:   row.VideoPath,
		})
	}
	return units, nil
}

// ReferencePrice prefers the first available unit's price and falls back to
// any unit's price. An empty table yields zero, which is a valid state.
func (g *UnitGateway) ReferencePrice(ctx context.Context) (float64, error) {
	price, err := g.firstPrice(ctx, true)
	if err == nil {
		return price, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	price, err = g.firstPrice(ctx, false)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return price, nil
}

func (g *UnitGateway) firstPrice(ctx context.Context, onlyAvailable bool) (float64, error) {
	var row unitRow
	q := g.db.NewSelect().Model(&row).Column("price").OrderExpr("unit_number ASC").Limit(1)
	if onlyAvailable {
		q = q.Where("status = ?", StatusAvailable)
	}
	if err := q.Scan(ctx); err != nil {
		return 0, err
	}
	return row.Price, nil
}
