package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// VisitStore records tour requests. Insert only; the external calendar is
// the system of record for conflicts.
type VisitStore struct {
	db  *bun.DB
	now func() time.Time
}

var _ contractx.VisitStore = (*VisitStore)(nil)

func NewVisitStore(db *bun.DB) *VisitStore {
	return &VisitStore{db: db, now: time.Now}
}

func (s *VisitStore) Insert(ctx context.Context, visit contractx.Visit) error {
	if strings.TrimSpace(visit.Phone) == "" {
		return errors.New("visit phone is required")
	}
	if strings.TrimSpace(visit.RequestedAt) == "" {
		return errors.New("visit requested time is required")
	}

	createdAt := visit.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}
	row := visitRow{
		Phone:       visit.Phone,
		RequestedAt: visit.RequestedAt,
		CreatedAt:   createdAt,
	}
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}
