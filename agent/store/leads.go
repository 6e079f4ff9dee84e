package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// LeadRegistry stores leads keyed by phone with merge-on-upsert semantics.
type LeadRegistry struct {
	db  *bun.DB
	now func() time.Time
}

var _ contractx.LeadRegistry = (*LeadRegistry)(nil)

func NewLeadRegistry(db *bun.DB) *LeadRegistry {
	return &LeadRegistry{db: db, now: time.Now}
}

// Upsert reads the stored lead, merges the incoming fields into it and
// writes the merged row back. Callers run under the per-sender turn lock,
// so the read-merge-write sequence is not interleaved for one phone.
func (r *LeadRegistry) Upsert(ctx context.Context, lead contractx.Lead) error {
	phone := strings.TrimSpace(lead.Phone)
	if phone == "" {
		return errors.New("lead phone is required")
	}
	lead.Phone = phone

	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var existing leadRow
		err := tx.NewSelect().Model(&existing).Where("phone = ?", phone).Scan(ctx)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// first contact
		case err != nil:
			return fmt.Errorf("load lead %s: %w", phone, err)
		}

		merged := mergeLead(toLead(existing), lead, r.now().UTC())
		row := leadRow{
			Phone:          merged.Phone,
			Name:           merged.Name,
			Interest:       merged.Interest,
			InterestedUnit: merged.InterestedUnit,
			Status:         string(merged.Status),
			LastContactAt:  merged.LastContactAt,
		}

		_, err = tx.NewInsert().
			Model(&row).
			On("CONFLICT (phone) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("interest = EXCLUDED.interest").
			Set("interested_unit = EXCLUDED.interested_unit").
			Set("status = EXCLUDED.status").
			Set("last_contact_at = EXCLUDED.last_contact_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("upsert lead %s: %w", phone, err)
		}
		return nil
	})
}

func (r *LeadRegistry) GetByPhone(ctx context.Context, phone string) (*contractx.Lead, error) {
	var row leadRow
	err := r.db.NewSelect().Model(&row).Where("phone = ?", phone).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contractx.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load lead %s: %w", phone, err)
	}
	lead := toLead(row)
	return &lead, nil
}

func toLead(row leadRow) contractx.Lead {
	return contractx.Lead{
		Phone:          row.Phone,
		Name:           row.Name,
		Interest:       row.Interest,
		InterestedUnit: row.InterestedUnit,
		Status:         contractx.LeadStatus(row.Status),
		LastContactAt:  row.LastContactAt,
	}
}

// mergeLead folds an incoming registration into the stored lead.
// Field rules are intentionally kept independent:
//   - name: incoming non-nil wins, stored non-nil is never cleared
//   - interest: replace if provided, else keep
//   - interested unit: replace if provided, else keep
//   - status: replace if provided, else keep (default "new" on first contact)
//   - last contact: always bumped to now
func mergeLead(existing, incoming contractx.Lead, now time.Time) contractx.Lead {
	merged := existing
	if merged.Phone == "" {
		merged.Phone = incoming.Phone
	}

	if incoming.Name != nil && strings.TrimSpace(*incoming.Name) != "" {
		merged.Name = incoming.Name
	}
	if incoming.Interest != nil && strings.TrimSpace(*incoming.Interest) != "" {
		merged.Interest = incoming.Interest
	}
	if incoming.InterestedUnit != nil && strings.TrimSpace(*incoming.InterestedUnit) != "" {
		merged.InterestedUnit = incoming.InterestedUnit
	}
	if incoming.Status != "" {
		merged.Status = incoming.Status
	}
	if merged.Status == "" {
		merged.Status = contractx.LeadStatusNew
	}
	merged.LastContactAt = now
	return merged
}
