package store

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type messageRow struct {
	bun.BaseModel `bun:"table:conversation_messages,alias:msg"`

	ID             int64     `bun:"id,pk,autoincrement"`
	ConversationID string    `bun:"conversation_id,notnull"`
	Role           string    `bun:"role,notnull"`
	Content        string    `bun:"content,notnull"`
	ToolCallID     string    `bun:"tool_call_id,nullzero"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
}

type leadRow struct {
	bun.BaseModel `bun:"table:leads,alias:lead"`

	Phone          string    `bun:"phone,pk"`
	Name           *string   `bun:"name"`
	Interest       *string   `bun:"interest"`
	InterestedUnit *string   `bun:"interested_unit"`
	Status         string    `bun:"status,notnull,default:'new'"`
	LastContactAt  time.Time `bun:"last_contact_at,notnull"`
}

type visitRow struct {
	bun.BaseModel `bun:"table:visits,alias:visit"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Phone       string    `bun:"phone,notnull"`
	RequestedAt string    `bun:"requested_at,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
}

type unitRow struct {
	bun.BaseModel `bun:"table:units,alias:unit"`

	UnitNumber  string  `bun:"unit_number,pk"`
	Price       float64 `bun:"price,notnull"`
	Description string  `bun:"description,nullzero"`
	Status      string  `bun:"status,notnull"`
	VideoPath   string  `bun:"video_path,nullzero"`
}

// EnsureSchema provisions the tables the agent owns. It is an idempotent
// create-if-absent operation, not a migration engine.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*messageRow)(nil),
		(*leadRow)(nil),
		(*visitRow)(nil),
		(*unitRow)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}
