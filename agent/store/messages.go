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

// MessageStore persists conversation history in Postgres. Entries are
// append-only; nothing here mutates or deletes a saved message.
type MessageStore struct {
	db  *bun.DB
	now func() time.Time
}

var _ contractx.MessageStore = (*MessageStore)(nil)

func NewMessageStore(db *bun.DB) *MessageStore {
	return &MessageStore{db: db, now: time.Now}
}

func (s *MessageStore) Append(ctx context.Context, msg contractx.Message) error {
	if strings.TrimSpace(msg.ConversationID) == "" {
		return errors.New("conversation id is required")
	}
	if msg.Role == "" {
		return errors.New("message role is required")
	}
	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}

	row := messageRow{
		ConversationID: msg.ConversationID,
		Role:           string(msg.Role),
		Content:        msg.Content,
		ToolCallID:     msg.ToolCallID,
		CreatedAt:      createdAt,
	}
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

// LastN reads the newest n entries and returns them oldest first, so the
// caller can hand the slice to the model as-is.
func (s *MessageStore) LastN(ctx context.Context, conversationID string, n int) ([]contractx.Message, error) {
	if n <= 0 {
		return nil, nil
	}

	var rows []messageRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("conversation_id = ?", conversationID).
		OrderExpr("created_at DESC, id DESC").
		Limit(n).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last messages: %w", err)
	}

	return toChronological(rows), nil
}

// toChronological reverses a newest-first result set into the oldest-first
// order the model context expects.
func toChronological(rows []messageRow) []contractx.Message {
	msgs := make([]contractx.Message, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		msgs = append(msgs, contractx.Message{
			ConversationID: row.ConversationID,
			Role:           contractx.Role(row.Role),
			Content:        row.Content,
			ToolCallID:     row.ToolCallID,
			CreatedAt:      row.CreatedAt,
		})
	}
	return msgs
}
