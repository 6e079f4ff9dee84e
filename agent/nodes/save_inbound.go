package agentnode

import (
	"context"
	"fmt"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// SaveInbound persists the user turn before the context window is read, so
// the just-saved message is part of its own context.
func SaveInbound(ctx context.Context, in *GraphState, messages contractx.MessageStore) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	err := messages.Append(ctx, contractx.Message{
		ConversationID: in.SenderID,
		Role:           contractx.RoleUser,
		Content:        in.Text,
		CreatedAt:      in.Now,
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}
