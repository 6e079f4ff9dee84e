package agentnode

import (
	"context"
	"fmt"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// PersistReply stores the assistant turn. An empty reply stores nothing.
func PersistReply(ctx context.Context, in *GraphState, messages contractx.MessageStore) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Reply == "" {
		return in, nil
	}

	err := messages.Append(ctx, contractx.Message{
		ConversationID: in.SenderID,
		Role:           contractx.RoleAssistant,
		Content:        in.Reply,
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}

func Finalize(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	return GraphOutput{Reply: in.Reply}, nil
}
