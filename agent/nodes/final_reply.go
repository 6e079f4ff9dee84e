package agentnode

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// FinalReply runs the second model call, with no tools bound, so the model
// narrates the tool outcomes to the user. An empty completion is kept as
// "no reply sent"; there is no retry.
func FinalReply(ctx context.Context, in *GraphState, replyModel einomodel.BaseChatModel) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Phase != PhaseAwaitingFinal {
		return in, nil
	}

	msgs := make([]*schema.Message, 0, len(in.Context)+1)
	msgs = append(msgs, &schema.Message{Role: schema.System, Content: in.SystemPrompt})
	msgs = append(msgs, in.Context...)

	finalMsg, err := replyModel.Generate(ctx, msgs)
	if err != nil {
		return nil, fmt.Errorf("%w: final round: %v", contractx.ErrModelInvoke, err)
	}
	if finalMsg != nil {
		in.Reply = strings.TrimSpace(finalMsg.Content)
	}

	in.Phase = PhaseDone
	return in, nil
}
