package agentnode

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// PlanReply runs the first model call of the turn with the tool catalog
// bound (tool-choice auto). A response without tool calls short-circuits
// the turn: its text is already the final reply.
func PlanReply(ctx context.Context, in *GraphState, planModel einomodel.BaseChatModel) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Phase != PhaseAwaitingPlan {
		return nil, fmt.Errorf("%w: plan called in phase %s", contractx.ErrValidation, in.Phase)
	}

	msgs := make([]*schema.Message, 0, len(in.Context)+1)
	msgs = append(msgs, &schema.Message{Role: schema.System, Content: in.SystemPrompt})
	msgs = append(msgs, in.Context...)

	planMsg, err := planModel.Generate(ctx, msgs)
	if err != nil {
		return nil, fmt.Errorf("%w: plan round: %v", contractx.ErrModelInvoke, err)
	}
	if planMsg == nil {
		return nil, fmt.Errorf("%w: plan round returned nil message", contractx.ErrModelInvoke)
	}

	in.PlanMsg = planMsg
	if len(planMsg.ToolCalls) == 0 {
		in.Reply = strings.TrimSpace(planMsg.Content)
		in.Phase = PhaseDone
		return in, nil
	}

	in.Phase = PhaseExecutingTools
	return in, nil
}
