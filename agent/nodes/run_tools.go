package agentnode

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// RunTools executes the planned tool calls sequentially and appends the
// assistant tool-call message plus one role:tool message per call to the
// working context. Exactly one tool round per turn.
func RunTools(ctx context.Context, in *GraphState, tools contractx.ToolGateway) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Phase != PhaseExecutingTools {
		return in, nil
	}
	if in.PlanMsg == nil {
		return nil, fmt.Errorf("%w: executing tools without a plan message", contractx.ErrValidation)
	}

	reqs := make([]contractx.ToolRequest, 0, len(in.PlanMsg.ToolCalls))
	for _, call := range in.PlanMsg.ToolCalls {
		name := strings.TrimSpace(call.Function.Name)
		if name == "" {
			continue
		}
		reqs = append(reqs, contractx.ToolRequest{
			CallID:  call.ID,
			Tool:    name,
			RawArgs: call.Function.Arguments,
		})
	}

	in.Context = append(in.Context, in.PlanMsg)
	in.ToolResults = tools.Execute(ctx, in.SenderID, in.Media, reqs)
	for _, result := range in.ToolResults {
		in.Context = append(in.Context, &schema.Message{
			Role:       schema.Tool,
			Content:    result.Detail,
			ToolCallID: result.CallID,
		})
	}

	in.Phase = PhaseAwaitingFinal
	return in, nil
}
