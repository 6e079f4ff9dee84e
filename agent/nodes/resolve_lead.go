package agentnode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	contractx "github.com/kitnetlab/agent/agent/contract"
	promptx "github.com/kitnetlab/agent/agent/prompt"
)

// ResolveLead fills the display name used in the system prompt. A missing
// lead is a valid state, not an error.
func ResolveLead(ctx context.Context, in *GraphState, leads contractx.LeadRegistry) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	in.LeadName = promptx.DefaultLeadName
	lead, err := leads.GetByPhone(ctx, in.SenderID)
	if errors.Is(err, contractx.ErrLeadNotFound) {
		return in, nil
	}
	if err != nil {
		return nil, err
	}
	if lead.Name != nil && strings.TrimSpace(*lead.Name) != "" {
		in.LeadName = strings.TrimSpace(*lead.Name)
	}
	return in, nil
}
