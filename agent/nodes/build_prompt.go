package agentnode

import (
	"fmt"

	contractx "github.com/kitnetlab/agent/agent/contract"
	promptx "github.com/kitnetlab/agent/agent/prompt"
)

func BuildPrompt(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	system, err := promptx.RenderSystem(promptx.SystemData{
		LeadName:  in.LeadName,
		HasUnits:  len(in.Units) > 0,
		UnitCount: len(in.Units),
		RefPrice:  promptx.FormatPrice(in.RefPrice),
	})
	if err != nil {
		return nil, err
	}

	in.SystemPrompt = system
	return in, nil
}
