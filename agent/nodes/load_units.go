package agentnode

import (
	"context"
	"fmt"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// LoadUnits queries availability fresh for this turn; nothing is cached
// between turns.
func LoadUnits(ctx context.Context, in *GraphState, units contractx.UnitGateway) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	available, err := units.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	price, err := units.ReferencePrice(ctx)
	if err != nil {
		return nil, err
	}

	in.Units = available
	in.RefPrice = price
	return in, nil
}
