package agentnode

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// LoadContext reads the rolling window back from the store, chronological,
// newest entry being the message SaveInbound just wrote.
func LoadContext(ctx context.Context, in *GraphState, messages contractx.MessageStore, window int) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if window <= 0 {
		window = 10
	}

	history, err := messages.LastN(ctx, in.SenderID, window)
	if err != nil {
		return nil, err
	}

	in.Context = make([]*schema.Message, 0, len(history))
	for _, msg := range history {
		in.Context = append(in.Context, toSchemaMessage(msg))
	}
	return in, nil
}
