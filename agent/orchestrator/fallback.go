package orchestrator

import (
	"context"

	"github.com/rs/zerolog/log"

	promptx "github.com/kitnetlab/agent/agent/prompt"
)

// fallbackReply is the local recovery for a failed turn: one fresh
// availability query, one deterministic template, no model, no writes to
// the message store and no retry.
func (o *Orchestrator) fallbackReply(ctx context.Context) string {
	units, err := o.units.ListAvailable(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("fallback availability query failed")
		return promptx.FallbackWaitlist
	}
	if len(units) == 0 {
		return promptx.FallbackWaitlist
	}
	return promptx.FallbackWithUnits(len(units), units[0].Price)
}
