package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

func (g *Gateway) scheduleVisit(ctx context.Context, sender string, args ScheduleVisitArgs) (bool, string) {
	when := strings.TrimSpace(args.DataHorario)
	if when == "" {
		return false, "Horário inválido ou não informado. Pergunte ao cliente o dia e horário desejados."
	}

	// lead state written earlier in the same turn is visible here
	leadName := ""
	lead, err := g.leads.GetByPhone(ctx, sender)
	switch {
	case errors.Is(err, contractx.ErrLeadNotFound):
		// scheduling without a prior registration is allowed
	case err != nil:
		log.Warn().Err(err).Str("sender", sender).Msg("lead lookup before scheduling failed")
	case lead.Name != nil:
		leadName = *lead.Name
	}

	visit := contractx.Visit{
		Phone:       sender,
		RequestedAt: when,
		CreatedAt:   g.now().UTC(),
	}
	if err := g.visits.Insert(ctx, visit); err != nil {
		log.Error().Err(err).Str("sender", sender).Msg("visit insert failed")
		return false, "Horário indisponível no momento. Peça outro dia ou horário ao cliente."
	}

	if err := g.leads.Upsert(ctx, contractx.Lead{
		Phone:         sender,
		Status:        contractx.LeadStatusVisitScheduled,
		LastContactAt: g.now().UTC(),
	}); err != nil {
		log.Warn().Err(err).Str("sender", sender).Msg("lead status bump failed")
	}

	synced := g.syncCalendar(ctx, sender, leadName, when)
	if synced {
		return true, fmt.Sprintf("Visita agendada para %s e sincronizada com a agenda. Confirme o horário ao cliente.", when)
	}
	return true, fmt.Sprintf("Visita registrada para %s, mas sem sincronização com a agenda externa. Confirme o horário ao cliente mesmo assim.", when)
}

// syncCalendar is best-effort: the Visit row stands regardless of the
// outcome here.
func (g *Gateway) syncCalendar(ctx context.Context, sender, leadName, when string) bool {
	if g.calendar == nil {
		return false
	}
	link, err := g.calendar.CreateEvent(ctx, sender, when)
	if err != nil {
		log.Warn().Err(err).Str("sender", sender).Msg("calendar sync failed")
		return false
	}
	log.Info().
		Str("sender", sender).
		Str("lead", leadName).
		Str("link", link).
		Msg("visit synced to external calendar")
	return true
}
