package tool

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

func (g *Gateway) registerLead(ctx context.Context, sender string, args RegisterLeadArgs) (bool, string) {
	lead := contractx.Lead{
		Phone:         sender,
		LastContactAt: g.now().UTC(),
	}
	if name := strings.TrimSpace(args.Nome); name != "" {
		lead.Name = &name
	}
	if interest := strings.TrimSpace(args.Interesse); interest != "" {
		lead.Interest = &interest
	}

	if err := g.leads.Upsert(ctx, lead); err != nil {
		log.Error().Err(err).Str("sender", sender).Msg("lead upsert failed")
		return false, "Não foi possível registrar o cadastro agora. Siga a conversa normalmente."
	}
	return true, "Cadastro do cliente registrado com sucesso. Agradeça o interesse."
}
