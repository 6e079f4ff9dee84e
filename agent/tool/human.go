package tool

import "github.com/rs/zerolog/log"

// requestHuman only flags the conversation for operator attention; there is
// no persistence and no failure mode.
func (g *Gateway) requestHuman(sender string) (bool, string) {
	log.Warn().Str("sender", sender).Msg("human handoff requested")
	return true, "Atendimento humano sinalizado. Diga ao cliente que alguém da equipe entrará em contato em breve."
}
