package tool

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/kitnetlab/agent/agent/contract"
	promptx "github.com/kitnetlab/agent/agent/prompt"
)

func (g *Gateway) sendTourVideo(ctx context.Context, sender string, media contractx.MediaSender) (bool, string) {
	if media == nil {
		return false, "Erro técnico ao enviar o vídeo: canal de envio indisponível."
	}

	path := g.resolveVideoPath(ctx)
	if path == "" {
		return false, "Vídeo do tour não encontrado no momento. Ofereça agendar uma visita presencial."
	}
	if _, err := os.Stat(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("tour video missing on disk")
		return false, "Vídeo do tour não encontrado no momento. Ofereça agendar uma visita presencial."
	}

	err := media.Send(ctx, sender, path, "video/mp4", promptx.VideoFileName, promptx.VideoCaption)
	if err != nil {
		log.Error().Err(err).Str("sender", sender).Msg("tour video dispatch failed")
		return false, "Erro técnico ao enviar o vídeo. Ofereça tentar de novo em instantes."
	}
	return true, "Vídeo do tour enviado com sucesso. Confirme o envio ao cliente."
}

// resolveVideoPath prefers the first available unit with a configured
// video and falls back to the fixed path.
func (g *Gateway) resolveVideoPath(ctx context.Context) string {
	units, err := g.units.ListAvailable(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not list units for tour video")
		return g.fallbackVideoPath
	}
	for _, unit := range units {
		if strings.TrimSpace(unit.VideoPath) != "" {
			return unit.VideoPath
		}
	}
	return g.fallbackVideoPath
}
