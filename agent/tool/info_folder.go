package tool

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	contractx "github.com/kitnetlab/agent/agent/contract"
	promptx "github.com/kitnetlab/agent/agent/prompt"
)

func (g *Gateway) sendInfoFolder(ctx context.Context, sender string, media contractx.MediaSender) (bool, string) {
	if media == nil {
		return false, "Erro ao enviar o arquivo: canal de envio indisponível."
	}

	path, err := g.folder.Generate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("folder generation failed")
		return false, "Erro ao gerar o folder informativo. Ofereça passar as informações por mensagem."
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not remove transient folder file")
		}
	}()

	err = media.Send(ctx, sender, path, "application/pdf", promptx.FolderFileName, promptx.FolderCaption)
	if err != nil {
		log.Error().Err(err).Str("sender", sender).Msg("folder dispatch failed")
		return false, "Erro ao enviar o arquivo. Ofereça tentar de novo em instantes."
	}
	return true, "Folder em PDF enviado com sucesso. Confirme o envio ao cliente."
}
