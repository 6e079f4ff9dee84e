package tool

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

// Gateway executes model-requested tool calls against the side-effecting
// collaborators. Execution is strictly sequential so that state written by
// an earlier tool (a registered lead) is visible to a later one in the
// same turn.
type Gateway struct {
	leads    contractx.LeadRegistry
	visits   contractx.VisitStore
	units    contractx.UnitGateway
	calendar contractx.Calendar
	folder   contractx.FolderGenerator

	fallbackVideoPath string
	now               func() time.Time
}

var _ contractx.ToolGateway = (*Gateway)(nil)

type GatewayConfig struct {
	Leads  contractx.LeadRegistry
	Visits contractx.VisitStore
	Units  contractx.UnitGateway
	// Calendar may be nil; scheduling then reports local-only saves.
	Calendar contractx.Calendar
	Folder   contractx.FolderGenerator
	// FallbackVideoPath is dispatched when no available unit has a video.
	FallbackVideoPath string
}

func NewGateway(cfg GatewayConfig) *Gateway {
	return &Gateway{
		leads:             cfg.Leads,
		visits:            cfg.Visits,
		units:             cfg.Units,
		calendar:          cfg.Calendar,
		folder:            cfg.Folder,
		fallbackVideoPath: cfg.FallbackVideoPath,
		now:               time.Now,
	}
}

// Execute runs every request in order and never returns an error: each
// failure is folded into its result's detail string so the second model
// call can narrate it to the user.
func (g *Gateway) Execute(ctx context.Context, sender string, media contractx.MediaSender, reqs []contractx.ToolRequest) []contractx.ToolResult {
	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		result := g.executeOne(ctx, sender, media, req)
		log.Info().
			Str("sender", sender).
			Str("tool", req.Tool).
			Bool("ok", result.OK).
			Msg("tool executed")
		results = append(results, result)
	}
	return results
}

func (g *Gateway) executeOne(ctx context.Context, sender string, media contractx.MediaSender, req contractx.ToolRequest) (result contractx.ToolResult) {
	result = contractx.ToolResult{CallID: req.CallID, Tool: req.Tool}

	// a panicking collaborator must not escape the orchestrator boundary
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("tool", req.Tool).Interface("panic", r).Msg("tool executor panicked")
			result.OK = false
			result.Detail = "Erro técnico ao executar a ação. Peça desculpas e ofereça tentar de novo."
		}
	}()

	args, err := ParseArgs(req.Tool, req.RawArgs)
	if err != nil {
		log.Warn().Err(err).Str("tool", req.Tool).Msg("malformed tool arguments")
		result.OK = false
		result.Detail = "Não foi possível entender os dados da ação. Peça os dados de novo ao cliente."
		return result
	}

	switch typed := args.(type) {
	case RegisterLeadArgs:
		result.OK, result.Detail = g.registerLead(ctx, sender, typed)
	case ScheduleVisitArgs:
		result.OK, result.Detail = g.scheduleVisit(ctx, sender, typed)
	case NoArgs:
		switch req.Tool {
		case ToolSendInfoFolder:
			result.OK, result.Detail = g.sendInfoFolder(ctx, sender, media)
		case ToolSendTourVideo:
			result.OK, result.Detail = g.sendTourVideo(ctx, sender, media)
		case ToolRequestHuman:
			result.OK, result.Detail = g.requestHuman(sender)
		}
	}
	return result
}
