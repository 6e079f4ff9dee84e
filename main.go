package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kitnetlab/agent/agent/admission"
	llmx "github.com/kitnetlab/agent/agent/llm"
	"github.com/kitnetlab/agent/agent/orchestrator"
	"github.com/kitnetlab/agent/agent/store"
	toolx "github.com/kitnetlab/agent/agent/tool"
	calendarx "github.com/kitnetlab/agent/pkg/calendar"
	configx "github.com/kitnetlab/agent/pkg/config"
	folderx "github.com/kitnetlab/agent/pkg/folder"
	_ "github.com/kitnetlab/agent/pkg/logger/autoload"
	openrouterx "github.com/kitnetlab/agent/pkg/openrouter"
)

type AppConfig struct {
	SenderID          string        `envconfig:"SENDER_ID" split_words:"true" default:"console"`
	Cooldown          time.Duration `envconfig:"COOLDOWN" split_words:"true" default:"2s"`
	FallbackVideoPath string        `envconfig:"FALLBACK_VIDEO_PATH" split_words:"true" default:"assets/tour-kitnet.mp4"`
	CalendarEnabled   bool          `envconfig:"CALENDAR_ENABLED" split_words:"true" default:"false"`
}

// consoleMediaSender stands in for the WhatsApp transport in local runs.
type consoleMediaSender struct{}

func (consoleMediaSender) Send(_ context.Context, recipient, filePath, mimeType, fileName, _ string) error {
	log.Info().
		Str("recipient", recipient).
		Str("file", filePath).
		Str("mime", mimeType).
		Str("name", fileName).
		Msg("media dispatched")
	return nil
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("APP")

	dbCfg := configx.MustNew[store.Config]("POSTGRES")
	db, err := store.Open(ctx, *dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()
	if err := store.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema provisioning failed")
	}

	leads := store.NewLeadRegistry(db)
	visits := store.NewVisitStore(db)
	units := store.NewUnitGateway(db)
	messages := store.NewMessageStore(db)

	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	if err := llmCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid llm config")
	}
	planCfg := llmCfg.PlanConfig()
	sdkClient := openrouterx.NewClient(planCfg)
	if sdkClient == nil {
		log.Fatal().Msg("openrouter client init failed")
	}
	if err := openrouterx.CheckModel(ctx, sdkClient, planCfg.Model); err != nil {
		log.Warn().Err(err).Msg("model preflight failed, continuing anyway")
	}

	chatModel, err := planCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("chat model init failed")
	}
	replyCfg := llmCfg.ReplyConfig()
	replyModel, err := replyCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("reply model init failed")
	}

	gatewayCfg := toolx.GatewayConfig{
		Leads:             leads,
		Visits:            visits,
		Units:             units,
		Folder:            folderx.NewGenerator(""),
		FallbackVideoPath: appCfg.FallbackVideoPath,
	}
	if appCfg.CalendarEnabled {
		calCfg := configx.MustNew[calendarx.Config]("CALENDAR")
		gatewayCfg.Calendar = calendarx.MustNew(*calCfg)
	}

	agent, err := orchestrator.New(orchestrator.Deps{
		Messages:   messages,
		Leads:      leads,
		Units:      units,
		Tools:      toolx.NewGateway(gatewayCfg),
		ChatModel:  chatModel,
		ReplyModel: replyModel,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("orchestrator init failed")
	}

	runConsole(ctx, agent, appCfg)
}

// runConsole is a minimal local transport: one sender, one line per turn,
// with the same admission control a real transport applies.
func runConsole(ctx context.Context, agent *orchestrator.Orchestrator, cfg *AppConfig) {
	debouncer := admission.NewDebouncer(cfg.Cooldown)
	media := consoleMediaSender{}
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("kitnet agent console — type a message, ctrl-d to exit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if !debouncer.Allow(cfg.SenderID) {
			fmt.Println("(cooling down, message dropped)")
			continue
		}

		reply, err := agent.HandleTurn(ctx, cfg.SenderID, text, media)
		if err != nil {
			log.Error().Err(err).Msg("turn rejected")
			continue
		}
		if reply == "" {
			continue
		}
		fmt.Println(reply)
	}
}
