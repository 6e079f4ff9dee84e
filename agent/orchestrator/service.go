package orchestrator

import (
	"context"
	"errors"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	"github.com/kitnetlab/agent/agent/admission"
	contractx "github.com/kitnetlab/agent/agent/contract"
	agentnode "github.com/kitnetlab/agent/agent/nodes"
	toolx "github.com/kitnetlab/agent/agent/tool"
)

var (
	ErrInvalidSender  = agentnode.ErrInvalidSender
	ErrInvalidMessage = agentnode.ErrInvalidMessage
)

const defaultContextWindow = 10

// Deps are the collaborators one orchestrator instance is wired with. The
// media sender is deliberately absent: it is a per-turn capability passed
// to HandleTurn, so the agent never depends on the transport package.
type Deps struct {
	Messages  contractx.MessageStore
	Leads     contractx.LeadRegistry
	Units     contractx.UnitGateway
	Tools     contractx.ToolGateway
	ChatModel einomodel.ToolCallingChatModel

	// ReplyModel optionally runs the final round on a different model;
	// nil reuses ChatModel (without tools).
	ReplyModel einomodel.BaseChatModel

	// ContextWindow is the rolling history size; defaults to 10.
	ContextWindow int
}

// Orchestrator runs one inbound-message-to-outbound-reply turn: two model
// rounds at most, one tool round at most, and a deterministic fallback
// when the whole path fails.
type Orchestrator struct {
	messages contractx.MessageStore
	leads    contractx.LeadRegistry
	units    contractx.UnitGateway
	tools    contractx.ToolGateway

	planModel  einomodel.BaseChatModel
	replyModel einomodel.BaseChatModel

	graphRunner compose.Runnable[agentnode.GraphInput, agentnode.GraphOutput]
	locks       *admission.KeyedMutex

	contextWindow int
	now           func() time.Time
}

func New(deps Deps) (*Orchestrator, error) {
	if deps.Messages == nil {
		return nil, errors.New("message store is required")
	}
	if deps.Leads == nil {
		return nil, errors.New("lead registry is required")
	}
	if deps.Units == nil {
		return nil, errors.New("unit gateway is required")
	}
	if deps.Tools == nil {
		return nil, errors.New("tool gateway is required")
	}
	if deps.ChatModel == nil {
		return nil, errors.New("chat model is required")
	}

	planModel, err := deps.ChatModel.WithTools(toolx.Infos())
	if err != nil {
		return nil, err
	}

	replyModel := deps.ReplyModel
	if replyModel == nil {
		replyModel = deps.ChatModel
	}

	window := deps.ContextWindow
	if window <= 0 {
		window = defaultContextWindow
	}

	o := &Orchestrator{
		messages:      deps.Messages,
		leads:         deps.Leads,
		units:         deps.Units,
		tools:         deps.Tools,
		planModel:     planModel,
		replyModel:    replyModel,
		locks:         admission.NewKeyedMutex(),
		contextWindow: window,
		now:           time.Now,
	}

	graphRunner, err := o.compileTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleTurn processes one inbound message and returns the reply text. An
// empty reply with a nil error means "send nothing". Turns for the same
// sender are serialized; any failure past input validation degrades to the
// deterministic fallback instead of surfacing an error to the transport.
func (o *Orchestrator) HandleTurn(ctx context.Context, senderID, text string, media contractx.MediaSender) (string, error) {
	unlock := o.locks.Lock(senderID)
	defer unlock()

	out, err := o.graphRunner.Invoke(ctx, agentnode.GraphInput{
		SenderID: senderID,
		Text:     text,
		Media:    media,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidSender) || errors.Is(err, ErrInvalidMessage) {
			return "", err
		}
		log.Error().Err(err).Str("sender", senderID).Msg("turn failed, using fallback reply")
		return o.fallbackReply(ctx), nil
	}

	return out.Reply, nil
}
