package agentnode

import (
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

var (
	ErrInvalidSender  = errors.New("sender id is empty")
	ErrInvalidMessage = errors.New("message is empty")
)

// Phase makes the two-round tool-calling protocol explicit. A turn moves
// forward only: awaiting-plan -> executing-tools -> awaiting-final -> done.
// There is never a loop back to planning.
type Phase string

const (
	PhaseAwaitingPlan   Phase = "awaiting-plan"
	PhaseExecutingTools Phase = "executing-tools"
	PhaseAwaitingFinal  Phase = "awaiting-final"
	PhaseDone           Phase = "done"
)

type GraphInput struct {
	SenderID string
	Text     string
	Media    contractx.MediaSender
}

type GraphOutput struct {
	// Reply may be empty: an empty second-round completion means no
	// message is sent, with no retry.
	Reply string
}

// GraphState is carried through the turn graph.
type GraphState struct {
	SenderID string
	Text     string
	Media    contractx.MediaSender
	Now      time.Time
	Phase    Phase

	LeadName     string
	Units        []contractx.AvailableUnit
	RefPrice     float64
	SystemPrompt string

	// Context is the rolling window plus, after planning, the assistant
	// tool-call message and one tool message per executed call.
	Context     []*schema.Message
	PlanMsg     *schema.Message
	ToolResults []contractx.ToolResult

	Reply string
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	senderID := strings.TrimSpace(in.SenderID)
	if senderID == "" {
		return nil, ErrInvalidSender
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		SenderID: senderID,
		Text:     text,
		Media:    in.Media,
		Now:      nowFn().UTC(),
		Phase:    PhaseAwaitingPlan,
	}, nil
}

func toSchemaMessage(msg contractx.Message) *schema.Message {
	out := &schema.Message{Content: msg.Content}
	switch msg.Role {
	case contractx.RoleSystem:
		out.Role = schema.System
	case contractx.RoleAssistant:
		out.Role = schema.Assistant
	case contractx.RoleTool:
		out.Role = schema.Tool
		out.ToolCallID = msg.ToolCallID
	default:
		out.Role = schema.User
	}
	return out
}
