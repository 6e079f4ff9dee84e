package contract

import "time"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one append-only entry of a conversation history. Entries are
// never mutated or deleted by the agent.
type Message struct {
	ConversationID string    `json:"conversation_id"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	ToolCallID     string    `json:"tool_call_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type LeadStatus string

const (
	LeadStatusNew            LeadStatus = "new"
	LeadStatusVisitScheduled LeadStatus = "visit-scheduled"
	LeadStatusFollowupSent   LeadStatus = "followup-sent"
	LeadStatusArchived       LeadStatus = "archived"
)

// Lead is a prospective tenant keyed by phone. Nil pointer fields on an
// upsert mean "not provided"; a stored non-nil value is never overwritten
// by a nil incoming one.
type Lead struct {
	Phone          string     `json:"phone"`
	Name           *string    `json:"name,omitempty"`
	Interest       *string    `json:"interest,omitempty"`
	InterestedUnit *string    `json:"interested_unit,omitempty"`
	Status         LeadStatus `json:"status,omitempty"`
	LastContactAt  time.Time  `json:"last_contact_at"`
}

// Visit is a tour request. The external calendar is the system of record
// for conflicts; there is no update or cancel path here.
type Visit struct {
	Phone       string    `json:"phone"`
	RequestedAt string    `json:"requested_at"` // free-form, model-normalized
	CreatedAt   time.Time `json:"created_at"`
}

// AvailableUnit is a read-only projection queried fresh per turn.
type AvailableUnit struct {
	UnitNumber  string  `json:"unit_number"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	VideoPath   string  `json:"video_path,omitempty"`
}

// ToolRequest is one model-emitted tool invocation. It exists only within
// a single orchestration cycle and is never persisted.
type ToolRequest struct {
	CallID  string `json:"call_id"`
	Tool    string `json:"tool"`
	RawArgs string `json:"raw_args,omitempty"`
}

// ToolResult carries the human-readable outcome fed back to the model as a
// role:tool message. Failures are soft: they live in Detail with OK=false,
// never as returned errors.
type ToolResult struct {
	CallID string `json:"call_id"`
	Tool   string `json:"tool"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}
