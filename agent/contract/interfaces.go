package contract

import "context"

// MessageStore is the append-only per-conversation history.
type MessageStore interface {
	Append(ctx context.Context, msg Message) error
	// LastN returns the most recent n messages in chronological order.
	LastN(ctx context.Context, conversationID string, n int) ([]Message, error)
}

// LeadRegistry upserts and reads leads keyed by phone.
type LeadRegistry interface {
	// Upsert merges the incoming lead into the stored one field by field;
	// nil incoming fields keep the stored value.
	Upsert(ctx context.Context, lead Lead) error
	// GetByPhone returns ErrLeadNotFound when no lead exists.
	GetByPhone(ctx context.Context, phone string) (*Lead, error)
}

// UnitGateway exposes read-only queries over the rental inventory.
type UnitGateway interface {
	ListAvailable(ctx context.Context) ([]AvailableUnit, error)
	// ReferencePrice is the first available unit's price, falling back to
	// any unit's price, then zero. Zero is a valid business state.
	ReferencePrice(ctx context.Context) (float64, error)
}

type VisitStore interface {
	Insert(ctx context.Context, visit Visit) error
}

// MediaSender is the transport capability handed in per turn so the agent
// can dispatch files without depending on the transport package.
type MediaSender interface {
	Send(ctx context.Context, recipient, filePath, mimeType, fileName, caption string) error
}

// Calendar is the external calendar collaborator. Sync is best-effort.
type Calendar interface {
	CreateEvent(ctx context.Context, phone, when string) (link string, err error)
}

// FolderGenerator renders the info-folder PDF to a private, per-invocation
// temporary file and returns its path.
type FolderGenerator interface {
	Generate(ctx context.Context) (path string, err error)
}

// ToolGateway executes tool requests sequentially, in order. Failures are
// reported inside the results; it never returns an error to the caller.
type ToolGateway interface {
	Execute(ctx context.Context, sender string, media MediaSender, reqs []ToolRequest) []ToolResult
}
