package tool

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Args is the tagged union of known tool argument shapes. Model-emitted
// payloads are free-form JSON; parsing failures become tool execution
// errors at the gateway, never crashes.
type Args interface {
	isToolArgs()
}

type RegisterLeadArgs struct {
	Nome      string `json:"nome,omitempty"`
	Interesse string `json:"interesse,omitempty"`
}

type ScheduleVisitArgs struct {
	DataHorario string `json:"data_horario"`
}

// NoArgs covers the tools declared without parameters.
type NoArgs struct{}

func (RegisterLeadArgs) isToolArgs()  {}
func (ScheduleVisitArgs) isToolArgs() {}
func (NoArgs) isToolArgs()            {}

// ParseArgs validates a raw model payload against the schema of the named
// tool. Unknown tool names are rejected.
func ParseArgs(tool, raw string) (Args, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "{}"
	}

	switch tool {
	case ToolRegisterLead:
		var args RegisterLeadArgs
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return nil, fmt.Errorf("tool %s: invalid arguments: %w", tool, err)
		}
		return args, nil
	case ToolScheduleVisit:
		var args ScheduleVisitArgs
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return nil, fmt.Errorf("tool %s: invalid arguments: %w", tool, err)
		}
		return args, nil
	case ToolSendInfoFolder, ToolSendTourVideo, ToolRequestHuman:
		// payload is ignored, but it must still be JSON
		var sink map[string]any
		if err := json.Unmarshal([]byte(raw), &sink); err != nil {
			return nil, fmt.Errorf("tool %s: invalid arguments: %w", tool, err)
		}
		return NoArgs{}, nil
	default:
		return nil, fmt.Errorf("unknown tool %q", tool)
	}
}
