package tool

import (
	"strings"
	"testing"
)

func TestParseArgsRegisterLead(t *testing.T) {
	t.Parallel()

	args, err := ParseArgs(ToolRegisterLead, `{"nome":"Carlos","interesse":"visita"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	typed, ok := args.(RegisterLeadArgs)
	if !ok {
		t.Fatalf("unexpected args type: %T", args)
	}
	if typed.Nome != "Carlos" || typed.Interesse != "visita" {
		t.Fatalf("unexpected args: %+v", typed)
	}
}

func TestParseArgsEmptyPayload(t *testing.T) {
	t.Parallel()

	args, err := ParseArgs(ToolScheduleVisit, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	typed, ok := args.(ScheduleVisitArgs)
	if !ok {
		t.Fatalf("unexpected args type: %T", args)
	}
	if typed.DataHorario != "" {
		t.Fatalf("expected empty data_horario, got %q", typed.DataHorario)
	}
}

func TestParseArgsMalformedJSON(t *testing.T) {
	t.Parallel()

	for _, tool := range []string{ToolRegisterLead, ToolScheduleVisit, ToolSendInfoFolder} {
		if _, err := ParseArgs(tool, `{"nome":`); err == nil {
			t.Fatalf("tool %s: expected parse error", tool)
		}
	}
}

func TestParseArgsUnknownTool(t *testing.T) {
	t.Parallel()

	_, err := ParseArgs("send_contract", "{}")
	if err == nil || !strings.Contains(err.Error(), "unknown tool") {
		t.Fatalf("expected unknown tool error, got %v", err)
	}
}

func TestInfosDeclareWireContract(t *testing.T) {
	t.Parallel()

	infos := Infos()
	if len(infos) != 5 {
		t.Fatalf("expected 5 declared tools, got %d", len(infos))
	}

	names := make(map[string]bool, len(infos))
	for _, info := range infos {
		names[info.Name] = true
	}
	for _, want := range []string{ToolRegisterLead, ToolSendInfoFolder, ToolSendTourVideo, ToolScheduleVisit, ToolRequestHuman} {
		if !names[want] {
			t.Fatalf("tool %s missing from catalog", want)
		}
	}
}
