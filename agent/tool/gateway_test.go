package tool

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

type stubLeads struct {
	leads     map[string]contractx.Lead
	upsertErr error
	panicOn   bool
}

func (s *stubLeads) Upsert(ctx context.Context, lead contractx.Lead) error {
	if s.panicOn {
		panic("unexpected collaborator panic")
	}
	if s.upsertErr != nil {
		return s.upsertErr
	}
	if s.leads == nil {
		s.leads = make(map[string]contractx.Lead)
	}
	existing := s.leads[lead.Phone]
	existing.Phone = lead.Phone
	if lead.Name != nil {
		existing.Name = lead.Name
	}
	if lead.Interest != nil {
		existing.Interest = lead.Interest
	}
	if lead.Status != "" {
		existing.Status = lead.Status
	}
	s.leads[lead.Phone] = existing
	return nil
}

func (s *stubLeads) GetByPhone(ctx context.Context, phone string) (*contractx.Lead, error) {
	lead, ok := s.leads[phone]
	if !ok {
		return nil, contractx.ErrLeadNotFound
	}
	return &lead, nil
}

type stubVisits struct {
	visits    []contractx.Visit
	insertErr error
}

func (s *stubVisits) Insert(ctx context.Context, visit contractx.Visit) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.visits = append(s.visits, visit)
	return nil
}

type stubUnits struct {
	units []contractx.AvailableUnit
}

func (s *stubUnits) ListAvailable(ctx context.Context) ([]contractx.AvailableUnit, error) {
	return s.units, nil
}

func (s *stubUnits) ReferencePrice(ctx context.Context) (float64, error) {
	if len(s.units) == 0 {
		return 0, nil
	}
	return s.units[0].Price, nil
}

type stubCalendar struct {
	err   error
	calls int
}

func (s *stubCalendar) CreateEvent(ctx context.Context, phone, when string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "https://cal.example/evt/9", nil
}

type stubFolder struct {
	path string
	err  error
}

func (s *stubFolder) Generate(ctx context.Context) (string, error) {
	return s.path, s.err
}

type stubMedia struct {
	mimeTypes []string
	err       error
}

func (s *stubMedia) Send(ctx context.Context, recipient, filePath, mimeType, fileName, caption string) error {
	if s.err != nil {
		return s.err
	}
	s.mimeTypes = append(s.mimeTypes, mimeType)
	return nil
}

func run(t *testing.T, g *Gateway, media contractx.MediaSender, tool, rawArgs string) contractx.ToolResult {
	t.Helper()
	results := g.Execute(context.Background(), "5511988887777", media, []contractx.ToolRequest{
		{CallID: "call-1", Tool: tool, RawArgs: rawArgs},
	})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	return results[0]
}

func TestScheduleVisitSyncedAndLocalOnly(t *testing.T) {
	t.Parallel()

	leads := &stubLeads{}
	visits := &stubVisits{}
	cal := &stubCalendar{}
	g := NewGateway(GatewayConfig{Leads: leads, Visits: visits, Units: &stubUnits{}, Calendar: cal, Folder: &stubFolder{}})

	result := run(t, g, &stubMedia{}, ToolScheduleVisit, `{"data_horario":"sexta 15h"}`)
	if !result.OK {
		t.Fatalf("expected success, got %q", result.Detail)
	}
	if !strings.Contains(result.Detail, "sincronizada com a agenda") {
		t.Fatalf("expected synced wording, got %q", result.Detail)
	}
	if len(visits.visits) != 1 {
		t.Fatalf("visit not recorded")
	}
	if got := leads.leads["5511988887777"].Status; got != contractx.LeadStatusVisitScheduled {
		t.Fatalf("lead status not bumped, got %q", got)
	}

	cal.err = errors.New("calendar down")
	result = run(t, g, &stubMedia{}, ToolScheduleVisit, `{"data_horario":"sábado 10h"}`)
	if !result.OK {
		t.Fatalf("local save must still succeed, got %q", result.Detail)
	}
	if !strings.Contains(result.Detail, "sem sincronização") {
		t.Fatalf("expected local-only wording, got %q", result.Detail)
	}
	if len(visits.visits) != 2 {
		t.Fatal("visit row must be written regardless of calendar outcome")
	}
}

func TestScheduleVisitWithoutCalendar(t *testing.T) {
	t.Parallel()

	g := NewGateway(GatewayConfig{Leads: &stubLeads{}, Visits: &stubVisits{}, Units: &stubUnits{}, Folder: &stubFolder{}})

	result := run(t, g, &stubMedia{}, ToolScheduleVisit, `{"data_horario":"terça 9h"}`)
	if !result.OK {
		t.Fatalf("expected success, got %q", result.Detail)
	}
	if !strings.Contains(result.Detail, "sem sincronização") {
		t.Fatalf("nil calendar must report local-only save, got %q", result.Detail)
	}
}

func TestScheduleVisitMissingTime(t *testing.T) {
	t.Parallel()

	visits := &stubVisits{}
	g := NewGateway(GatewayConfig{Leads: &stubLeads{}, Visits: visits, Units: &stubUnits{}, Folder: &stubFolder{}})

	result := run(t, g, &stubMedia{}, ToolScheduleVisit, `{"data_horario":"  "}`)
	if result.OK {
		t.Fatal("expected failure for missing time")
	}
	if !strings.Contains(result.Detail, "Horário inválido") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
	if len(visits.visits) != 0 {
		t.Fatal("no visit row may be written for an invalid time")
	}
}

func TestScheduleVisitInsertFailure(t *testing.T) {
	t.Parallel()

	cal := &stubCalendar{}
	g := NewGateway(GatewayConfig{
		Leads:    &stubLeads{},
		Visits:   &stubVisits{insertErr: errors.New("db down")},
		Units:    &stubUnits{},
		Calendar: cal,
		Folder:   &stubFolder{},
	})

	result := run(t, g, &stubMedia{}, ToolScheduleVisit, `{"data_horario":"quinta 11h"}`)
	if result.OK {
		t.Fatal("expected failure when the insert fails")
	}
	if !strings.Contains(result.Detail, "indisponível") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
	if cal.calls != 0 {
		t.Fatal("calendar must not be called when the local save fails")
	}
}

func TestSendTourVideoMissingFile(t *testing.T) {
	t.Parallel()

	g := NewGateway(GatewayConfig{
		Leads:             &stubLeads{},
		Visits:            &stubVisits{},
		Units:             &stubUnits{},
		Folder:            &stubFolder{},
		FallbackVideoPath: filepath.Join(t.TempDir(), "missing.mp4"),
	})

	result := run(t, g, &stubMedia{}, ToolSendTourVideo, "{}")
	if result.OK {
		t.Fatal("expected failure for missing video")
	}
	if !strings.Contains(result.Detail, "não encontrado") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestSendTourVideoPrefersUnitVideo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unitVideo := filepath.Join(dir, "unit-02.mp4")
	if err := os.WriteFile(unitVideo, []byte("mp4"), 0o644); err != nil {
		t.Fatalf("write video fixture: %v", err)
	}

	media := &stubMedia{}
	g := NewGateway(GatewayConfig{
		Leads:  &stubLeads{},
		Visits: &stubVisits{},
		Units: &stubUnits{units: []contractx.AvailableUnit{
			{UnitNumber: "01", Price: 750, Status: "disponivel"},
			{UnitNumber: "02", Price: 780, Status: "disponivel", VideoPath: unitVideo},
		}},
		Folder:            &stubFolder{},
		FallbackVideoPath: filepath.Join(dir, "fallback.mp4"),
	})

	result := run(t, g, media, ToolSendTourVideo, "{}")
	if !result.OK {
		t.Fatalf("expected success, got %q", result.Detail)
	}
	if len(media.mimeTypes) != 1 || media.mimeTypes[0] != "video/mp4" {
		t.Fatalf("unexpected dispatches: %v", media.mimeTypes)
	}
}

func TestSendInfoFolderDispatchFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "folder.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write folder fixture: %v", err)
	}

	g := NewGateway(GatewayConfig{Leads: &stubLeads{}, Visits: &stubVisits{}, Units: &stubUnits{}, Folder: &stubFolder{path: path}})

	result := run(t, g, &stubMedia{err: errors.New("transport down")}, ToolSendInfoFolder, "{}")
	if result.OK {
		t.Fatal("expected dispatch failure")
	}
	if !strings.Contains(result.Detail, "Erro ao enviar o arquivo") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestSendInfoFolderGenerationFailure(t *testing.T) {
	t.Parallel()

	g := NewGateway(GatewayConfig{
		Leads:  &stubLeads{},
		Visits: &stubVisits{},
		Units:  &stubUnits{},
		Folder: &stubFolder{err: errors.New("render failed")},
	})

	result := run(t, g, &stubMedia{}, ToolSendInfoFolder, "{}")
	if result.OK {
		t.Fatal("expected generation failure")
	}
	if !strings.Contains(result.Detail, "Erro ao gerar") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestMalformedArgumentsBecomeToolError(t *testing.T) {
	t.Parallel()

	g := NewGateway(GatewayConfig{Leads: &stubLeads{}, Visits: &stubVisits{}, Units: &stubUnits{}, Folder: &stubFolder{}})

	result := run(t, g, &stubMedia{}, ToolRegisterLead, `{"nome":`)
	if result.OK {
		t.Fatal("expected failure for malformed arguments")
	}
	if !strings.Contains(result.Detail, "Não foi possível entender") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestPanickingCollaboratorIsContained(t *testing.T) {
	t.Parallel()

	g := NewGateway(GatewayConfig{Leads: &stubLeads{panicOn: true}, Visits: &stubVisits{}, Units: &stubUnits{}, Folder: &stubFolder{}})

	result := run(t, g, &stubMedia{}, ToolRegisterLead, `{"nome":"Ana"}`)
	if result.OK {
		t.Fatal("expected failure result from panicking collaborator")
	}
	if !strings.Contains(result.Detail, "Erro técnico") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestRequestHumanAlwaysSucceeds(t *testing.T) {
	t.Parallel()

	g := NewGateway(GatewayConfig{Leads: &stubLeads{}, Visits: &stubVisits{}, Units: &stubUnits{}, Folder: &stubFolder{}})

	result := run(t, g, &stubMedia{}, ToolRequestHuman, "{}")
	if !result.OK {
		t.Fatalf("request_human must always succeed, got %q", result.Detail)
	}
}
