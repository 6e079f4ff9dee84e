package store

import (
	"testing"
	"time"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

func strPtr(s string) *string { return &s }

func TestMergeLeadKeepsNameOnNilIncoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	existing := contractx.Lead{
		Phone:  "5511999990000",
		Name:   strPtr("Alice"),
		Status: contractx.LeadStatusNew,
	}

	merged := mergeLead(existing, contractx.Lead{Phone: "5511999990000"}, now)
	if merged.Name == nil || *merged.Name != "Alice" {
		t.Fatalf("nil incoming name must keep stored name, got %+v", merged.Name)
	}
	if !merged.LastContactAt.Equal(now) {
		t.Fatal("last contact must always be bumped")
	}
}

func TestMergeLeadOverwritesNameWhenProvided(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	existing := contractx.Lead{Phone: "5511999990000", Name: strPtr("Alice")}

	merged := mergeLead(existing, contractx.Lead{Phone: "5511999990000", Name: strPtr("Bob")}, now)
	if merged.Name == nil || *merged.Name != "Bob" {
		t.Fatalf("provided name must overwrite, got %+v", merged.Name)
	}
}

func TestMergeLeadBlankNameDoesNotClobber(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	existing := contractx.Lead{Phone: "5511999990000", Name: strPtr("Alice")}

	merged := mergeLead(existing, contractx.Lead{Phone: "5511999990000", Name: strPtr("   ")}, now)
	if merged.Name == nil || *merged.Name != "Alice" {
		t.Fatalf("blank incoming name must keep stored name, got %+v", merged.Name)
	}
}

func TestMergeLeadInterestReplaceIfProvided(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	existing := contractx.Lead{Phone: "5511999990000", Interest: strPtr("informacao")}

	merged := mergeLead(existing, contractx.Lead{Phone: "5511999990000", Interest: strPtr("visita")}, now)
	if merged.Interest == nil || *merged.Interest != "visita" {
		t.Fatalf("provided interest must replace, got %+v", merged.Interest)
	}

	merged = mergeLead(merged, contractx.Lead{Phone: "5511999990000"}, now)
	if merged.Interest == nil || *merged.Interest != "visita" {
		t.Fatalf("absent interest must keep stored value, got %+v", merged.Interest)
	}
}

func TestMergeLeadFirstContactDefaults(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	merged := mergeLead(contractx.Lead{}, contractx.Lead{Phone: "5511999990000"}, now)
	if merged.Phone != "5511999990000" {
		t.Fatalf("phone not taken from incoming: %q", merged.Phone)
	}
	if merged.Status != contractx.LeadStatusNew {
		t.Fatalf("first contact must default to status new, got %q", merged.Status)
	}
}

func TestMergeLeadStatusReplaceIfProvided(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	existing := contractx.Lead{Phone: "5511999990000", Status: contractx.LeadStatusNew}

	merged := mergeLead(existing, contractx.Lead{Phone: "5511999990000", Status: contractx.LeadStatusVisitScheduled}, now)
	if merged.Status != contractx.LeadStatusVisitScheduled {
		t.Fatalf("provided status must replace, got %q", merged.Status)
	}

	merged = mergeLead(merged, contractx.Lead{Phone: "5511999990000"}, now)
	if merged.Status != contractx.LeadStatusVisitScheduled {
		t.Fatalf("absent status must keep stored value, got %q", merged.Status)
	}
}
