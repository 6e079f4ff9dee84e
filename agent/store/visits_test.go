package store

import (
	"context"
	"testing"

	contractx "github.com/kitnetlab/agent/agent/contract"
)

func TestVisitInsertValidation(t *testing.T) {
	t.Parallel()

	s := NewVisitStore(nil)

	err := s.Insert(context.Background(), contractx.Visit{RequestedAt: "sexta 15h"})
	if err == nil {
		t.Fatal("expected error for missing phone")
	}

	err = s.Insert(context.Background(), contractx.Visit{Phone: "5511999990000", RequestedAt: "  "})
	if err == nil {
		t.Fatal("expected error for missing requested time")
	}
}
