package calllog

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DISIA-TECH/tool-content-backend/internal/providers"
)

func TestStoreRecordRecent(t *testing.T) {
	s := NewStore(3)
	if s.Len() != 0 {
		t.Fatalf("new store should be empty, len = %d", s.Len())
	}

	for i := 1; i <= 2; i++ {
		s.Record(&Call{ID: fmt.Sprintf("c%d", i)})
	}
	got := s.Recent(0)
	if len(got) != 2 || got[0].ID != "c2" || got[1].ID != "c1" {
		t.Fatalf("want newest first, got %v", got)
	}
}

func TestStoreEvictsOldest(t *testing.T) {
	s := NewStore(3)
	for i := 1; i <= 5; i++ {
		s.Record(&Call{ID: fmt.Sprintf("c%d", i)})
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	got := s.Recent(0)
	if got[0].ID != "c5" || got[2].ID != "c3" {
		t.Errorf("eviction order wrong: %v", got)
	}
	if limited := s.Recent(1); len(limited) != 1 || limited[0].ID != "c5" {
		t.Errorf("limit not applied: %v", limited)
	}
}

func TestFromChatResult(t *testing.T) {
	temp := 0.7
	res := &providers.ChatResult{
		Provider:         "openai",
		ModelUsed:        "gpt-4",
		PromptTokens:     10,
		CompletionTokens: 20,
		TotalTime:        1500 * time.Millisecond,
	}
	call := FromChatResult(res, nil, RecordOptions{Variant: "wins", Persona: "pablo", Temperature: &temp})
	if !call.Success || call.Model != "gpt-4" || call.LatencyMs != 1500 {
		t.Errorf("unexpected call: %+v", call)
	}
	if call.Variant != "wins" || call.Persona != "pablo" {
		t.Errorf("context not carried: %+v", call)
	}

	failed := FromChatResult(nil, errors.New("boom"), RecordOptions{Variant: "wins"})
	if failed.Success || failed.Error != "boom" {
		t.Errorf("failure not recorded: %+v", failed)
	}
}
