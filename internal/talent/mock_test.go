package talent

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopCandidatesCapAndReqID(t *testing.T) {
	p := NewSeededCandidates("https://bot.example.com", 42)

	got := p.TopCandidates("ABCD1234")
	if len(got) != DefaultTopCandidates {
		t.Fatalf("expected %d candidates, got %d", DefaultTopCandidates, len(got))
	}
	for i, c := range got {
		if c.ReqID != "ABCD1234" {
			t.Errorf("candidate %d: reqId %q, want ABCD1234", i, c.ReqID)
		}
		if !strings.HasPrefix(c.ProfilePicture, "https://bot.example.com/images/candidate_") {
			t.Errorf("candidate %d: picture %q", i, c.ProfilePicture)
		}
		if c.Name == "" || c.CurrentRole == "" {
			t.Errorf("candidate %d: incomplete record %+v", i, c)
		}
	}
}

func TestByNameOverridesName(t *testing.T) {
	p := NewSeededCandidates("https://bot.example.com", 42)

	c := p.ByName("John Smith")
	if c.Name != "John Smith" {
		t.Errorf("name: got %q, want John Smith", c.Name)
	}
	if c.CurrentRole == "" || c.ReqID == "" {
		t.Errorf("incomplete record %+v", c)
	}
}

func TestSeededCandidatesAreDeterministic(t *testing.T) {
	a := NewSeededCandidates("https://bot.example.com", 7).TopCandidates("R1")
	b := NewSeededCandidates("https://bot.example.com", 7).TopCandidates("R1")

	// ReqID generation is uuid-based and intentionally not seeded, but here
	// both lists carry the queried req ID, so full equality must hold.
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different candidates:\n%+v\n%+v", a, b)
	}
}

func TestListOpenPositionsCap(t *testing.T) {
	p := NewSeededPositions(42)

	got := p.ListOpenPositions()
	if len(got) != DefaultMaxPositions {
		t.Fatalf("expected %d positions, got %d", DefaultMaxPositions, len(got))
	}
	for i, pos := range got {
		if pos.Title == "" || pos.HiringManager == "" || pos.ReqID == "" {
			t.Errorf("position %d: incomplete record %+v", i, pos)
		}
		if pos.ReqID != strings.ToUpper(pos.ReqID) {
			t.Errorf("position %d: reqId %q not upper-cased", i, pos.ReqID)
		}
	}
}

func TestPositionForReqID(t *testing.T) {
	p := NewSeededPositions(42)

	pos := p.PositionForReqID("ABCD1234")
	if pos.ReqID != "ABCD1234" {
		t.Errorf("reqId: got %q, want ABCD1234", pos.ReqID)
	}
	if pos.Title == "" {
		t.Errorf("incomplete record %+v", pos)
	}
}

func TestNewReqID(t *testing.T) {
	id := NewReqID()
	if len(id) != 8 {
		t.Errorf("length: got %d, want 8 (%q)", len(id), id)
	}
	if id != strings.ToUpper(id) {
		t.Errorf("not upper-cased: %q", id)
	}
}
