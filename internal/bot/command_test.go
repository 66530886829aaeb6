package bot

import (
	"encoding/json"
	"testing"
)

func TestResolveShortPhrases(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"help", KindHelp},
		{"Help", KindHelp},
		{"hello", KindWelcome},
		{"hi", KindWelcome},
		{"welcome", KindWelcome},
		{"banana", KindUnrecognized},
		{"", KindUnrecognized},
	}

	for _, tt := range tests {
		got := Resolve(tt.text, nil)
		if got.Kind != tt.want {
			t.Errorf("Resolve(%q): got %q, want %q", tt.text, got.Kind, tt.want)
		}
	}
}

func TestResolveTopCandidates(t *testing.T) {
	cmd := Resolve("top candidates ABCD1234", nil)
	if cmd.Kind != KindTopCandidates {
		t.Fatalf("got %q, want %q", cmd.Kind, KindTopCandidates)
	}
	if cmd.ReqID != "ABCD1234" {
		t.Errorf("reqId: got %q, want ABCD1234", cmd.ReqID)
	}
}

func TestResolveTopWithoutKeywords(t *testing.T) {
	// "top candidates" has two tokens and no keywords; without a req ID the
	// command cannot resolve.
	cmd := Resolve("top candidates", nil)
	if cmd.Kind != KindUnrecognized {
		t.Errorf("got %q, want %q", cmd.Kind, KindUnrecognized)
	}
}

func TestResolveScheduleInterview(t *testing.T) {
	cmd := Resolve("schedule interview John Smith ABCD1234", nil)
	if cmd.Kind != KindScheduleInterview {
		t.Fatalf("got %q, want %q", cmd.Kind, KindScheduleInterview)
	}
	if cmd.FirstName != "John" || cmd.LastName != "Smith" {
		t.Errorf("name: got %q %q, want John Smith", cmd.FirstName, cmd.LastName)
	}
	if cmd.ReqID != "ABCD1234" {
		t.Errorf("reqId: got %q, want ABCD1234", cmd.ReqID)
	}
	if cmd.CandidateName() != "John Smith" {
		t.Errorf("CandidateName: got %q", cmd.CandidateName())
	}
}

func TestResolveScheduleWithoutKeywords(t *testing.T) {
	// Two tokens, no keywords: must resolve to a clarification, not crash.
	cmd := Resolve("schedule interview", nil)
	if cmd.Kind != KindUnrecognized {
		t.Fatalf("got %q, want %q", cmd.Kind, KindUnrecognized)
	}
	if cmd.Hint == "" {
		t.Error("expected a clarification hint")
	}
}

func TestResolveScheduleWrongKeywordCount(t *testing.T) {
	cmd := Resolve("schedule interview John ABCD1234", nil)
	if cmd.Kind != KindUnrecognized {
		t.Errorf("got %q, want %q", cmd.Kind, KindUnrecognized)
	}
}

func TestResolveOpenPositions(t *testing.T) {
	cmd := Resolve("open positions", nil)
	if cmd.Kind != KindOpenPositions {
		t.Errorf("got %q, want %q", cmd.Kind, KindOpenPositions)
	}
}

func TestResolveCandidateDetails(t *testing.T) {
	cmd := Resolve("candidate details John Smith", nil)
	if cmd.Kind != KindCandidateDetails {
		t.Fatalf("got %q, want %q", cmd.Kind, KindCandidateDetails)
	}
	if cmd.CandidateName() != "John Smith" {
		t.Errorf("name: got %q, want John Smith", cmd.CandidateName())
	}
}

func TestResolveCandidateWithoutName(t *testing.T) {
	cmd := Resolve("candidate details", nil)
	if cmd.Kind != KindUnrecognized {
		t.Errorf("got %q, want %q", cmd.Kind, KindUnrecognized)
	}
}

func TestResolveAssignTask(t *testing.T) {
	// assign is the one command reading the otherwise-skipped second token.
	cmd := Resolve("assign ABCD1234 please", nil)
	if cmd.Kind != KindAssignTask {
		t.Fatalf("got %q, want %q", cmd.Kind, KindAssignTask)
	}
	if cmd.TaskID != "ABCD1234" {
		t.Errorf("taskId: got %q, want ABCD1234", cmd.TaskID)
	}
}

func TestResolveSubstringMatching(t *testing.T) {
	// Command matching is substring-based, preserved for compatibility:
	// "desktop" contains "top".
	cmd := Resolve("desktop computers ABCD1234", nil)
	if cmd.Kind != KindTopCandidates {
		t.Errorf("got %q, want %q", cmd.Kind, KindTopCandidates)
	}
}

func TestResolvePayloadSchedule(t *testing.T) {
	payload := json.RawMessage(`{"name":"Jane Doe","reqId":"ABCD1234"}`)
	cmd := Resolve("schedule interview", payload)
	if cmd.Kind != KindScheduleInterview {
		t.Fatalf("got %q, want %q", cmd.Kind, KindScheduleInterview)
	}
	if cmd.CandidateName() != "Jane Doe" {
		t.Errorf("name: got %q, want Jane Doe", cmd.CandidateName())
	}
	if cmd.ReqID != "ABCD1234" {
		t.Errorf("reqId: got %q, want ABCD1234", cmd.ReqID)
	}
}

func TestResolvePayloadNameOnly(t *testing.T) {
	payload := json.RawMessage(`{"name":"Jane Doe"}`)
	cmd := Resolve("", payload)
	if cmd.Kind != KindCandidateDetails {
		t.Fatalf("got %q, want %q", cmd.Kind, KindCandidateDetails)
	}
	if cmd.CandidateName() != "Jane Doe" {
		t.Errorf("name: got %q, want Jane Doe", cmd.CandidateName())
	}
}

func TestResolveMalformedPayloadFallsBackToText(t *testing.T) {
	tests := []json.RawMessage{
		json.RawMessage(`{`),
		json.RawMessage(`{"unrelated":true}`),
		json.RawMessage(`[]`),
	}
	for _, payload := range tests {
		cmd := Resolve("open positions", payload)
		if cmd.Kind != KindOpenPositions {
			t.Errorf("payload %s: got %q, want %q", payload, cmd.Kind, KindOpenPositions)
		}
	}
}
