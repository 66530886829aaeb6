package bot

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/contoso/talentbot/internal/cards"
	"github.com/contoso/talentbot/internal/talent"
	"github.com/contoso/talentbot/internal/teams"
)

// captureSender records outbound activities instead of sending them.
type captureSender struct {
	replies []*teams.Activity
	updates []*teams.Activity
	nextID  string
}

func (s *captureSender) ReplyTo(_ context.Context, _ *teams.Activity, reply *teams.Activity) (string, error) {
	s.replies = append(s.replies, reply)
	if s.nextID == "" {
		return "activity-1", nil
	}
	return s.nextID, nil
}

func (s *captureSender) UpdateActivity(_ context.Context, _, _, _ string, reply *teams.Activity) error {
	s.updates = append(s.updates, reply)
	return nil
}

// fixedProviders serves a canned candidate and position.
type fixedProviders struct {
	candidate talent.Candidate
	position  talent.OpenPosition
}

func (f *fixedProviders) TopCandidates(reqID string) []talent.Candidate {
	c := f.candidate
	c.ReqID = reqID
	return []talent.Candidate{c, c, c}
}

func (f *fixedProviders) ByName(name string) talent.Candidate {
	c := f.candidate
	c.Name = name
	return c
}

func (f *fixedProviders) ListOpenPositions() []talent.OpenPosition {
	return []talent.OpenPosition{f.position, f.position}
}

func (f *fixedProviders) PositionForReqID(reqID string) talent.OpenPosition {
	p := f.position
	p.ReqID = reqID
	return p
}

func newTestEngine() (*Engine, *captureSender, *fixedProviders) {
	providers := &fixedProviders{
		candidate: talent.Candidate{
			Name:        "Jane Doe",
			CurrentRole: "UX Designer",
			Stage:       talent.StageInterviewing,
			Hires:       1,
			NoHires:     0,
			ReqID:       "FIXED123",
		},
		position: talent.OpenPosition{
			Title:         "Senior Program Manager",
			Applicants:    4,
			DaysOpen:      7,
			HiringManager: "Pat Lee",
			ReqID:         "FIXED123",
		},
	}
	sender := &captureSender{}
	engine := NewEngine(providers, providers, sender, zap.NewNop())
	return engine, sender, providers
}

func inbound(text string) *teams.Activity {
	return &teams.Activity{
		Type:         teams.TypeMessage,
		ID:           "inbound-1",
		Text:         text,
		From:         teams.Account{ID: "user-1", Name: "Sam"},
		Conversation: teams.Conversation{ID: "conv-1"},
		ServiceURL:   "https://smba.example.com",
	}
}

func TestHelpTurn(t *testing.T) {
	engine, sender, _ := newTestEngine()
	conv := NewConversation("conv-1", NewMemoryStore())

	if err := engine.OnMessage(context.Background(), conv, inbound("help")); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
	if len(sender.replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(sender.replies))
	}
	text := sender.replies[0].Text
	if !strings.Contains(text, "Sure, I can provide help info about me.") {
		t.Errorf("missing help first line: %q", text)
	}
	if !strings.Contains(text, "open positions") {
		t.Errorf("help text should enumerate commands: %q", text)
	}
}

func TestUnrecognizedTurn(t *testing.T) {
	engine, sender, _ := newTestEngine()
	conv := NewConversation("conv-1", NewMemoryStore())

	if err := engine.OnMessage(context.Background(), conv, inbound("fhqwhgads")); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
	if len(sender.replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(sender.replies))
	}
	if !strings.Contains(sender.replies[0].Text, "did not understand") {
		t.Errorf("expected the didn't-understand line, got %q", sender.replies[0].Text)
	}
}

func TestTopCandidatesTurn(t *testing.T) {
	engine, sender, _ := newTestEngine()
	conv := NewConversation("conv-1", NewMemoryStore())

	if err := engine.OnMessage(context.Background(), conv, inbound("top candidates ABCD1234")); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
	if len(sender.replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(sender.replies))
	}

	reply := sender.replies[0]
	if reply.AttachmentLayout != teams.LayoutCarousel {
		t.Errorf("layout: got %q, want carousel", reply.AttachmentLayout)
	}
	if len(reply.Attachments) != 3 {
		t.Fatalf("expected 3 candidate cards, got %d", len(reply.Attachments))
	}
	card, ok := reply.Attachments[0].Content.(cards.ThumbnailCard)
	if !ok {
		t.Fatalf("attachment content is %T, want ThumbnailCard", reply.Attachments[0].Content)
	}
	if card.Subtitle != "Job ID: ABCD1234" {
		t.Errorf("subtitle: got %q", card.Subtitle)
	}
}

func TestScheduleInterviewTurnCachesMessage(t *testing.T) {
	engine, sender, _ := newTestEngine()
	sender.nextID = "sent-42"
	store := NewMemoryStore()
	conv := NewConversation("conv-1", store)

	if err := engine.OnMessage(context.Background(), conv, inbound("schedule interview John Smith ABCD1234")); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
	if len(sender.replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(sender.replies))
	}

	reply := sender.replies[0]
	if !strings.Contains(reply.Text, "schedule an interview") {
		t.Errorf("text: got %q", reply.Text)
	}
	if len(reply.Attachments) != 1 || reply.Attachments[0].ContentType != cards.ConnectorContentType {
		t.Fatalf("expected one connector card attachment, got %+v", reply.Attachments)
	}

	cached, err := conv.Get(context.Background(), "ABCD1234")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cached == nil {
		t.Fatal("expected the sent message to be cached under the req ID")
	}
	if cached.ActivityID != "sent-42" {
		t.Errorf("cached activity ID: got %q, want sent-42", cached.ActivityID)
	}
	if cached.Card.Title != "John Smith" {
		t.Errorf("cached card title: got %q, want John Smith", cached.Card.Title)
	}
}

func TestOpenPositionsTurn(t *testing.T) {
	engine, sender, providers := newTestEngine()
	conv := NewConversation("conv-1", NewMemoryStore())

	if err := engine.OnMessage(context.Background(), conv, inbound("open positions")); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
	if len(sender.replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(sender.replies))
	}

	reply := sender.replies[0]
	if !strings.Contains(reply.Text, "Hi Sam!") {
		t.Errorf("greeting: got %q", reply.Text)
	}
	want := len(providers.ListOpenPositions()) + 1 // positions plus trailing actions card
	if len(reply.Attachments) != want {
		t.Fatalf("expected %d attachments, got %d", want, len(reply.Attachments))
	}
	last, ok := reply.Attachments[len(reply.Attachments)-1].Content.(cards.ThumbnailCard)
	if !ok || len(last.Buttons) == 0 || last.Title != "" {
		t.Errorf("trailing attachment should be the buttons-only actions card, got %+v", last)
	}
}

func TestCandidateDetailsTurn(t *testing.T) {
	engine, sender, _ := newTestEngine()
	conv := NewConversation("conv-1", NewMemoryStore())

	if err := engine.OnMessage(context.Background(), conv, inbound("candidate details Jane Doe")); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
	if len(sender.replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(sender.replies))
	}
	card, ok := sender.replies[0].Attachments[0].Content.(cards.ThumbnailCard)
	if !ok {
		t.Fatalf("attachment content is %T", sender.replies[0].Attachments[0].Content)
	}
	if card.Title != "Jane Doe" {
		t.Errorf("title: got %q, want Jane Doe", card.Title)
	}
	if !strings.Contains(card.Text, "No hire:") {
		t.Errorf("detail card should include hire counts: %q", card.Text)
	}
}

func TestAssignUnknownTaskIsSilentNoOp(t *testing.T) {
	engine, sender, _ := newTestEngine()
	conv := NewConversation("conv-1", NewMemoryStore())

	if err := engine.OnMessage(context.Background(), conv, inbound("assign NOPE1234")); err != nil {
		t.Fatalf("OnMessage should not fail on unknown task: %v", err)
	}
	if len(sender.replies) != 0 || len(sender.updates) != 0 {
		t.Errorf("expected zero outbound messages, got %d replies and %d updates",
			len(sender.replies), len(sender.updates))
	}
}

func TestAssignKnownTaskUpdatesInPlace(t *testing.T) {
	engine, sender, _ := newTestEngine()
	store := NewMemoryStore()
	conv := NewConversation("conv-1", store)

	seed := CachedMessage{
		ActivityID: "sent-7",
		Card:       cards.ThumbnailCard{Title: "Jane Doe", Subtitle: "For position: UX Designer"},
	}
	if err := conv.Put(context.Background(), "ABCD1234", seed); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := engine.OnMessage(context.Background(), conv, inbound("assign ABCD1234")); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
	if len(sender.replies) != 0 {
		t.Errorf("assign should not post new messages, got %d", len(sender.replies))
	}
	if len(sender.updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(sender.updates))
	}
	card, ok := sender.updates[0].Attachments[0].Content.(cards.ThumbnailCard)
	if !ok {
		t.Fatalf("update content is %T", sender.updates[0].Attachments[0].Content)
	}
	if card.Subtitle != "Assigned to: Sam" {
		t.Errorf("subtitle: got %q, want Assigned to: Sam", card.Subtitle)
	}
	if len(card.Buttons) != 2 {
		t.Errorf("expected replaced button row of 2, got %d", len(card.Buttons))
	}
}

func TestWelcomeTurn(t *testing.T) {
	engine, sender, _ := newTestEngine()
	conv := NewConversation("conv-1", NewMemoryStore())

	if err := engine.OnMessage(context.Background(), conv, inbound("welcome")); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
	if len(sender.replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(sender.replies))
	}
	if !strings.Contains(sender.replies[0].Text, "Welcome to the Contoso HR app") {
		t.Errorf("welcome text: got %q", sender.replies[0].Text)
	}
}

func TestMentionIsStrippedBeforeParsing(t *testing.T) {
	engine, sender, _ := newTestEngine()
	conv := NewConversation("conv-1", NewMemoryStore())

	activity := inbound("<at>talentbot</at> open positions")
	if err := engine.OnMessage(context.Background(), conv, activity); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
	if len(sender.replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(sender.replies))
	}
	if !strings.Contains(sender.replies[0].Text, "active postings") {
		t.Errorf("mention should be stripped before parsing, got %q", sender.replies[0].Text)
	}
}
