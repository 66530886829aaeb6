package bot

import (
	"encoding/json"
	"strings"
)

// Kind identifies a resolved command.
type Kind string

const (
	KindHelp              Kind = "help"
	KindWelcome           Kind = "welcome"
	KindTopCandidates     Kind = "topCandidates"
	KindScheduleInterview Kind = "scheduleInterview"
	KindOpenPositions     Kind = "openPositions"
	KindCandidateDetails  Kind = "candidateDetails"
	KindAssignTask        Kind = "assignTask"
	KindUnrecognized      Kind = "unrecognized"
)

// Command is the typed result of resolving an inbound utterance. Every
// command maps to exactly one rendering path; Unrecognized always renders
// the help response, nothing is silently dropped.
type Command struct {
	Kind      Kind
	ReqID     string
	FirstName string
	LastName  string
	TaskID    string
	// Hint is the first line of the reply for Help, Welcome and
	// Unrecognized commands.
	Hint string
}

// CandidateName joins the candidate name parts.
func (c Command) CandidateName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

const (
	hintHelp         = "Sure, I can provide help info about me."
	hintWelcome      = "## Welcome to the Contoso HR app"
	hintUnrecognized = "I'm sorry, I did not understand you :("
)

// actionPayload is the structured payload carried by card buttons. It is
// decoded against this schema at the boundary; anything that does not fit
// is ignored and resolution falls back to the message text.
type actionPayload struct {
	Name  string `json:"name"`
	ReqID string `json:"reqId"`
}

func decodePayload(raw json.RawMessage) *actionPayload {
	if len(raw) == 0 {
		return nil
	}
	var p actionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	if p.Name == "" && p.ReqID == "" {
		return nil
	}
	return &p
}

func splitName(full string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

func unrecognized() Command {
	return Command{Kind: KindUnrecognized, Hint: hintUnrecognized}
}

// Resolve parses a normalized message into a Command. A structured button
// payload, when present and well-formed, wins over text parsing.
//
// The text convention is a fixed two-token command prefix: tokens[0] selects
// the command and tokens[1] is skipped, except for "assign" where it carries
// the task ID. Remaining tokens are keywords. Command matching is
// substring-based for compatibility with the clients already talking to the
// bot, so e.g. "topmost" still selects the top-candidates command.
func Resolve(text string, payload json.RawMessage) Command {
	if p := decodePayload(payload); p != nil {
		first, last := splitName(p.Name)
		if p.Name != "" && p.ReqID != "" {
			return Command{Kind: KindScheduleInterview, FirstName: first, LastName: last, ReqID: p.ReqID}
		}
		if p.Name != "" {
			return Command{Kind: KindCandidateDetails, FirstName: first, LastName: last}
		}
	}

	tokens := strings.Fields(text)

	if len(tokens) < 2 {
		phrase := strings.ToLower(strings.TrimSpace(text))
		switch {
		case strings.Contains(phrase, "help"):
			return Command{Kind: KindHelp, Hint: hintHelp}
		case strings.Contains(phrase, "welcome"),
			strings.Contains(phrase, "hello"),
			strings.Contains(phrase, "hi"):
			return Command{Kind: KindWelcome, Hint: hintWelcome}
		default:
			return unrecognized()
		}
	}

	cmd := strings.ToLower(tokens[0])
	keywords := tokens[2:]

	switch {
	case strings.Contains(cmd, "top") && len(keywords) > 0:
		return Command{Kind: KindTopCandidates, ReqID: keywords[0]}

	case strings.Contains(cmd, "schedule"):
		if len(keywords) == 3 {
			return Command{
				Kind:      KindScheduleInterview,
				FirstName: keywords[0],
				LastName:  keywords[1],
				ReqID:     keywords[2],
			}
		}
		return unrecognized()

	case strings.Contains(cmd, "open"):
		return Command{Kind: KindOpenPositions}

	case strings.Contains(cmd, "candidate"):
		if len(keywords) == 0 {
			return unrecognized()
		}
		first, last := splitName(strings.Join(keywords, " "))
		return Command{Kind: KindCandidateDetails, FirstName: first, LastName: last}

	case strings.Contains(cmd, "assign"):
		return Command{Kind: KindAssignTask, TaskID: tokens[1]}

	default:
		return unrecognized()
	}
}
