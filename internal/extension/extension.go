// Package extension answers compose-extension invokes: search-style queries
// resolved synchronously into card lists, plus the task-module card for
// creating a posting. It is a stateless sibling of the dialog engine.
package extension

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/contoso/talentbot/internal/cards"
	"github.com/contoso/talentbot/internal/talent"
	"github.com/contoso/talentbot/internal/teams"
)

// Invoke names the handler answers.
const (
	InvokeQuery     = "composeExtension/query"
	InvokeFetchTask = "composeExtension/fetchTask"
)

// Command IDs declared in the app manifest.
const (
	CommandSearchPositions  = "searchPositions"
	CommandSearchCandidates = "searchCandidates"
	CommandNewJobPosting    = "newJobPosting"
)

// initialRun is the sentinel parameter sent on first open, before the user
// has typed anything.
const initialRun = "initialRun"

// Query is a compose-extension query payload.
type Query struct {
	CommandID  string      `json:"commandId"`
	Parameters []Parameter `json:"parameters"`
}

// Parameter is one name/value pair of a query.
type Parameter struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ResultAttachment pairs a full card with its preview card.
type ResultAttachment struct {
	ContentType string            `json:"contentType"`
	Content     any               `json:"content"`
	Preview     *cards.Attachment `json:"preview,omitempty"`
}

// Result is the attachment list returned for a query.
type Result struct {
	AttachmentLayout string             `json:"attachmentLayout"`
	Type             string             `json:"type"`
	Attachments      []ResultAttachment `json:"attachments"`
}

// TaskInfo describes the modal shown for a task-module invoke.
type TaskInfo struct {
	Type  string        `json:"type"`
	Value TaskInfoValue `json:"value"`
}

// TaskInfoValue sizes the modal and carries its card.
type TaskInfoValue struct {
	Title  string           `json:"title"`
	Height int              `json:"height"`
	Width  int              `json:"width"`
	Card   cards.Attachment `json:"card"`
}

// Response is the invoke response envelope.
type Response struct {
	ComposeExtension *Result   `json:"composeExtension,omitempty"`
	Task             *TaskInfo `json:"task,omitempty"`
}

// Handler resolves extension invokes against the data providers.
type Handler struct {
	candidates talent.CandidateProvider
	positions  talent.PositionProvider
	logger     *zap.Logger
}

// NewHandler creates an extension handler.
func NewHandler(candidates talent.CandidateProvider, positions talent.PositionProvider, logger *zap.Logger) *Handler {
	return &Handler{candidates: candidates, positions: positions, logger: logger}
}

// Handle answers an invoke activity. It returns nil for malformed or
// unrecognized invokes; that is not an error, the caller just acknowledges
// the request.
func (h *Handler) Handle(activity *teams.Activity) *Response {
	switch activity.Name {
	case InvokeFetchTask:
		return h.handleFetchTask(activity)
	case InvokeQuery:
		return h.handleQuery(activity)
	default:
		return nil
	}
}

func (h *Handler) handleFetchTask(activity *teams.Activity) *Response {
	var payload struct {
		CommandID string `json:"commandId"`
	}
	if err := json.Unmarshal(activity.Value, &payload); err != nil {
		return nil
	}
	if payload.CommandID != CommandNewJobPosting {
		return nil
	}

	return &Response{Task: &TaskInfo{
		Type: "continue",
		Value: TaskInfoValue{
			Title:  "New job posting",
			Height: 450,
			Width:  500,
			Card:   cards.AdaptiveAttachment(cards.NewJobPosting()),
		},
	}}
}

func (h *Handler) handleQuery(activity *teams.Activity) *Response {
	var query Query
	if err := json.Unmarshal(activity.Value, &query); err != nil {
		h.logger.Debug("malformed extension query", zap.Error(err))
		return nil
	}
	if query.CommandID == "" || len(query.Parameters) == 0 {
		return nil
	}

	switch query.CommandID {
	case CommandSearchPositions:
		return h.searchPositions(query.Parameters[0])
	case CommandSearchCandidates:
		return h.searchCandidates(query.Parameters[0])
	default:
		h.logger.Debug("unknown extension command", zap.String("commandId", query.CommandID))
		return nil
	}
}

func (h *Handler) searchPositions(param Parameter) *Response {
	positions := h.positions.ListOpenPositions()

	// The first open sends the initialRun sentinel: return the capped list
	// unfiltered.
	if param.Name != initialRun {
		needle := strings.ToLower(fmt.Sprint(param.Value))
		filtered := make([]talent.OpenPosition, 0, len(positions))
		for _, p := range positions {
			if strings.Contains(strings.ToLower(p.Title), needle) {
				filtered = append(filtered, p)
			}
		}
		positions = filtered
	}

	result := &Result{AttachmentLayout: teams.LayoutList, Type: "result"}
	for _, p := range positions {
		result.Attachments = append(result.Attachments, positionAttachment(p))
	}
	return &Response{ComposeExtension: result}
}

// searchCandidates returns a fixed candidate set with the queried name
// overlaid: each result keeps its generated first name and takes the
// title-cased input as last name. Mock personalization, intentional.
func (h *Handler) searchCandidates(param Parameter) *Response {
	name := titleCase(strings.TrimSpace(fmt.Sprint(param.Value)))

	result := &Result{AttachmentLayout: teams.LayoutList, Type: "result"}
	for _, c := range h.candidates.TopCandidates(talent.NewReqID()) {
		if name != "" && param.Name != initialRun {
			first, _, _ := strings.Cut(c.Name, " ")
			c.Name = first + " " + name
		}
		full := cards.CandidateDetail(c)
		preview := cards.ThumbnailAttachment(cards.CandidateSummary(c))
		result.Attachments = append(result.Attachments, ResultAttachment{
			ContentType: cards.ThumbnailContentType,
			Content:     full,
			Preview:     &preview,
		})
	}
	return &Response{ComposeExtension: result}
}

func positionAttachment(p talent.OpenPosition) ResultAttachment {
	preview := cards.ThumbnailAttachment(cards.Position(p, false))
	return ResultAttachment{
		ContentType: cards.ThumbnailContentType,
		Content:     cards.Position(p, true),
		Preview:     &preview,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
