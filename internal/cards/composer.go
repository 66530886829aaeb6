package cards

import (
	"fmt"

	"github.com/contoso/talentbot/internal/talent"
)

const detailsURL = "https://hr.contoso.com"

// scheduleValue is the structured payload carried by the "Schedule
// interview" button. The resolver decodes it back on postback.
type scheduleValue struct {
	Name  string `json:"name"`
	ReqID string `json:"reqId"`
}

// CandidateSummary builds the carousel card shown for each top candidate.
func CandidateSummary(c talent.Candidate) ThumbnailCard {
	return ThumbnailCard{
		Title:    c.Name,
		Subtitle: fmt.Sprintf("Job ID: %s", c.ReqID),
		Text:     fmt.Sprintf("Current role: %s<br/> <b>Stage:</b> %s", c.CurrentRole, c.Stage),
		Images:   []Image{{URL: c.ProfilePicture, Alt: c.Name}},
		Buttons: []Action{
			{Type: ActionOpenURL, Title: "See details", Value: detailsURL},
			{
				Type:        ActionMessageBack,
				Title:       "Schedule interview",
				Value:       scheduleValue{Name: c.Name, ReqID: c.ReqID},
				Text:        "schedule interview",
				DisplayText: fmt.Sprintf("Schedule interview with %s", c.Name),
			},
		},
	}
}

// CandidateDetail builds the full candidate card with hire counts and the
// complete button row.
func CandidateDetail(c talent.Candidate) ThumbnailCard {
	return ThumbnailCard{
		Title:    c.Name,
		Subtitle: fmt.Sprintf("Job ID: %s", c.ReqID),
		Text: fmt.Sprintf("Current role: %s<br/> <b>Stage:</b> %s<br/> <b>Hire:</b> %d <b>No hire:</b> %d",
			c.CurrentRole, c.Stage, c.Hires, c.NoHires),
		Images: []Image{{URL: c.ProfilePicture, Alt: c.Name}},
		Buttons: []Action{
			{Type: ActionOpenURL, Title: "See details", Value: detailsURL},
			{
				Type:        ActionMessageBack,
				Title:       "Schedule interview",
				Value:       scheduleValue{Name: c.Name, ReqID: c.ReqID},
				Text:        "schedule interview",
				DisplayText: fmt.Sprintf("Schedule interview with %s", c.Name),
			},
			{Type: ActionOpenURL, Title: "Read feedback", Value: detailsURL},
		},
	}
}

// Position builds a thumbnail card for an open posting. Buttons are included
// only for the full (non-preview) rendering.
func Position(p talent.OpenPosition, includeButtons bool) ThumbnailCard {
	card := ThumbnailCard{
		Title: p.Title,
		Subtitle: fmt.Sprintf("Applicants: %d  Days open: %d Hiring manager: %s",
			p.Applicants, p.DaysOpen, p.HiringManager),
		Text: fmt.Sprintf("Req ID: %s", p.ReqID),
	}
	if includeButtons {
		card.Buttons = []Action{
			{Type: ActionOpenURL, Title: "See details", Value: detailsURL},
			{
				Type:        ActionMessageBack,
				Title:       "Update status",
				Value:       p.ReqID,
				Text:        "update position",
				DisplayText: fmt.Sprintf("Update position status for %s", p.ReqID),
			},
		}
	}
	return card
}

// PositionsActions builds the trailing buttons-only card that closes an
// open-positions listing.
func PositionsActions() ThumbnailCard {
	return ThumbnailCard{
		Buttons: []Action{
			{Type: ActionOpenURL, Title: "View details", Value: detailsURL},
			{
				Type:        ActionMessageBack,
				Title:       "Add new job posting",
				Text:        "new job posting",
				DisplayText: "New job posting",
			},
		},
	}
}

// InterviewRequestCard builds the actionable card confirming an interview
// request, with a nested date form and an HTTP POST confirm action.
func InterviewRequestCard(req talent.InterviewRequest, c talent.Candidate) ConnectorCard {
	form := ActionCard{
		Type: "ActionCard",
		ID:   "updateInterviewDate",
		Name: "Set interview date",
		Inputs: []any{
			DateInput{
				Type:  "DateInput",
				ID:    "interviewDate",
				Title: "Interview date",
				Value: req.Date.Format("Jan 2, 2006"),
			},
		},
		Actions: []any{
			HTTPPostAction{Type: "HttpPOST", Name: "Schedule", ID: "scheduleInterview", Body: req.ReqID},
		},
	}

	return ConnectorCard{
		Sections: []ConnectorSection{{
			ActivityTitle:    req.CandidateName,
			ActivitySubtitle: fmt.Sprintf("For position: %s", req.PositionTitle),
			ActivityText:     fmt.Sprintf("Req ID: %s", req.ReqID),
			ActivityImage:    c.ProfilePicture,
			PotentialAction:  []any{form},
		}},
	}
}

// NewJobPosting builds the adaptive card shown in the compose-extension
// task module for creating a posting.
func NewJobPosting() AdaptiveCard {
	return AdaptiveCard{
		Type:    "AdaptiveCard",
		Version: "1.0",
		Body: []any{
			map[string]any{"type": "TextBlock", "size": "Large", "weight": "Bolder", "text": "New job posting"},
			map[string]any{"type": "Input.Text", "id": "title", "placeholder": "Job title"},
			map[string]any{"type": "Input.Text", "id": "hiringManager", "placeholder": "Hiring manager"},
			map[string]any{"type": "Input.Number", "id": "daysOpen", "placeholder": "Days open", "value": 0},
		},
		Actions: []any{
			map[string]any{"type": "Action.Submit", "title": "Create", "data": map[string]any{"command": "newJobPosting"}},
		},
	}
}

// ThumbnailAttachment wraps a thumbnail card for an outbound activity.
func ThumbnailAttachment(card ThumbnailCard) Attachment {
	return Attachment{ContentType: ThumbnailContentType, Content: card}
}

// ConnectorAttachment wraps a connector card for an outbound activity.
func ConnectorAttachment(card ConnectorCard) Attachment {
	return Attachment{ContentType: ConnectorContentType, Content: card}
}

// AdaptiveAttachment wraps an adaptive card for an outbound activity.
func AdaptiveAttachment(card AdaptiveCard) Attachment {
	return Attachment{ContentType: AdaptiveContentType, Content: card}
}
