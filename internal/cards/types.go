// Package cards renders talent domain entities into Bot Framework card
// payloads. Every composer function is pure: same entity in, same card out.
package cards

// Attachment content types understood by the Teams client.
const (
	ThumbnailContentType = "application/vnd.microsoft.card.thumbnail"
	ConnectorContentType = "application/vnd.microsoft.teams.card.o365connector"
	AdaptiveContentType  = "application/vnd.microsoft.card.adaptive"
)

// Card action types.
const (
	ActionOpenURL     = "openUrl"
	ActionMessageBack = "messageBack"
)

// Attachment wraps a card for inclusion in an outbound activity.
type Attachment struct {
	ContentType string `json:"contentType"`
	Content     any    `json:"content"`
}

// Image is a card image reference.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Action is a button on a thumbnail card. For messageBack actions, Text is
// re-injected as if the user typed it and Value rides along as the
// structured payload.
type Action struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Value       any    `json:"value,omitempty"`
	Text        string `json:"text,omitempty"`
	DisplayText string `json:"displayText,omitempty"`
}

// ThumbnailCard is a simple title/subtitle/text card with optional images
// and buttons.
type ThumbnailCard struct {
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Text     string   `json:"text,omitempty"`
	Images   []Image  `json:"images,omitempty"`
	Buttons  []Action `json:"buttons,omitempty"`
}

// ConnectorCard is an O365 actionable message card.
type ConnectorCard struct {
	Sections []ConnectorSection `json:"sections"`
}

// ConnectorSection is one section of a connector card.
type ConnectorSection struct {
	ActivityTitle    string `json:"activityTitle,omitempty"`
	ActivitySubtitle string `json:"activitySubtitle,omitempty"`
	ActivityText     string `json:"activityText,omitempty"`
	ActivityImage    string `json:"activityImage,omitempty"`
	PotentialAction  []any  `json:"potentialAction,omitempty"`
}

// ActionCard is a connector card action that expands into a small form.
type ActionCard struct {
	Type    string `json:"@type"`
	ID      string `json:"@id,omitempty"`
	Name    string `json:"name"`
	Inputs  []any  `json:"inputs,omitempty"`
	Actions []any  `json:"actions,omitempty"`
}

// DateInput is a date picker inside an ActionCard.
type DateInput struct {
	Type        string `json:"@type"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Value       string `json:"value,omitempty"`
	IsRequired  bool   `json:"isRequired"`
	IncludeTime bool   `json:"includeTime"`
}

// HTTPPostAction submits an ActionCard form.
type HTTPPostAction struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	ID   string `json:"@id,omitempty"`
	Body string `json:"body,omitempty"`
}

// AdaptiveCard is an adaptive card body. Content is the raw template; the
// composer only fills well-known placeholders, the client does the layout.
type AdaptiveCard struct {
	Type    string `json:"type"`
	Version string `json:"version"`
	Body    []any  `json:"body"`
	Actions []any  `json:"actions,omitempty"`
}
