// Package teams holds the Bot Framework activity schema and the connector
// client used to send and update messages. It is a thin boundary layer; all
// conversational logic lives in internal/bot.
package teams

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/contoso/talentbot/internal/cards"
)

// Activity types the bot reacts to.
const (
	TypeMessage            = "message"
	TypeInvoke             = "invoke"
	TypeConversationUpdate = "conversationUpdate"
)

// Attachment layouts.
const (
	LayoutList     = "list"
	LayoutCarousel = "carousel"
)

// Account is a user or bot account.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Conversation identifies the conversation an activity belongs to.
type Conversation struct {
	ID string `json:"id"`
}

// Activity is a Bot Framework activity, inbound or outbound. Value carries
// structured button payloads and is decoded against a per-command schema at
// the resolver boundary.
type Activity struct {
	Type             string             `json:"type"`
	ID               string             `json:"id,omitempty"`
	Timestamp        string             `json:"timestamp,omitempty"`
	Name             string             `json:"name,omitempty"`
	Text             string             `json:"text,omitempty"`
	Value            json.RawMessage    `json:"value,omitempty"`
	From             Account            `json:"from,omitempty"`
	Recipient        Account            `json:"recipient,omitempty"`
	Conversation     Conversation       `json:"conversation,omitempty"`
	ServiceURL       string             `json:"serviceUrl,omitempty"`
	ReplyToID        string             `json:"replyToId,omitempty"`
	MembersAdded     []Account          `json:"membersAdded,omitempty"`
	Attachments      []cards.Attachment `json:"attachments,omitempty"`
	AttachmentLayout string             `json:"attachmentLayout,omitempty"`
}

// BotAddedTo reports whether a conversationUpdate activity announces the bot
// itself joining the conversation. The inbound payload's recipient is always
// the bot.
func BotAddedTo(a *Activity) bool {
	if a.Type != TypeConversationUpdate {
		return false
	}
	for _, m := range a.MembersAdded {
		if m.ID == a.Recipient.ID {
			return true
		}
	}
	return false
}

var mentionTag = regexp.MustCompile(`<at[^>]*>.*?</at>`)

// TextWithoutMentions strips <at> mention markup and leading @tokens from an
// activity's text. Channel messages always @mention the bot, so the bot name
// must be stripped before parsing.
func TextWithoutMentions(a *Activity) string {
	text := mentionTag.ReplaceAllString(a.Text, "")
	fields := strings.Fields(text)
	for len(fields) > 0 && strings.HasPrefix(fields[0], "@") {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

// NewReply builds an outbound message activity addressed back to the sender
// of the inbound activity.
func NewReply(to *Activity, text string) *Activity {
	return &Activity{
		Type:         TypeMessage,
		Text:         text,
		Conversation: to.Conversation,
		ReplyToID:    to.ID,
		ServiceURL:   to.ServiceURL,
	}
}
