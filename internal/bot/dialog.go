// Package bot contains the conversational core: the intent resolver, the
// dialog engine and the per-conversation state store.
package bot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/contoso/talentbot/internal/cards"
	"github.com/contoso/talentbot/internal/talent"
	"github.com/contoso/talentbot/internal/teams"
)

const helpBody = " \n\n Here's what I can help you do \n\n" +
	"* Show top recent candidates for a Req ID, ex// 0F812D01 \n" +
	"* Schedule interview for name and Req ID, ex// John Smith 0F812D01 \n" +
	"* List all my open positions"

// Engine is the dialog engine: a single awaiting-message state with a
// self-transition. Each turn resolves the inbound activity to a command,
// gathers domain data and replies through the sender. Lookup misses degrade
// to the help response or a no-op; the engine never surfaces an error to
// the user.
type Engine struct {
	candidates talent.CandidateProvider
	positions  talent.PositionProvider
	sender     teams.Sender
	logger     *zap.Logger
}

// NewEngine creates a dialog engine over the given providers and sender.
func NewEngine(candidates talent.CandidateProvider, positions talent.PositionProvider, sender teams.Sender, logger *zap.Logger) *Engine {
	return &Engine{
		candidates: candidates,
		positions:  positions,
		sender:     sender,
		logger:     logger,
	}
}

// OnMessage handles one conversational turn. The returned error covers
// transport failures only; parse and lookup problems are absorbed into the
// reply itself.
func (e *Engine) OnMessage(ctx context.Context, conv *Conversation, activity *teams.Activity) error {
	text := teams.TextWithoutMentions(activity)
	cmd := Resolve(text, activity.Value)

	e.logger.Debug("resolved command",
		zap.String("kind", string(cmd.Kind)),
		zap.String("conversation", conv.ID),
	)

	switch cmd.Kind {
	case KindTopCandidates:
		return e.sendTopCandidates(ctx, activity, cmd.ReqID)
	case KindScheduleInterview:
		return e.sendScheduleInterview(ctx, conv, activity, cmd)
	case KindOpenPositions:
		return e.sendOpenPositions(ctx, activity)
	case KindCandidateDetails:
		return e.sendCandidateDetails(ctx, activity, cmd)
	case KindAssignTask:
		return e.updateAssignedTask(ctx, conv, activity, cmd.TaskID)
	default:
		// Help, Welcome and Unrecognized all render the help copy.
		return e.sendHelp(ctx, activity, cmd.Hint)
	}
}

func (e *Engine) sendHelp(ctx context.Context, activity *teams.Activity, firstLine string) error {
	reply := teams.NewReply(activity, firstLine+helpBody)
	_, err := e.sender.ReplyTo(ctx, activity, reply)
	return err
}

func (e *Engine) sendTopCandidates(ctx context.Context, activity *teams.Activity, reqID string) error {
	reply := teams.NewReply(activity, "Okay, here are top candidates who have recently applied to your position")
	reply.AttachmentLayout = teams.LayoutCarousel

	for _, c := range e.candidates.TopCandidates(reqID) {
		reply.Attachments = append(reply.Attachments, cards.ThumbnailAttachment(cards.CandidateSummary(c)))
	}

	_, err := e.sender.ReplyTo(ctx, activity, reply)
	return err
}

func (e *Engine) sendScheduleInterview(ctx context.Context, conv *Conversation, activity *teams.Activity, cmd Command) error {
	candidate := e.candidates.ByName(cmd.CandidateName())
	position := e.positions.PositionForReqID(cmd.ReqID)

	request := talent.InterviewRequest{
		CandidateName: candidate.Name,
		ReqID:         cmd.ReqID,
		PositionTitle: position.Title,
		Remote:        false,
		Date:          time.Time{},
	}

	reply := teams.NewReply(activity, "Here's your request to schedule an interview:")
	reply.Attachments = append(reply.Attachments, cards.ConnectorAttachment(cards.InterviewRequestCard(request, candidate)))

	activityID, err := e.sender.ReplyTo(ctx, activity, reply)
	if err != nil {
		return err
	}

	// Cache the sent message so a later "assign <reqId>" can update it.
	cached := CachedMessage{
		ActivityID: activityID,
		Card: cards.ThumbnailCard{
			Title:    request.CandidateName,
			Subtitle: fmt.Sprintf("For position: %s", request.PositionTitle),
			Text:     fmt.Sprintf("Req ID: %s", request.ReqID),
			Images:   []cards.Image{{URL: candidate.ProfilePicture, Alt: candidate.Name}},
		},
	}
	if err := conv.Put(ctx, cmd.ReqID, cached); err != nil {
		e.logger.Warn("caching interview message", zap.String("reqId", cmd.ReqID), zap.Error(err))
	}
	return nil
}

func (e *Engine) sendOpenPositions(ctx context.Context, activity *teams.Activity) error {
	positions := e.positions.ListOpenPositions()

	reply := teams.NewReply(activity,
		fmt.Sprintf("Hi %s! You have %d active postings right now:", activity.From.Name, len(positions)))

	for _, p := range positions {
		reply.Attachments = append(reply.Attachments, cards.ThumbnailAttachment(cards.Position(p, false)))
	}
	reply.Attachments = append(reply.Attachments, cards.ThumbnailAttachment(cards.PositionsActions()))

	_, err := e.sender.ReplyTo(ctx, activity, reply)
	return err
}

func (e *Engine) sendCandidateDetails(ctx context.Context, activity *teams.Activity, cmd Command) error {
	candidate := e.candidates.ByName(cmd.CandidateName())

	reply := teams.NewReply(activity, "")
	reply.Attachments = append(reply.Attachments, cards.ThumbnailAttachment(cards.CandidateDetail(candidate)))

	_, err := e.sender.ReplyTo(ctx, activity, reply)
	return err
}

// updateAssignedTask mutates a previously sent message in place: the cached
// card gets an "Assigned to" subtitle and a fresh button row. An unknown
// task ID is a diagnostic no-op, never a user-visible error.
func (e *Engine) updateAssignedTask(ctx context.Context, conv *Conversation, activity *teams.Activity, taskID string) error {
	cached, err := conv.Get(ctx, taskID)
	if err != nil {
		return fmt.Errorf("looking up task %s: %w", taskID, err)
	}
	if cached == nil {
		e.logger.Debug("no cached message for task", zap.String("taskId", taskID), zap.String("conversation", conv.ID))
		return nil
	}

	card := cached.Card
	card.Subtitle = fmt.Sprintf("Assigned to: %s", activity.From.Name)
	card.Buttons = []cards.Action{
		{Type: cards.ActionOpenURL, Title: "View task", Value: "https://hr.contoso.com"},
		{Type: cards.ActionOpenURL, Title: "Update details", Value: "https://hr.contoso.com"},
	}

	reply := teams.NewReply(activity, "")
	reply.Attachments = append(reply.Attachments, cards.ThumbnailAttachment(card))

	return e.sender.UpdateActivity(ctx, activity.ServiceURL, conv.ID, cached.ActivityID, reply)
}
