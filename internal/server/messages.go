package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/contoso/talentbot/internal/bot"
	"github.com/contoso/talentbot/internal/teams"
)

// handleMessages receives Bot Framework activities. Each webhook invocation
// is one turn: resolve, fetch, render, send, strictly sequential. The
// handler acknowledges with 200 even when a turn degrades; only malformed
// JSON earns a 400.
func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	var activity teams.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	switch activity.Type {
	case teams.TypeMessage:
		s.runTurn(w, r, &activity)

	case teams.TypeInvoke:
		resp := s.extension.Handle(&activity)
		if resp == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			s.logger.Warn("encoding invoke response", zap.Error(err))
		}

	case teams.TypeConversationUpdate:
		// The bot being added to a conversation triggers the welcome
		// message; reuse the normal message parsing for it.
		if teams.BotAddedTo(&activity) {
			activity.Text = "welcome"
			s.runTurn(w, r, &activity)
			return
		}
		w.WriteHeader(http.StatusOK)

	default:
		// typing, ping, deleteUserData and friends are acknowledged and
		// ignored.
		w.WriteHeader(http.StatusOK)
	}
}

func (s *Server) runTurn(w http.ResponseWriter, r *http.Request, activity *teams.Activity) {
	conv := bot.NewConversation(activity.Conversation.ID, s.states)

	if err := s.engine.OnMessage(r.Context(), conv, activity); err != nil {
		// Transport failures must not fail the webhook; the conversation
		// stays armed for the next message.
		s.logger.Warn("turn failed",
			zap.String("conversation", conv.ID),
			zap.Error(err),
		)
	}
	w.WriteHeader(http.StatusOK)
}
