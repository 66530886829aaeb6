package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/contoso/talentbot/internal/bot"
	"github.com/contoso/talentbot/internal/teams"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// playgroundRequest is the incoming WebSocket message format.
type playgroundRequest struct {
	Text string `json:"text"`
	User string `json:"user,omitempty"`
}

// playgroundResponse is the outgoing WebSocket message format.
type playgroundResponse struct {
	Type     string          `json:"type"` // "reply", "update" or "error"
	Activity *teams.Activity `json:"activity,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// wsSender implements teams.Sender by streaming outbound activities to the
// playground socket instead of the connector service.
type wsSender struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *wsSender) write(resp playgroundResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(resp)
}

func (s *wsSender) ReplyTo(_ context.Context, _ *teams.Activity, reply *teams.Activity) (string, error) {
	reply.ID = uuid.NewString()
	if err := s.write(playgroundResponse{Type: "reply", Activity: reply}); err != nil {
		return "", err
	}
	return reply.ID, nil
}

func (s *wsSender) UpdateActivity(_ context.Context, _, _, activityID string, reply *teams.Activity) error {
	reply.ID = activityID
	return s.write(playgroundResponse{Type: "update", Activity: reply})
}

// handlePlaygroundWS runs full dialog turns over a websocket: each text
// frame is treated as a typed message in a synthetic conversation, and
// every outbound activity streams back as JSON. Local development tool.
func (s *Server) handlePlaygroundWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("playground: websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	sender := &wsSender{conn: conn}
	engine := bot.NewEngine(s.candidates, s.positions, sender, s.logger)
	conversationID := "playground-" + uuid.NewString()
	conv := bot.NewConversation(conversationID, bot.NewMemoryStore())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("playground: websocket read", zap.Error(err))
			}
			return
		}

		var req playgroundRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			sender.write(playgroundResponse{Type: "error", Error: "invalid message format"})
			continue
		}

		user := req.User
		if user == "" {
			user = "Playground User"
		}

		activity := &teams.Activity{
			Type:         teams.TypeMessage,
			ID:           uuid.NewString(),
			Text:         req.Text,
			From:         teams.Account{ID: "playground-user", Name: user},
			Recipient:    teams.Account{ID: "talentbot"},
			Conversation: teams.Conversation{ID: conversationID},
		}

		if err := engine.OnMessage(r.Context(), conv, activity); err != nil {
			sender.write(playgroundResponse{Type: "error", Error: err.Error()})
		}
	}
}

const playgroundPage = `<!DOCTYPE html>
<html>
<head><title>talentbot playground</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2em auto; }
#log { border: 1px solid #ccc; height: 420px; overflow-y: auto; padding: 0.5em; white-space: pre-wrap; font-family: monospace; font-size: 12px; }
#text { width: 80%; }
</style>
</head>
<body>
<h2>talentbot playground</h2>
<div id="log"></div>
<form id="form"><input id="text" placeholder="try: help, open positions, top candidates 0F812D01"/><button>Send</button></form>
<script>
const log = document.getElementById("log");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/api/playground/ws");
ws.onmessage = (e) => { log.textContent += "bot> " + e.data + "\n\n"; log.scrollTop = log.scrollHeight; };
document.getElementById("form").onsubmit = (e) => {
  e.preventDefault();
  const text = document.getElementById("text").value;
  if (!text) return;
  log.textContent += "you> " + text + "\n";
  ws.send(JSON.stringify({text: text}));
  document.getElementById("text").value = "";
};
</script>
</body>
</html>`

func (s *Server) handlePlaygroundPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(playgroundPage))
}
