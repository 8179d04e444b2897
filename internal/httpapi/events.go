package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lox/pokercore/internal/engine"
)

const (
	eventsWriteWait  = 10 * time.Second
	eventsPingPeriod = 30 * time.Second
)

// handleEvents upgrades to a websocket and streams the session's event
// log as newline-delimited JSON frames: first the backlog recorded
// since game start, then anything appended by later step/jump calls.
// Purely additive: a client that never connects sees identical game
// behavior through the request/response endpoints alone.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	sess, ok := s.sessions.get(gameID)
	if !ok {
		writeCoreError(w, engine.ErrInvalidActionShape, map[string]any{"game_id": gameID})
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Str("game_id", gameID).Msg("events websocket upgrade failed")
		return
	}
	defer conn.Close()

	ch, backlog := sess.subscribe()
	defer sess.unsubscribe(ch)

	for _, e := range backlog {
		if err := s.writeEventFrame(conn, e); err != nil {
			return
		}
	}

	ticker := time.NewTicker(eventsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case e, open := <-ch:
			if !open {
				return
			}
			if err := s.writeEventFrame(conn, e); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(eventsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Server) writeEventFrame(conn *websocket.Conn, e engine.Event) error {
	_ = conn.SetWriteDeadline(time.Now().Add(eventsWriteWait))
	return conn.WriteJSON(eventDTO{Type: e.Type, MessageKey: e.MessageKey, Params: e.Params})
}
