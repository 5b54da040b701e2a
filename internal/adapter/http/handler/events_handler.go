package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

// EventsHandler streams an account's state events over a websocket.
type EventsHandler struct {
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewEventsHandler creates a new EventsHandler. checkOrigin may be nil to
// accept any origin.
func NewEventsHandler(checkOrigin func(r *http.Request) bool, log zerolog.Logger) *EventsHandler {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &EventsHandler{
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
		log:      log.With().Str("component", "events").Logger(),
	}
}

// Stream handles GET /api/v1/events. Each state event is sent as one JSON
// text message until either side closes the connection.
func (h *EventsHandler) Stream(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("account_id", s.AccountID()).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	h.log.Debug().Str("account_id", s.AccountID()).Msg("event stream opened")
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(wsWriteWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				h.log.Debug().Err(err).Str("account_id", s.AccountID()).Msg("event stream write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			h.log.Debug().Str("account_id", s.AccountID()).Msg("event stream closed by client")
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
