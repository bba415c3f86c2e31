// Package remote carries inputs over websocket. Each text frame is one JSON
// record.Entry; only input kinds are accepted.
package remote

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fabiovitalba/piston/record"
	"github.com/fabiovitalba/piston/source"
)

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("remote: closed")

const maxFrame = 64 << 10

// Handler accepts websocket peers and publishes their inputs. Bad frames are
// logged and skipped; the connection stays open.
type Handler struct {
	pub      source.Publisher
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a Handler publishing to pub. A nil logger uses
// log.Default().
func NewHandler(pub source.Publisher, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		pub:      pub,
		logger:   logger,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("remote: upgrade: %v", err)
		return
	}
	defer ws.Close()
	ws.SetReadLimit(maxFrame)

	ctx := r.Context()
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Printf("remote: read: %v", err)
			}
			return
		}
		var e record.Entry
		if err := json.Unmarshal(msg, &e); err != nil {
			h.logger.Printf("remote: bad frame: %v", err)
			continue
		}
		in, err := e.Input()
		if err != nil {
			h.logger.Printf("remote: rejected %s: %v", e.Kind, err)
			continue
		}
		if err := h.pub.Publish(ctx, in); err != nil {
			h.logger.Printf("remote: publish: %v", err)
			cm := websocket.FormatCloseMessage(websocket.CloseGoingAway, "source closed")
			_ = ws.WriteControl(websocket.CloseMessage, cm, time.Now().Add(time.Second))
			return
		}
	}
}
