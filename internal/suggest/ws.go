package suggest

import (
	"context"
	"encoding/json"
	"net"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"tripfinder/pkg/logger"
)

// ClientMessage is one frame from the search box.
//
//	{"type":"input","text":"goa"}
//	{"type":"key","key":"ArrowDown"}
//	{"type":"close"}
type ClientMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	Key  Key    `json:"key,omitempty"`
}

// LiveHandler godoc
// @Summary      Live search dropdown
// @Description  WebSocket. The client sends keystrokes, the server pushes dropdown snapshots after the debounce period.
// @Tags         suggestions
// @Router       /v1/suggestions/live [get]
func (h *SuggestHandler) LiveHandler(c *gin.Context) {
	conn, _, _, err := ws.UpgradeHTTP(c.Request, c.Writer)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", logger.Field{Key: "err", Value: err})
		return
	}

	// the request context ends with the handler; the connection outlives it
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.serve(ctx, conn)
}

func (h *SuggestHandler) serve(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	var writeMu sync.Mutex
	write := func(s Snapshot) {
		data, err := json.Marshal(s)
		if err != nil {
			h.logger.Error("failed to marshal snapshot", logger.Field{Key: "err", Value: err})
			return
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := wsutil.WriteServerMessage(conn, ws.OpText, data); err != nil {
			h.logger.Debug("websocket write failed", logger.Field{Key: "err", Value: err})
		}
	}

	opts := []ControllerOption{WithOnChange(write)}
	if h.debounce > 0 {
		opts = append(opts, WithDebounce(h.debounce))
	}
	ctl := NewController(ctx, h.service, h.logger, opts...)
	defer ctl.Close()

	for {
		data, op, err := wsutil.ReadClientData(conn)
		if err != nil {
			h.logger.Debug("websocket closed", logger.Field{Key: "err", Value: err})
			return
		}
		if op != ws.OpText {
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Warn("invalid websocket message", logger.Field{Key: "err", Value: err})
			continue
		}

		switch msg.Type {
		case "input":
			ctl.Input(msg.Text)
		case "key":
			ctl.Key(msg.Key)
		case "close":
			ctl.Close()
		default:
			h.logger.Warn("unknown websocket message type", logger.Field{Key: "type", Value: msg.Type})
		}
	}
}
