package network

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"skifall/room"
)

const (
	readLimit    = 1 << 20 // 1MB
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingPeriod   = 25 * time.Second

	// Generous enough for 30Hz skier telemetry plus drawing bursts.
	inboundRate  = rate.Limit(60)
	inboundBurst = 120
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler bridges websocket connections into room inboxes.
type Handler struct {
	Manager *room.Manager
}

// ServeWS upgrades the request and runs the connection's read pump. One
// logical room per game code, given by the "room" query parameter.
func (h *Handler) ServeWS(w http.ResponseWriter, req *http.Request) {
	code := req.URL.Query().Get("room")
	r := h.Manager.GetOrCreateRoom(code)
	if r == nil {
		http.Error(w, "missing room code", http.StatusBadRequest)
		return
	}

	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	conn := &wsConn{ws: ws}
	conn.startPing()
	defer conn.Close()

	ws.SetReadLimit(readLimit)
	_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
	ws.SetPongHandler(func(string) error {
		_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	reply := make(chan room.JoinResult, 1)
	r.Inbox <- room.Join{Conn: conn, Name: req.URL.Query().Get("name"), Reply: reply}
	playerID := (<-reply).PlayerID

	limiter := rate.NewLimiter(inboundRate, inboundBurst)
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			break
		}
		_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
		if !limiter.Allow() {
			continue // shed excess inbound traffic rather than buffering it
		}
		r.Inbox <- room.ClientMessage{PlayerID: playerID, Data: data}
	}

	r.Inbox <- room.Leave{PlayerID: playerID}
}

// wsConn adapts a gorilla connection to room.Conn. Writes are serialized
// with a mutex because the ping loop and the room actor both write.
type wsConn struct {
	ws   *websocket.Conn
	mu   sync.Mutex
	done chan struct{}
	once sync.Once
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) Close() error {
	c.once.Do(func() { close(c.done) })
	return c.ws.Close()
}

func (c *wsConn) startPing() {
	c.done = make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.mu.Lock()
				_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
				err := c.ws.WriteMessage(websocket.PingMessage, nil)
				c.mu.Unlock()
				if err != nil {
					return
				}
			case <-c.done:
				return
			}
		}
	}()
}
