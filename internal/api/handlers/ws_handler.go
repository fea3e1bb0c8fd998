package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/voxprep/voxprep/internal/events"
	"github.com/voxprep/voxprep/internal/store"
	"github.com/voxprep/voxprep/internal/utils"
)

// WSHandler streams turn lifecycle events (transcribing / evaluating /
// synthesizing / done) to the client while an answer is being processed.
type WSHandler struct {
	sessions store.SessionStore
	redis    *redis.Client
	upgrader websocket.Upgrader
}

func NewWSHandler(sessions store.SessionStore, rdb *redis.Client) *WSHandler {
	return &WSHandler{
		sessions: sessions,
		redis:    rdb,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
	}
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeText(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteMessage(websocket.TextMessage, b)
}

func (h *WSHandler) InterviewWS(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sessionID := c.Param("session_id")
	if sessionID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "WSHandler.InterviewWS", "missing session_id", nil))
		return
	}

	sess, found := h.sessions.Get(sessionID)
	if !found {
		writeError(c, utils.E(utils.CodeNotFound, "WSHandler.InterviewWS", "session not found", nil))
		return
	}
	if sess.UserID != userID {
		writeError(c, utils.E(utils.CodeForbidden, "WSHandler.InterviewWS", "forbidden", nil))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote response in most cases
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	pubsub := h.redis.Subscribe(ctx, events.Channel(sessionID))
	defer pubsub.Close()

	// reader: only there to notice the client going away
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		_ = conn.SetReadDeadline(time.Now().Add(10 * time.Minute))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(10 * time.Minute))
			return nil
		})
		for {
			if _, _, rerr := conn.ReadMessage(); rerr != nil {
				return
			}
		}
	}()

	// writer: Redis Pub/Sub -> WS, payloads forwarded as-is
	for {
		select {
		case <-readDone:
			return
		case <-ctx.Done():
			return
		default:
			m, err := pubsub.ReceiveMessage(ctx)
			if err != nil {
				return
			}
			if werr := wc.writeText([]byte(m.Payload)); werr != nil {
				return
			}
		}
	}
}
