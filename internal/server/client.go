package server

import (
	"net/http"
	"time"

	"github.com/Astreocclu/arc-citadel-sub002/internal/domain"
	"github.com/Astreocclu/arc-citadel-sub002/internal/engine"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/api"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/logger"

	"github.com/gorilla/websocket"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - наблюдатель, подписанный на ленту боевых событий.
// Лента строго read-only: входящие сообщения не интерпретируются,
// readPump нужен только для ping/pong и обнаружения разрыва.
type Client struct {
	Game      *engine.BattleService
	Conn      *websocket.Conn
	Send      chan api.BattleEvent
	WatcherID string
}

func NewClient(game *engine.BattleService, conn *websocket.Conn) *Client {
	watcherID := domain.GenerateID()
	return &Client{
		Game:      game,
		Conn:      conn,
		Send:      game.Hub.Register(watcherID),
		WatcherID: watcherID,
	}
}

// readPump следит за соединением. Любое содержимое от клиента
// игнорируется - выход из цикла означает разрыв.
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unregister(c.WatcherID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		logger.Log.WithField("watcher_id", c.WatcherID).Info("Watcher disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	logger.Log.WithField("watcher_id", c.WatcherID).Info("Watcher connected")

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump гонит события из личного канала в сокет.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case evt, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				// Хаб закрыл канал
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
