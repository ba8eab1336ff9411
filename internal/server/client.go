package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"space-horror/internal/network"
	"space-horror/pkg/api"
	"space-horror/pkg/logger"
	"space-horror/pkg/utils"
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

// Client - наблюдатель по WebSocket. Игрой не управляет, только получает снимки.
type Client struct {
	Hub  *network.Broadcaster
	Conn *websocket.Conn
	ID   string

	updates <-chan api.Snapshot
	log     *logrus.Entry
}

func NewClient(hub *network.Broadcaster, conn *websocket.Conn) *Client {
	id := utils.PrefixedID("viewer")
	return &Client{
		Hub:     hub,
		Conn:    conn,
		ID:      id,
		updates: hub.Register(id),
		log:     logger.For("ws").WithField("viewer_id", id),
	}
}

// readPump читает команды наблюдателя. Нужен, чтобы обрабатывать pong и закрытие.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Viewer disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg api.ClientMessage
		if err := c.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Warn("WS read error")
			}
			return
		}
		if err := msg.Validate(); err != nil {
			c.log.WithError(err).Warn("Invalid viewer message")
			continue
		}
		c.log.WithField("action", msg.Action).Debug("Viewer message")
	}
}

// writePump отправляет снимки клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case snap, ok := <-c.updates:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(snap); err != nil {
				c.log.WithError(err).Debug("write snapshot failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
