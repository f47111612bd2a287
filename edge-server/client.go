package main

import (
	"encoding/json"
	"log/slog"
	"time"

	"plane-booking/shared"

	"github.com/gorilla/websocket"
)

// Maximum message size allowed from peer
const maxMessageSize = 4 * 1024

// Client is a middleman between one websocket connection and the hub
type Client struct {
	hub   *Hub
	state *planeState

	conn *websocket.Conn

	// Buffered channel of outbound messages
	send chan []byte

	id          string
	connectedAt time.Time
	log         *slog.Logger
}

// readPump handles requests from the browser until the connection drops
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
		c.log.Info("Client disconnected", "duration", time.Since(c.connectedAt).String())
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(shared.WebSocketPongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(shared.WebSocketPongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("WebSocket error", "error", err)
			}
			break
		}

		var clientMsg shared.ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			c.sendError("Invalid message format")
			continue
		}

		c.handleMessage(&clientMsg)
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(shared.WebSocketPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(shared.WebSocketWriteTimeout))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(shared.WebSocketWriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// The viewer is read-only: bookings happen at the console.
func (c *Client) handleMessage(msg *shared.ClientMessage) {
	switch msg.Type {
	case shared.MessageTypeSubscribe:
		c.sendMessage(shared.MessageTypePlaneState, c.state.snapshot())
	default:
		c.sendError("Unsupported message type: " + msg.Type)
	}
}

func (c *Client) sendMessage(msgType string, data interface{}) {
	jsonData, err := json.Marshal(shared.ServerMessage{Type: msgType, Data: data})
	if err != nil {
		c.log.Error("Failed to marshal message", "error", err)
		return
	}

	select {
	case c.send <- jsonData:
	default:
		c.log.Warn("Failed to send message: buffer full")
	}
}

func (c *Client) sendError(errorMsg string) {
	c.sendMessage(shared.MessageTypeError, shared.ErrorResponse{Error: errorMsg})
}
