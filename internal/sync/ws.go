package sync

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the API serves a local storefront UI; tighten before exposing
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsWelcome struct {
	Type      string `json:"type"`
	Transport string `json:"transport"`
}

// WSHandler upgrades a presentation client to WebSocket and keeps it
// subscribed to state events until it hangs up. Events only flow
// outward; anything the client sends is read and discarded to service
// control frames.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		log.Printf("[ws] client connected: %s", ws.RemoteAddr())

		_ = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := ws.WriteJSON(wsWelcome{Type: "welcome", Transport: "websocket"}); err != nil {
			_ = ws.Close()
			return
		}
		_ = ws.SetWriteDeadline(time.Time{})

		hub.AddWS(ws)
		defer func() {
			hub.RemoveWS(ws)
			log.Printf("[ws] client disconnected: %s", ws.RemoteAddr())
		}()

		ws.SetReadLimit(512)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}
}
