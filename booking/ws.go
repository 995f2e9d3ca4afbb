package booking

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

// HandleEventBookingsWS streams booking activity for one event to
// connected clients (e.g. a live attendee counter on the event page).
func HandleEventBookingsWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written its own error response
		log.Println("WebSocket upgrade failed:", err)
		return
	}

	mu.Lock()
	subscribers[eventID] = append(subscribers[eventID], conn)
	mu.Unlock()

	for {
		// This keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	// Clean up on disconnect
	mu.Lock()
	conns := subscribers[eventID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[eventID] = newList
	mu.Unlock()

	conn.Close()
}

func notifySubscribers(eventID, action string, payload any) {
	msg, err := json.Marshal(map[string]any{"action": action, "data": payload})
	if err != nil {
		log.Println("ws marshal error:", err)
		return
	}

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[eventID]
	newList := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	subscribers[eventID] = newList
}
