package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/harborwatch/backend/internal/sim"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin is checked by the WebSocket CORS middleware
	},
}

const (
	writeWait  = 10 * time.Second
	maxRunWait = 5 * time.Minute
)

// Message is one frame of a run stream.
type Message struct {
	Type     string   `json:"type"` // status, event, verdicts, error
	Status   string   `json:"status,omitempty"`
	Time     float64  `json:"time,omitempty"`
	Subject  *sim.Collidable `json:"subject,omitempty"`
	Object   *sim.Collidable `json:"object,omitempty"`
	Verdicts []string `json:"verdicts,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// HandleRunSocket upgrades the connection and replays the run's collision
// timeline in chronological order, followed by the per-boat verdicts. For a
// still-queued run it waits for the completion notification first.
func HandleRunSocket(w http.ResponseWriter, r *http.Request, token string, m *sim.Manager, hub *Hub, log *logrus.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("[WS] Upgrade failed for run %s: %v", token, err)
		return
	}
	defer conn.Close()

	// Drain reads so close frames are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	result, err := m.GetRun(r.Context(), token)
	if err != nil {
		writeMessage(conn, Message{Type: "error", Error: "run not found"})
		return
	}

	if result.Status != "COMPLETED" {
		writeMessage(conn, Message{Type: "status", Status: result.Status})

		notify, cancel := hub.Await(token)
		defer cancel()

		select {
		case <-notify:
		case <-done:
			return
		case <-time.After(maxRunWait):
			writeMessage(conn, Message{Type: "error", Error: "timed out waiting for run"})
			return
		}

		result, err = m.GetRun(context.Background(), token)
		if err != nil || result.Status != "COMPLETED" {
			writeMessage(conn, Message{Type: "error", Error: "run did not complete"})
			return
		}
	}

	streamResult(conn, result)
}

func streamResult(conn *websocket.Conn, result *sim.RunResult) {
	for i := range result.Events {
		ev := result.Events[i]
		if !writeMessage(conn, Message{
			Type:    "event",
			Time:    ev.Time,
			Subject: &ev.A,
			Object:  &ev.B,
		}) {
			return
		}
	}
	writeMessage(conn, Message{Type: "verdicts", Verdicts: result.Verdicts})
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

func writeMessage(conn *websocket.Conn, msg Message) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg) == nil
}
