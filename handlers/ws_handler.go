package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/response"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Println("WebSocket Origin:", r.Header.Get("Origin"))
		return true
	},
}

// submissionEvent is the wire message pushed to admin panel clients when a
// public form submission is accepted.
type submissionEvent struct {
	Type           string    `json:"type"`
	FormID         uint      `json:"form_id"`
	FormSlug       string    `json:"form_slug"`
	FormTitle      string    `json:"form_title"`
	SubmissionID   uint      `json:"submission_id"`
	SubmitterName  string    `json:"submitter_name,omitempty"`
	SubmitterEmail string    `json:"submitter_email,omitempty"`
	ReceivedAt     time.Time `json:"received_at"`
}

// SubmissionHub fans accepted submissions out to connected admin clients.
// It satisfies services.SubmissionNotifier.
type SubmissionHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]chan []byte
}

func NewSubmissionHub() *SubmissionHub {
	return &SubmissionHub{conns: make(map[*websocket.Conn]chan []byte)}
}

func (h *SubmissionHub) NotifySubmission(form models.Form, sub models.FormSubmission) {
	msg, err := json.Marshal(submissionEvent{
		Type:           "form_submission",
		FormID:         form.ID,
		FormSlug:       form.Slug,
		FormTitle:      form.Title,
		SubmissionID:   sub.ID,
		SubmitterName:  sub.SubmitterName,
		SubmitterEmail: sub.SubmitterEmail,
		ReceivedAt:     sub.CreatedAt,
	})
	if err != nil {
		log.Printf("Failed to encode submission event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, send := range h.conns {
		select {
		case send <- msg:
		default:
			// slow client, drop it rather than block the submission path
			close(send)
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

func (h *SubmissionHub) add(conn *websocket.Conn) chan []byte {
	send := make(chan []byte, 16)
	h.mu.Lock()
	h.conns[conn] = send
	h.mu.Unlock()
	return send
}

func (h *SubmissionHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if send, ok := h.conns[conn]; ok {
		close(send)
		delete(h.conns, conn)
	}
	h.mu.Unlock()
	conn.Close()
}

// Serve upgrades the connection and streams submission events until the
// client goes away. The route is JWT-guarded upstream.
func (h *SubmissionHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	send := h.add(conn)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.remove(conn)
				return
			}
		case <-done:
			h.remove(conn)
			return
		}
	}
}
