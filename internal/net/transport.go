package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"SplineBoard/internal/state"
)

// Message is the wire envelope between a session host and its viewers.
type Message struct {
	Type string          `json:"type"` // "sync" or "op"
	Op   *state.Op       `json:"op,omitempty"`
	Sync *state.Snapshot `json:"sync,omitempty"`
}

// Hub tracks the websocket connections of all session viewers; the host
// uses it to fan edits out. The write lock in Broadcast also serializes
// writes to the individual connections.
type Hub struct {
	conns map[*websocket.Conn]bool
	mu    sync.Mutex
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
	log.Printf("[NET] Viewer connected: %s", conn.RemoteAddr())
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	log.Printf("[NET] Viewer disconnected: %s", conn.RemoteAddr())
}

// Broadcast sends a message to every viewer except the one it came from.
func (h *Hub) Broadcast(msg Message, exclude *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if conn == exclude {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("[NET] Send to %s failed: %v", conn.RemoteAddr(), err)
		}
	}
}

// Serve runs the host side: it upgrades incoming viewers, sends each one a
// full document snapshot, then applies and relays their edits. It blocks
// for the lifetime of the process.
func (h *Hub) Serve(port int, doc *state.Document) error {
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(rw http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(rw, req, nil)
		if err != nil {
			log.Printf("[NET] Upgrade failed: %v", err)
			return
		}
		snap := doc.Snapshot()
		if err := conn.WriteJSON(Message{Type: "sync", Sync: &snap}); err != nil {
			log.Printf("[NET] Initial sync to %s failed: %v", conn.RemoteAddr(), err)
			conn.Close()
			return
		}
		h.add(conn)
		go h.readLoop(conn, doc)
	})

	log.Printf("[NET] Session host listening on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func (h *Hub) readLoop(conn *websocket.Conn, doc *state.Document) {
	defer conn.Close()
	defer h.remove(conn)
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("[NET] Viewer %s dropped: %v", conn.RemoteAddr(), err)
			return
		}
		if msg.Type != "op" || msg.Op == nil {
			continue
		}
		doc.Apply(*msg.Op)
		h.Broadcast(msg, conn)
	}
}

// Join connects to a hosted session, keeps the local document in sync and
// forwards local edits back to the host. It blocks until the connection
// drops.
func Join(addr string, doc *state.Document, status func(string)) error {
	if status == nil {
		status = func(string) {}
	}

	url := fmt.Sprintf("ws://%s/ws", addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	var writeMu sync.Mutex
	doc.OnOp = func(op state.Op) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(Message{Type: "op", Op: &op}); err != nil {
			log.Printf("[NET] Send failed: %v", err)
		}
	}

	status("Connected to " + addr)
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			status(fmt.Sprintf("Disconnected: %v", err))
			return err
		}
		switch {
		case msg.Type == "sync" && msg.Sync != nil:
			doc.Restore(*msg.Sync)
		case msg.Type == "op" && msg.Op != nil:
			// Our own edits come back from the relay; the document
			// already has them.
			if msg.Op.Site != state.SiteID() {
				doc.Apply(*msg.Op)
			}
		}
	}
}
