// Package devserver exposes a view over HTTP during development: the
// rendered tree as HTML, an event endpoint that fires handlers inside the
// tree, and a WebSocket that pushes a fresh snapshot after every
// invalidation.
//
// The core runtime is single-threaded by design; the server owns the
// serialization of all view access behind its own mutex.
package devserver

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/go-wml/wml/pkg/core"
	"github.com/go-wml/wml/pkg/dom"
	"github.com/go-wml/wml/pkg/errors"
)

// Server serves one view.
type Server struct {
	mu        sync.Mutex
	view      *core.View
	host      *dom.MemoryHost
	container dom.Element
	upgrader  websocket.Upgrader

	clientMu sync.Mutex
	clients  map[*websocket.Conn]bool
}

// New creates a server for a view rendered against host. The first request
// triggers the initial render; the tree is attached under a container the
// server owns so invalidation has a position to swap at.
func New(view *core.View, host *dom.MemoryHost) *Server {
	return &Server{
		view:      view,
		host:      host,
		container: host.CreateElement("main"),
		clients:   make(map[*websocket.Conn]bool),
	}
}

// Router returns the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	r.HandleFunc("/events/{node}/{type}", s.handleEvent).Methods(http.MethodPost)
	return r
}

// ListenAndServe serves the router on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Router())
}

// snapshot renders on first use and returns the current HTML.
func (s *Server) snapshot() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.Tree() == nil {
		tree, err := s.view.Render()
		if err != nil {
			return "", err
		}
		s.container.Append(tree)
	}
	return dom.MarshalHTML(s.view.Tree()), nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := s.snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	nodeID, eventType := vars["node"], vars["type"]

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.view.Tree() == nil {
		s.mu.Unlock()
		http.Error(w, "view not rendered", http.StatusConflict)
		return
	}
	fired := s.host.Fire(nodeID, dom.Event{Type: eventType, Data: string(body)})
	if !fired {
		s.mu.Unlock()
		http.Error(w, fmt.Sprintf("no handler for %s on node %s", eventType, nodeID), http.StatusNotFound)
		return
	}
	err = s.view.Invalidate()
	html := dom.MarshalHTML(s.view.Tree())
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.broadcast(html)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	html, err := s.snapshot()
	if err != nil {
		conn.Close()
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
		conn.Close()
		return
	}

	s.clientMu.Lock()
	s.clients[conn] = true
	s.clientMu.Unlock()

	// Drain the connection until the client goes away.
	go func() {
		defer errors.Recover("devserver.Server.handleWS")
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		s.dropClient(conn)
	}()
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.clientMu.Lock()
	delete(s.clients, conn)
	s.clientMu.Unlock()
	conn.Close()
}

// broadcast pushes a snapshot to every connected client, dropping clients
// whose connection has failed. Writes happen under clientMu: gorilla
// connections allow at most one concurrent writer, and concurrent event
// requests broadcast independently.
func (s *Server) broadcast(html string) {
	s.clientMu.Lock()
	var failed []*websocket.Conn
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
			failed = append(failed, conn)
		}
	}
	for _, conn := range failed {
		delete(s.clients, conn)
	}
	s.clientMu.Unlock()

	for _, conn := range failed {
		conn.Close()
	}
}
