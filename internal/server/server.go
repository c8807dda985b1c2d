// Package server exposes shell sessions to the browser admin UI over
// websocket, plus a small REST surface for health checks and the diff
// view. One session is created per websocket connection; the virtual tree
// template is shared (it is read-only) and hot-reloaded from the fixture
// file when one is configured.
package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rustpress/adminterm/internal/config"
	"github.com/rustpress/adminterm/internal/shell"
	"github.com/rustpress/adminterm/internal/vfs"
)

// Server serves the admin terminal backend.
type Server struct {
	cfg    *config.Config
	interp *shell.Interpreter

	upgrader websocket.Upgrader

	mu       sync.RWMutex
	template *vfs.Node
}

// New builds a Server, loading the tree template from the configured
// fixture or falling back to the seeded default tree.
func New(cfg *config.Config) (*Server, error) {
	tree, err := loadTree(cfg)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:    cfg,
		interp: shell.New(cfg),
		upgrader: websocket.Upgrader{
			// The admin UI is served from a different origin in dev.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		template: tree,
	}, nil
}

func loadTree(cfg *config.Config) (*vfs.Node, error) {
	if cfg.Terminal.FixturePath == "" {
		return vfs.DefaultTree(), nil
	}
	tree, err := vfs.LoadFixtureFile(cfg.Terminal.FixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree fixture: %w", err)
	}
	return tree, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/healthz", s.handleHealthz)
	mux.HandleFunc("/api/diff", s.handleDiff)
	mux.HandleFunc("/api/ws", s.handleWebSocket)
	return mux
}

// Run starts the fixture watcher (when configured) and blocks serving
// HTTP on the configured address.
func (s *Server) Run() error {
	if s.cfg.Terminal.FixturePath != "" {
		stop, err := s.watchFixture(s.cfg.Terminal.FixturePath)
		if err != nil {
			// A broken watcher is not fatal; sessions keep the last tree.
			log.Printf("fixture watcher disabled: %v", err)
		} else {
			defer stop()
		}
	}

	log.Printf("adminterm server listening on %s", s.cfg.Server.Addr)
	return http.ListenAndServe(s.cfg.Server.Addr, s.Handler())
}

// currentTree returns the tree template for new sessions.
func (s *Server) currentTree() *vfs.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.template
}

// setTree swaps the tree template. Existing sessions keep the tree they
// started with.
func (s *Server) setTree(tree *vfs.Node) {
	s.mu.Lock()
	s.template = tree
	s.mu.Unlock()
}

// handleWebSocket upgrades the connection and serves one shell session
// for its lifetime.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	sess := shell.NewSession(s.cfg, s.currentTree())
	log.Printf("session %s opened from %s", sessionID, r.RemoteAddr)

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			log.Printf("session %s closed: %v", sessionID, err)
			return
		}

		resp := s.dispatch(sess, sessionID, req)
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("session %s write failed: %v", sessionID, err)
			return
		}
		if resp.Exited {
			return
		}
	}
}

// dispatch evaluates one request against the connection's session.
func (s *Server) dispatch(sess *shell.Session, sessionID string, req Request) Response {
	resp := Response{Type: req.Type, SessionID: sessionID}

	switch req.Type {
	case MessageTypeExec:
		data, err := decodeData[ExecData](req.Data)
		if err != nil {
			resp.Error = err.Error()
			break
		}
		result := s.interp.Run(sess, data.Command)
		resp.Lines = toLineDTOs(result.Lines)
		resp.Cleared = result.ClearScreen
		resp.Exited = result.Exited

	case MessageTypeComplete:
		data, err := decodeData[CompleteData](req.Data)
		if err != nil {
			resp.Error = err.Error()
			break
		}
		resp.Completion = s.interp.Complete(data.Partial)

	case MessageTypeHistory:
		data, err := decodeData[HistoryData](req.Data)
		if err != nil {
			resp.Error = err.Error()
			break
		}
		switch data.Direction {
		case "prev":
			resp.Entry, resp.Browsing = sess.HistoryPrev()
		case "next":
			resp.Entry, resp.Browsing = sess.HistoryNext()
		default:
			resp.Error = fmt.Sprintf("unknown history direction %q", data.Direction)
		}

	case MessageTypeReset:
		*sess = *shell.NewSession(s.cfg, s.currentTree())

	default:
		resp.Error = fmt.Sprintf("unknown message type %q", req.Type)
	}

	resp.Cwd = sess.Cwd
	resp.Prompt = s.interp.Prompt(sess)
	return resp
}
