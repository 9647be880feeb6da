// Package server exposes the equity calculator over a WebSocket endpoint so
// other processes can price spots without shelling out to the CLI.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/poker"
)

// Request asks for one spot's equity. Games and Threads are optional and
// clamped to the server's configured maxima.
type Request struct {
	Spot    string `json:"spot"`
	Games   int    `json:"games,omitempty"`
	Threads int    `json:"threads,omitempty"`
}

// PlayerResult is one seat's tally with derived percentages.
type PlayerResult struct {
	Wins   uint64  `json:"wins"`
	Ties   uint64  `json:"ties"`
	Equity float64 `json:"equity"`
	Win    float64 `json:"win"`
	Tie    float64 `json:"tie"`
}

// Response answers one Request. Error is set instead of Players when the
// spot does not parse.
type Response struct {
	Players []PlayerResult `json:"players,omitempty"`
	Games   int            `json:"games,omitempty"`
	Error   string         `json:"error,omitempty"`
}

const defaultGames = 100_000

// Server runs simulations on behalf of WebSocket clients. One request is
// answered per message; the connection stays open for reuse.
type Server struct {
	cfg      *config.ServerConfig
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// New builds a server from its configuration.
func New(cfg *config.ServerConfig, logger *log.Logger) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
	}
}

// Handler returns the HTTP surface: /ws for simulations, /health for
// readiness probes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("listening", "addr", s.cfg.Address)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	s.logger.Info("client connected", "remote", conn.RemoteAddr())

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read failed", "err", err)
			}
			return
		}
		if err := conn.WriteJSON(s.answer(req)); err != nil {
			s.logger.Warn("write failed", "err", err)
			return
		}
	}
}

// answer runs one request. Malformed spots come back as in-band errors; the
// connection is not torn down for them.
func (s *Server) answer(req Request) Response {
	spot, err := poker.NewSpot(req.Spot)
	if err != nil {
		return Response{Error: err.Error()}
	}

	games := clamp(req.Games, defaultGames, s.cfg.MaxGames)
	threads := clamp(req.Threads, 1, s.cfg.MaxThreads)
	games = (&poker.Pool{Threads: threads}).Games(games)

	start := time.Now()
	results := poker.Run(spot, games, threads)
	s.logger.Debug("spot simulated",
		"spot", req.Spot, "games", games, "threads", threads, "elapsed", time.Since(start))

	players := make([]PlayerResult, len(results))
	for i, r := range results {
		players[i] = PlayerResult{
			Wins:   r.Wins,
			Ties:   r.Ties,
			Equity: r.Equity(games),
			Win:    float64(r.Wins) / float64(games),
			Tie:    float64(r.Ties) / float64(poker.TieUnit) / float64(games),
		}
	}
	return Response{Players: players, Games: games}
}

func clamp(v, def, upper int) int {
	if v <= 0 {
		v = def
	}
	if v > upper {
		v = upper
	}
	return v
}
