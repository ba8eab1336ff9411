package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"space-horror/internal/network"
	"space-horror/internal/version"
	"space-horror/pkg/api"
	"space-horror/pkg/logger"
)

const shutdownTimeout = 3 * time.Second

// Server - отладочный HTTP-сервер рядом с окном игры.
type Server struct {
	Hub   *network.Broadcaster
	Admin chan<- api.AdminCommand
	Addr  string
}

func New(hub *network.Broadcaster, admin chan<- api.AdminCommand, addr string) *Server {
	return &Server{Hub: hub, Admin: admin, Addr: addr}
}

// Handler собирает маршруты. Отдельно от Run для тестов.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	NewDebugHandler(s.Hub, s.Admin).RegisterRoutes(mux)
	return mux
}

// Run слушает Addr до отмены ctx.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.For("http").WithError(err).Warn("Debug server shutdown failed")
		}
	}()

	logger.For("http").Infof("Debug server running on %s", s.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}

// handleWS подключает наблюдателя
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.For("ws").WithError(err).Warn("Upgrade error")
		return
	}

	client := NewClient(s.Hub, conn)
	client.log.Info("Viewer connected")

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Info())
}
