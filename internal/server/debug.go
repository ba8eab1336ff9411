package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"space-horror/internal/network"
	"space-horror/pkg/api"
	"space-horror/pkg/logger"
)

const maxAdminBody = 4 << 10

// DebugHandler отдает последний снимок и принимает чит-команды.
type DebugHandler struct {
	Hub *network.Broadcaster
	// Admin - очередь команд уровня. nil - команды не принимаются.
	Admin chan<- api.AdminCommand
}

func NewDebugHandler(hub *network.Broadcaster, admin chan<- api.AdminCommand) *DebugHandler {
	return &DebugHandler{Hub: hub, Admin: admin}
}

func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/admin", h.handleAdmin)
}

// /debug/state - последний снимок игры
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.Hub.Latest()
	if !ok {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// POST /debug/admin - команда ставится в очередь и выполняется на следующем тике
func (h *DebugHandler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.Admin == nil {
		http.Error(w, "admin commands disabled", http.StatusForbidden)
		return
	}

	var cmd api.AdminCommand
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAdminBody)).Decode(&cmd); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := cmd.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	select {
	case h.Admin <- cmd:
	default:
		http.Error(w, "command queue full", http.StatusServiceUnavailable)
		return
	}
	logger.For("debug").WithFields(logrus.Fields{"action": cmd.Action, "kind": cmd.Kind}).Info("Admin command queued")
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	// Разрешаем запросы с любого источника (локальная debug-страница)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.For("debug").WithError(err).Debug("write json failed")
	}
}
