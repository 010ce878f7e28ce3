package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartgym/backend/internal/recommend"
)

// API bundles the shared dependencies of every handler.
type API struct {
	DB     *gorm.DB
	Engine *recommend.Engine
	Log    *zap.Logger
}

func New(db *gorm.DB, engine *recommend.Engine, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{DB: db, Engine: engine, Log: log}
}

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

// parseID pulls a numeric URL parameter. Returns 0, false and writes the
// error response itself when the value is not a positive integer.
func parseID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeError(w, http.StatusUnprocessableEntity, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// queryInt reads an integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
