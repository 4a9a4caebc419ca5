// Package api is the thin HTTP layer: input ingestion, engine orchestration,
// output serialization. It never performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"roofquote/core/catalog"
	"roofquote/core/quote"
	"roofquote/internal/errors"
)

// Handler serves the quoting endpoints
type Handler struct {
	engine  *quote.Engine
	store   *catalog.Store
	version string
	logger  *zap.Logger
}

// NewHandler creates a handler
func NewHandler(engine *quote.Engine, store *catalog.Store, version string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, store: store, version: version, logger: logger}
}

// Calculate handles POST /api/calculate (and the legacy /api/calc path)
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "INVALID_JSON",
			"message": err.Error(),
		})
		return
	}

	q, err := h.engine.Quote(req.ToQuoteRequest())
	if err != nil {
		h.writeQuoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NewQuoteResponse(q))
}

// CalcAlive handles GET /api/calc, a liveness probe the front-end uses
func (h *Handler) CalcAlive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "route": "/api/calc"})
}

// factorView is the admin-UI shape of one factor row
type factorView struct {
	Factor      float64             `json:"factor"`
	Adjustments catalog.Adjustments `json:"adjustments"`
}

// Factors handles GET /api/multi/factors: a read-only reflection of the
// multi-flue factor table shaped as metal -> product -> row.
func (h *Handler) Factors(w http.ResponseWriter, r *http.Request) {
	cat := h.store.Current()
	shaped := make(map[string]map[string]factorView)
	for _, row := range cat.FactorRows {
		m := strings.ToLower(row.Metal)
		p := strings.ToLower(row.Product)
		if m == "" || p == "" {
			continue
		}
		if shaped[m] == nil {
			shaped[m] = make(map[string]factorView)
		}
		shaped[m][p] = factorView{Factor: row.Factor, Adjustments: row.Adjustments}
	}
	writeJSON(w, http.StatusOK, shaped)
}

// ShroudConfig handles GET /api/shroud/config: the read-only metal/model table
func (h *Handler) ShroudConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Current().Shrouds)
}

// LegacyCalculateGone handles the removed per-family calculate routes
func (h *Handler) LegacyCalculateGone(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusGone, map[string]string{
		"error": "Legacy route removed. Use POST /api/calculate with a product token.",
	})
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":              true,
		"version":         h.version,
		"catalog_version": h.store.Current().Version,
		"time":            time.Now().UTC().Format(time.RFC3339),
	})
}

// Version handles GET /api/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	cat := h.store.Current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":         h.version,
		"engine":          "roofquote",
		"catalog_version": cat.Version,
		"catalog_hash":    cat.ContentHash,
	})
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("API online"))
}

// writeQuoteError maps engine errors onto the wire. Domain errors surface
// their code and details; anything else is opaque.
func (h *Handler) writeQuoteError(w http.ResponseWriter, err error) {
	if e, ok := errors.AsError(err); ok && e.Code != errors.CodeInternal {
		body := map[string]interface{}{
			"error":   string(e.Code),
			"message": e.Message,
		}
		if len(e.Details) > 0 {
			body["details"] = e.Details
		}
		writeJSON(w, e.HTTPStatus(), body)
		return
	}

	h.logger.Error("calculate failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "internal server error",
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
