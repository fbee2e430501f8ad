/*
handlers.go - HTTP API handlers for the range service

PURPOSE:
  Exposes range parsing, interval algebra, and the named-range snapshot
  store over REST. Handles HTTP request/response and JSON serialization,
  delegating all calendar logic to the chrono package.

ENDPOINTS:
  Evaluation:
    GET    /api/ranges/parse?text=    Parse and describe a range literal
    POST   /api/ranges/eval           Apply an operation to two ranges

  Snapshots:
    GET    /api/ranges                List stored ranges
    POST   /api/ranges                Save a range under a name
    GET    /api/ranges/{name}         Get a stored range
    DELETE /api/ranges/{name}         Delete a stored range

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed input, invalid bounds, disconnected ranges
  - 404: Unknown range name
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/chrono-extra/chrono"
	"github.com/warp/chrono-extra/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// EVALUATION ENDPOINTS
// =============================================================================

// ParseRange parses a range literal and describes it.
// GET /api/ranges/parse?text=2026-01-01/2026-04-01
func (h *Handler) ParseRange(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	parsed, err := chrono.ParseDateRange(text)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid range", err)
		return
	}
	writeJSON(w, http.StatusOK, toRangeDTO(parsed))
}

// EvalRanges applies one interval-algebra operation to two range literals.
// POST /api/ranges/eval
func (h *Handler) EvalRanges(w http.ResponseWriter, r *http.Request) {
	var req EvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	a, err := chrono.ParseDateRange(req.A)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid range a", err)
		return
	}
	b, err := chrono.ParseDateRange(req.B)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid range b", err)
		return
	}

	resp := EvalResponse{Op: req.Op, A: toRangeDTO(a), B: toRangeDTO(b)}
	switch req.Op {
	case "intersection":
		result, err := a.Intersection(b)
		if err != nil {
			writeError(w, http.StatusBadRequest, "ranges do not connect", err)
			return
		}
		dto := toRangeDTO(result)
		resp.Range = &dto
	case "union":
		result, err := a.Union(b)
		if err != nil {
			writeError(w, http.StatusBadRequest, "ranges do not connect", err)
			return
		}
		dto := toRangeDTO(result)
		resp.Range = &dto
	case "span":
		dto := toRangeDTO(a.Span(b))
		resp.Range = &dto
	case "overlaps":
		resp.Bool = boolPtr(a.Overlaps(b))
	case "abuts":
		resp.Bool = boolPtr(a.Abuts(b))
	case "connected":
		resp.Bool = boolPtr(a.IsConnected(b))
	case "encloses":
		resp.Bool = boolPtr(a.Encloses(b))
	case "before":
		resp.Bool = boolPtr(a.IsBefore(b))
	case "after":
		resp.Bool = boolPtr(a.IsAfter(b))
	case "coverage":
		ratio, err := a.Coverage(b)
		if err != nil {
			writeError(w, http.StatusBadRequest, "coverage undefined", err)
			return
		}
		resp.Coverage = ratio.String()
	default:
		writeError(w, http.StatusBadRequest, "unknown op", nil)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// SNAPSHOT ENDPOINTS
// =============================================================================

// ListRanges returns all stored ranges.
// GET /api/ranges
func (h *Handler) ListRanges(w http.ResponseWriter, r *http.Request) {
	stored, err := h.Store.ListRanges(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list ranges", err)
		return
	}

	dtos := make([]NamedRangeDTO, 0, len(stored))
	for _, nr := range stored {
		dtos = append(dtos, NamedRangeDTO{
			Name:      nr.Name,
			Range:     toRangeDTO(nr.Range),
			UpdatedAt: nr.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveRange stores a range under a name.
// POST /api/ranges
func (h *Handler) SaveRange(w http.ResponseWriter, r *http.Request) {
	var req SaveRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	parsed, err := chrono.ParseDateRange(req.Range)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid range", err)
		return
	}

	if err := h.Store.SaveRange(r.Context(), req.Name, parsed); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save range", err)
		return
	}
	writeJSON(w, http.StatusCreated, NamedRangeDTO{Name: req.Name, Range: toRangeDTO(parsed)})
}

// GetRange returns a stored range by name.
// GET /api/ranges/{name}
func (h *Handler) GetRange(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	stored, err := h.Store.GetRange(r.Context(), name)
	if err != nil {
		if errors.Is(err, sqlite.ErrRangeNotFound) {
			writeError(w, http.StatusNotFound, "range not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load range", err)
		return
	}
	writeJSON(w, http.StatusOK, NamedRangeDTO{Name: name, Range: toRangeDTO(stored)})
}

// DeleteRange removes a stored range by name.
// DELETE /api/ranges/{name}
func (h *Handler) DeleteRange(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.Store.DeleteRange(r.Context(), name); err != nil {
		if errors.Is(err, sqlite.ErrRangeNotFound) {
			writeError(w, http.StatusNotFound, "range not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete range", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func boolPtr(b bool) *bool {
	return &b
}
