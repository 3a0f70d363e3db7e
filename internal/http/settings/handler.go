package settings

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wyvernhall/snackcupboard/internal/term"
)

type Handler struct {
	svc *term.Service
}

func NewHandler(svc *term.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/current", h.current)
	r.Put("/current", h.setCurrent)
	r.Get("/all-terms", h.listTerms)
	r.Delete("/term", h.deleteTerm)
}

type currentResponse struct {
	Term         string `json:"term"`
	AcademicYear string `json:"academic_year"`
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	cur, err := h.svc.Current(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, currentResponse{Term: cur.Term, AcademicYear: cur.AcademicYear})
}

type setCurrentRequest struct {
	Term         string `json:"term"`
	AcademicYear string `json:"academic_year"`
}

func (h *Handler) setCurrent(w http.ResponseWriter, r *http.Request) {
	var req setCurrentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cur, err := h.svc.SetCurrent(r.Context(), req.Term, req.AcademicYear)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, currentResponse{Term: cur.Term, AcademicYear: cur.AcademicYear})
}

type termResponse struct {
	Term          string    `json:"term"`
	AcademicYear  string    `json:"academic_year"`
	CreatedAt     time.Time `json:"created_at"`
	PurchaseCount int       `json:"purchase_count"`
}

func (h *Handler) listTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]termResponse, len(terms))
	for i, t := range terms {
		resp[i] = termResponse{
			Term:          t.Term,
			AcademicYear:  t.AcademicYear,
			CreatedAt:     t.CreatedAt,
			PurchaseCount: t.PurchaseCount,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteTerm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	err := h.svc.Delete(r.Context(), q.Get("term"), q.Get("academic_year"))
	if err != nil {
		switch {
		case errors.Is(err, term.ErrNotFound):
			http.Error(w, "term not found", http.StatusNotFound)
		case errors.Is(err, term.ErrHasPurchases):
			http.Error(w, "term still has purchases; delete them first", http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
