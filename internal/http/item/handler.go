package item

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wyvernhall/snackcupboard/internal/importer/itemcsv"
	"github.com/wyvernhall/snackcupboard/internal/item"
)

type Handler struct {
	svc    *item.Service
	parser *itemcsv.Parser
}

func NewHandler(svc *item.Service) *Handler {
	return &Handler{svc: svc, parser: itemcsv.NewParser()}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/import", h.importCSV)
	r.Post("/bulk/archive", h.bulkArchive)
	r.Post("/bulk/restore", h.bulkRestore)
	r.Post("/bulk/delete", h.bulkHardDelete)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Put("/{id}/restore", h.restore)
	r.Delete("/{id}", h.archive)
	r.Delete("/{id}/permanent", h.hardDelete)
}

type itemResponse struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	PricePence int64         `json:"price_pence"`
	Category   item.Category `json:"category"`
	ArchivedAt *time.Time    `json:"archived_at,omitempty"`
}

func toResponse(it *item.Item) itemResponse {
	return itemResponse{
		ID:         it.ID,
		Name:       it.Name,
		PricePence: it.PricePence,
		Category:   it.Category,
		ArchivedAt: it.ArchivedAt,
	}
}

func toResponseList(items []*item.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = toResponse(it)
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := item.ListFilter{
		Search:          r.URL.Query().Get("search"),
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
	}

	items, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(items))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(it))
}

type itemRequest struct {
	Name       string `json:"name"`
	PricePence int64  `json:"price_pence"`
	Category   string `json:"category"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	category, ok := item.ParseCategory(req.Category)
	if !ok {
		http.Error(w, "category must be Food or Drink", http.StatusBadRequest)
		return
	}

	it, err := h.svc.Create(r.Context(), item.CreateParams{
		Name:       req.Name,
		PricePence: req.PricePence,
		Category:   category,
	})
	if err != nil {
		if errors.Is(err, item.ErrDuplicate) {
			http.Error(w, "item already exists", http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(it))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	category, ok := item.ParseCategory(req.Category)
	if !ok {
		http.Error(w, "category must be Food or Drink", http.StatusBadRequest)
		return
	}

	it, err := h.svc.Update(r.Context(), id, item.CreateParams{
		Name:       req.Name,
		PricePence: req.PricePence,
		Category:   category,
	})
	if err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, item.ErrDuplicate):
			http.Error(w, "another item with that name already exists", http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}

		return
	}

	writeJSON(w, http.StatusOK, toResponse(it))
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.Archive)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.Restore)
}

func (h *Handler) hardDelete(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.HardDelete)
}

func (h *Handler) lifecycle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := op(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, item.ErrNotArchived):
			http.Error(w, "item must be archived before deleting", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type bulkRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

func (h *Handler) bulkArchive(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.svc.BulkArchive)
}

func (h *Handler) bulkRestore(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.svc.BulkRestore)
}

func (h *Handler) bulkHardDelete(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.svc.BulkHardDelete)
}

func (h *Handler) bulk(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, ids []uuid.UUID) error) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.IDs) == 0 {
		http.Error(w, "ids are required", http.StatusBadRequest)
		return
	}

	if err := op(r.Context(), req.IDs); err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, item.ErrNotArchived):
			http.Error(w, "all items must be archived before deleting", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.parser.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, err := h.svc.Import(r.Context(), rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{Imported: imported})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
