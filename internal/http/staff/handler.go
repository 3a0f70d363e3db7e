package staff

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wyvernhall/snackcupboard/internal/importer/staffcsv"
	"github.com/wyvernhall/snackcupboard/internal/staff"
)

type Handler struct {
	svc    *staff.Service
	parser *staffcsv.Parser
}

func NewHandler(svc *staff.Service) *Handler {
	return &Handler{svc: svc, parser: staffcsv.NewParser()}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/import", h.importCSV)
	r.Post("/bulk/archive", h.bulkArchive)
	r.Post("/bulk/restore", h.bulkRestore)
	r.Post("/bulk/delete", h.bulkHardDelete)
	r.Put("/{initials}", h.update)
	r.Put("/{initials}/restore", h.restore)
	r.Delete("/{initials}", h.archive)
	r.Delete("/{initials}/permanent", h.hardDelete)
}

type staffResponse struct {
	Initials   string     `json:"initials"`
	Surname    string     `json:"surname"`
	Forename   string     `json:"forename"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

func toResponse(st *staff.Staff) staffResponse {
	return staffResponse{
		Initials:   st.Initials,
		Surname:    st.Surname,
		Forename:   st.Forename,
		ArchivedAt: st.ArchivedAt,
	}
}

func toResponseList(members []*staff.Staff) []staffResponse {
	resp := make([]staffResponse, len(members))
	for i, st := range members {
		resp[i] = toResponse(st)
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := staff.ListFilter{
		Search:          r.URL.Query().Get("search"),
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
	}

	members, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(members))
}

type createStaffRequest struct {
	Initials string `json:"initials"`
	Surname  string `json:"surname"`
	Forename string `json:"forename"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.svc.Create(r.Context(), staff.CreateParams{
		Initials: req.Initials,
		Surname:  req.Surname,
		Forename: req.Forename,
	})
	if err != nil {
		if errors.Is(err, staff.ErrDuplicate) {
			http.Error(w, "staff member already exists", http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(st))
}

type updateStaffRequest struct {
	Surname  string `json:"surname"`
	Forename string `json:"forename"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.svc.Update(r.Context(), chi.URLParam(r, "initials"), staff.CreateParams{
		Surname:  req.Surname,
		Forename: req.Forename,
	})
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			http.Error(w, "staff member not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(st))
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Archive(r.Context(), chi.URLParam(r, "initials")); err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			http.Error(w, "staff member not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Restore(r.Context(), chi.URLParam(r, "initials")); err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			http.Error(w, "staff member not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) hardDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.HardDelete(r.Context(), chi.URLParam(r, "initials")); err != nil {
		switch {
		case errors.Is(err, staff.ErrNotFound):
			http.Error(w, "staff member not found", http.StatusNotFound)
		case errors.Is(err, staff.ErrNotArchived):
			http.Error(w, "staff member must be archived before deleting", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type bulkRequest struct {
	Initials []string `json:"initials"`
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

func (h *Handler) bulk(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, initials []string) error) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Initials) == 0 {
		http.Error(w, "initials are required", http.StatusBadRequest)
		return
	}

	if err := op(r.Context(), req.Initials); err != nil {
		switch {
		case errors.Is(err, staff.ErrNotFound):
			http.Error(w, "staff member not found", http.StatusNotFound)
		case errors.Is(err, staff.ErrNotArchived):
			http.Error(w, "all staff members must be archived before deleting", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type importResponse struct {
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Archived int `json:"archived"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	mode := staff.ImportMode(r.FormValue("mode"))
	if mode == "" {
		mode = staff.ModeReplace
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

	result, err := h.svc.Import(r.Context(), mode, rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		Created:  result.Created,
		Updated:  result.Updated,
		Archived: result.Archived,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
