package reset

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wyvernhall/snackcupboard/internal/auth"
	"github.com/wyvernhall/snackcupboard/internal/reset"
)

type Handler struct {
	svc *reset.Service
}

func NewHandler(svc *reset.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/statistics", h.statistics)
	r.Get("/export-backup", h.exportBackup)
	r.Post("/execute", h.execute)
}

type statisticsResponse struct {
	Purchases     int `json:"purchases"`
	Staff         int `json:"staff"`
	ArchivedStaff int `json:"archived_staff"`
	Items         int `json:"items"`
	ArchivedItems int `json:"archived_items"`
	Terms         int `json:"terms"`
	Total         int `json:"total"`
}

func (h *Handler) statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, statisticsResponse{
		Purchases:     stats.Purchases,
		Staff:         stats.Staff,
		ArchivedStaff: stats.ArchivedStaff,
		Items:         stats.Items,
		ArchivedItems: stats.ArchivedItems,
		Terms:         stats.Terms,
		Total:         stats.Total,
	})
}

type backupPurchase struct {
	ID             uuid.UUID  `json:"id"`
	StaffInitials  string     `json:"staff_initials"`
	StaffForename  string     `json:"staff_forename"`
	StaffSurname   string     `json:"staff_surname"`
	ItemID         *uuid.UUID `json:"item_id,omitempty"`
	ItemName       string     `json:"item_name"`
	Quantity       int64      `json:"quantity"`
	UnitPricePence int64      `json:"unit_price_pence"`
	Term           string     `json:"term"`
	AcademicYear   string     `json:"academic_year"`
	CreatedAt      time.Time  `json:"created_at"`
}

type backupStaff struct {
	Initials   string     `json:"initials"`
	Surname    string     `json:"surname"`
	Forename   string     `json:"forename"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

type backupItem struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	PricePence int64      `json:"price_pence"`
	Category   string     `json:"category"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

type backupTerm struct {
	Term         string    `json:"term"`
	AcademicYear string    `json:"academic_year"`
	CreatedAt    time.Time `json:"created_at"`
}

type backupSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type backupData struct {
	Purchases []backupPurchase `json:"purchases"`
	Staff     []backupStaff    `json:"staff"`
	Items     []backupItem     `json:"items"`
	Terms     []backupTerm     `json:"terms"`
	Settings  []backupSetting  `json:"settings"`
}

type backupResponse struct {
	ExportDate time.Time  `json:"export_date"`
	Version    string     `json:"version"`
	Data       backupData `json:"data"`
}

func toBackupResponse(b *reset.Backup) backupResponse {
	resp := backupResponse{
		ExportDate: b.ExportDate,
		Version:    b.Version,
		Data: backupData{
			Purchases: make([]backupPurchase, len(b.Data.Purchases)),
			Staff:     make([]backupStaff, len(b.Data.Staff)),
			Items:     make([]backupItem, len(b.Data.Items)),
			Terms:     make([]backupTerm, len(b.Data.Terms)),
			Settings:  make([]backupSetting, len(b.Data.Settings)),
		},
	}

	for i, p := range b.Data.Purchases {
		resp.Data.Purchases[i] = backupPurchase{
			ID:             p.ID,
			StaffInitials:  p.StaffInitials,
			StaffForename:  p.StaffForename,
			StaffSurname:   p.StaffSurname,
			ItemID:         p.ItemID,
			ItemName:       p.ItemName,
			Quantity:       p.Quantity,
			UnitPricePence: p.UnitPricePence,
			Term:           p.Term,
			AcademicYear:   p.AcademicYear,
			CreatedAt:      p.CreatedAt,
		}
	}

	for i, st := range b.Data.Staff {
		resp.Data.Staff[i] = backupStaff{
			Initials:   st.Initials,
			Surname:    st.Surname,
			Forename:   st.Forename,
			ArchivedAt: st.ArchivedAt,
		}
	}

	for i, it := range b.Data.Items {
		resp.Data.Items[i] = backupItem{
			ID:         it.ID,
			Name:       it.Name,
			PricePence: it.PricePence,
			Category:   string(it.Category),
			ArchivedAt: it.ArchivedAt,
		}
	}

	for i, t := range b.Data.Terms {
		resp.Data.Terms[i] = backupTerm{
			Term:         t.Term,
			AcademicYear: t.AcademicYear,
			CreatedAt:    t.CreatedAt,
		}
	}

	for i, kv := range b.Data.Settings {
		resp.Data.Settings[i] = backupSetting{Key: kv.Key, Value: kv.Value}
	}

	return resp
}

func (h *Handler) exportBackup(w http.ResponseWriter, r *http.Request) {
	backup, err := h.svc.Backup(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("backup-%s.json", backup.ExportDate.Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writeJSON(w, http.StatusOK, toBackupResponse(backup))
}

type executeRequest struct {
	Password           string `json:"password"`
	ConfirmationPhrase string `json:"confirmation_phrase"`
}

type executeResponse struct {
	Message      string `json:"message"`
	Term         string `json:"term"`
	AcademicYear string `json:"academic_year"`
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	seed, err := h.svc.Execute(r.Context(), req.Password, req.ConfirmationPhrase)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPassword):
			http.Error(w, "invalid password", http.StatusUnauthorized)
		case errors.Is(err, reset.ErrBadConfirmation):
			http.Error(w, "confirmation phrase does not match", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, executeResponse{
		Message:      "database reset complete",
		Term:         seed.Term,
		AcademicYear: seed.AcademicYear,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
