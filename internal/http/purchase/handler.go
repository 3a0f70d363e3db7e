package purchase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wyvernhall/snackcupboard/internal/purchase"
	"github.com/wyvernhall/snackcupboard/internal/staff"
)

type Handler struct {
	svc *purchase.Service
}

func NewHandler(svc *purchase.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.record)
	r.Get("/export/csv", h.exportCSV)
	r.Post("/bulk/delete", h.bulkDelete)
	r.Delete("/term", h.deleteByTerm)
	r.Get("/staff/{initials}", h.history)
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/popular-items", h.popularItems)
		r.Get("/category-breakdown", h.categoryBreakdown)
		r.Get("/staff-spending", h.staffSpending)
		r.Get("/time-trends", h.timeTrends)
	})
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type purchaseResponse struct {
	ID             uuid.UUID  `json:"id"`
	StaffInitials  string     `json:"staff_initials"`
	StaffForename  string     `json:"staff_forename"`
	StaffSurname   string     `json:"staff_surname"`
	ItemID         *uuid.UUID `json:"item_id,omitempty"`
	ItemName       string     `json:"item_name"`
	Quantity       int64      `json:"quantity"`
	UnitPricePence int64      `json:"unit_price_pence"`
	TotalPence     int64      `json:"total_pence"`
	Term           string     `json:"term"`
	AcademicYear   string     `json:"academic_year"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toResponse(p *purchase.Purchase) purchaseResponse {
	return purchaseResponse{
		ID:             p.ID,
		StaffInitials:  p.StaffInitials,
		StaffForename:  p.StaffForename,
		StaffSurname:   p.StaffSurname,
		ItemID:         p.ItemID,
		ItemName:       p.ItemName,
		Quantity:       p.Quantity,
		UnitPricePence: p.UnitPricePence,
		TotalPence:     p.TotalPence(),
		Term:           p.Term,
		AcademicYear:   p.AcademicYear,
		CreatedAt:      p.CreatedAt,
	}
}

func toResponseList(purchases []*purchase.Purchase) []purchaseResponse {
	resp := make([]purchaseResponse, len(purchases))
	for i, p := range purchases {
		resp[i] = toResponse(p)
	}

	return resp
}

type lineRequest struct {
	ItemID         *uuid.UUID `json:"item_id"`
	ItemName       string     `json:"item_name"`
	Quantity       int64      `json:"quantity"`
	UnitPricePence int64      `json:"unit_price_pence"`
}

type recordRequest struct {
	Initials string        `json:"initials"`
	Items    []lineRequest `json:"items"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lines := make([]purchase.Line, len(req.Items))
	for i, it := range req.Items {
		lines[i] = purchase.Line{
			ItemID:         it.ItemID,
			ItemName:       it.ItemName,
			Quantity:       it.Quantity,
			UnitPricePence: it.UnitPricePence,
		}
	}

	purchases, err := h.svc.Record(r.Context(), req.Initials, lines)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			http.Error(w, "staff member not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	writeJSON(w, http.StatusCreated, toResponseList(purchases))
}

func filterFromQuery(r *http.Request) purchase.ListFilter {
	q := r.URL.Query()

	return purchase.ListFilter{
		Term:          q.Get("term"),
		AcademicYear:  q.Get("academic_year"),
		StaffInitials: q.Get("staff"),
	}
}

func analyticsFilterFromQuery(r *http.Request) purchase.AnalyticsFilter {
	q := r.URL.Query()

	return purchase.AnalyticsFilter{
		Term:         q.Get("term"),
		AcademicYear: q.Get("academic_year"),
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.svc.List(r.Context(), filterFromQuery(r))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(purchases))
}

type updateRequest struct {
	ItemName       string `json:"item_name"`
	Quantity       int64  `json:"quantity"`
	UnitPricePence int64  `json:"unit_price_pence"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Update(r.Context(), id, purchase.UpdateParams{
		ItemName:       req.ItemName,
		Quantity:       req.Quantity,
		UnitPricePence: req.UnitPricePence,
	})
	if err != nil {
		if errors.Is(err, purchase.ErrNotFound) {
			http.Error(w, "purchase not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, purchase.ErrNotFound) {
			http.Error(w, "purchase not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type bulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *Handler) bulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := h.svc.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse{Deleted: deleted})
}

func (h *Handler) deleteByTerm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	deleted, err := h.svc.DeleteByTerm(r.Context(), q.Get("term"), q.Get("academic_year"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse{Deleted: deleted})
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	purchases, err := h.svc.Export(r.Context(), filter)
	if err != nil {
		if errors.Is(err, purchase.ErrNoData) {
			http.Error(w, "no purchases to export", http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(filter)))

	if err := purchase.WriteCSV(w, purchases); err != nil {
		slog.Error("failed to write csv export", "error", err)
	}
}

// exportFilename names the download after whichever filter components
// are set, so a partly filtered export is not mistaken for a full one.
func exportFilename(filter purchase.ListFilter) string {
	switch {
	case filter.Term != "" && filter.AcademicYear != "":
		return fmt.Sprintf("purchases-%s-%s.csv", filter.Term, filter.AcademicYear)
	case filter.Term != "":
		return fmt.Sprintf("purchases-%s.csv", filter.Term)
	case filter.AcademicYear != "":
		return fmt.Sprintf("purchases-%s.csv", filter.AcademicYear)
	}

	return "purchases-all.csv"
}

type popularItemResponse struct {
	ItemName          string `json:"item_name"`
	Category          string `json:"category"`
	PurchaseCount     int    `json:"purchase_count"`
	TotalQuantity     int64  `json:"total_quantity"`
	TotalRevenuePence int64  `json:"total_revenue_pence"`
	AvgPricePence     int64  `json:"avg_price_pence"`
}

func (h *Handler) popularItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.PopularItems(r.Context(), analyticsFilterFromQuery(r))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]popularItemResponse, len(items))
	for i, it := range items {
		resp[i] = popularItemResponse{
			ItemName:          it.ItemName,
			Category:          it.Category,
			PurchaseCount:     it.PurchaseCount,
			TotalQuantity:     it.TotalQuantity,
			TotalRevenuePence: it.TotalRevenuePence,
			AvgPricePence:     it.AvgPricePence,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type categoryStatResponse struct {
	Category          string  `json:"category"`
	PurchaseCount     int     `json:"purchase_count"`
	TotalQuantity     int64   `json:"total_quantity"`
	TotalRevenuePence int64   `json:"total_revenue_pence"`
	Percentage        float64 `json:"percentage"`
}

func (h *Handler) categoryBreakdown(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.CategoryBreakdown(r.Context(), analyticsFilterFromQuery(r))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]categoryStatResponse, len(stats))
	for i, st := range stats {
		resp[i] = categoryStatResponse{
			Category:          st.Category,
			PurchaseCount:     st.PurchaseCount,
			TotalQuantity:     st.TotalQuantity,
			TotalRevenuePence: st.TotalRevenuePence,
			Percentage:        st.Percentage,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type staffSpendResponse struct {
	Initials         string `json:"initials"`
	Forename         string `json:"forename"`
	Surname          string `json:"surname"`
	PurchaseCount    int    `json:"purchase_count"`
	TotalItems       int64  `json:"total_items"`
	TotalSpentPence  int64  `json:"total_spent_pence"`
	AvgPurchasePence int64  `json:"avg_purchase_pence"`
	FirstPurchase    string `json:"first_purchase"`
	LastPurchase     string `json:"last_purchase"`
}

type spendingSummaryResponse struct {
	TotalStaffWithPurchases int   `json:"total_staff_with_purchases"`
	TotalSpentPence         int64 `json:"total_spent_pence"`
	AvgSpentPerStaffPence   int64 `json:"avg_spent_per_staff_pence"`
}

type staffSpendingResponse struct {
	StaffSpending []staffSpendResponse    `json:"staff_spending"`
	Summary       spendingSummaryResponse `json:"summary"`
}

func (h *Handler) staffSpending(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.StaffSpending(r.Context(), analyticsFilterFromQuery(r))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := staffSpendingResponse{
		StaffSpending: make([]staffSpendResponse, len(report.StaffSpending)),
		Summary: spendingSummaryResponse{
			TotalStaffWithPurchases: report.Summary.TotalStaffWithPurchases,
			TotalSpentPence:         report.Summary.TotalSpentPence,
			AvgSpentPerStaffPence:   report.Summary.AvgSpentPerStaffPence,
		},
	}
	for i, row := range report.StaffSpending {
		resp.StaffSpending[i] = staffSpendResponse{
			Initials:         row.Initials,
			Forename:         row.Forename,
			Surname:          row.Surname,
			PurchaseCount:    row.PurchaseCount,
			TotalItems:       row.TotalItems,
			TotalSpentPence:  row.TotalSpentPence,
			AvgPurchasePence: row.AvgPurchasePence,
			FirstPurchase:    row.FirstPurchase,
			LastPurchase:     row.LastPurchase,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type trendBucketResponse struct {
	Date              string `json:"date"`
	PurchaseCount     int    `json:"purchase_count"`
	TotalItems        int64  `json:"total_items"`
	TotalRevenuePence int64  `json:"total_revenue_pence"`
	UniqueStaff       int    `json:"unique_staff"`
}

func (h *Handler) timeTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.svc.TimeTrends(r.Context(), analyticsFilterFromQuery(r))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]trendBucketResponse, len(trends))
	for i, t := range trends {
		resp[i] = trendBucketResponse{
			Date:              t.Date,
			PurchaseCount:     t.PurchaseCount,
			TotalItems:        t.TotalItems,
			TotalRevenuePence: t.TotalRevenuePence,
			UniqueStaff:       t.UniqueStaff,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type termSummaryResponse struct {
	Term            string `json:"term"`
	AcademicYear    string `json:"academic_year"`
	ItemCount       int64  `json:"item_count"`
	TotalSpentPence int64  `json:"total_spent_pence"`
}

type historyResponse struct {
	CurrentTerm          string                `json:"current_term"`
	CurrentYear          string                `json:"current_year"`
	CurrentTermPurchases []purchaseResponse    `json:"current_term_purchases"`
	CurrentTermSummary   termSummaryResponse   `json:"current_term_summary"`
	TermSummaries        []termSummaryResponse `json:"term_summaries"`
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	hist, err := h.svc.History(r.Context(), chi.URLParam(r, "initials"))
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			http.Error(w, "staff member not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := historyResponse{
		CurrentTerm:          hist.CurrentTerm.Term,
		CurrentYear:          hist.CurrentTerm.AcademicYear,
		CurrentTermPurchases: toResponseList(hist.CurrentPurchases),
		CurrentTermSummary: termSummaryResponse{
			Term:            hist.CurrentSummary.Term,
			AcademicYear:    hist.CurrentSummary.AcademicYear,
			ItemCount:       hist.CurrentSummary.ItemCount,
			TotalSpentPence: hist.CurrentSummary.TotalSpentPence,
		},
		TermSummaries: make([]termSummaryResponse, len(hist.TermSummaries)),
	}
	for i, sum := range hist.TermSummaries {
		resp.TermSummaries[i] = termSummaryResponse{
			Term:            sum.Term,
			AcademicYear:    sum.AcademicYear,
			ItemCount:       sum.ItemCount,
			TotalSpentPence: sum.TotalSpentPence,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
