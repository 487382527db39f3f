package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/service"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) MemberCheckouts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	count, err := h.reports.CheckoutCountByMember(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user_id": userID, "checkouts": count})
}

func (h *ReportHandler) MostRentedEquipment(w http.ResponseWriter, r *http.Request) {
	row, err := h.reports.MostRentedEquipment(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *ReportHandler) MostUsedDrone(w http.ResponseWriter, r *http.Request) {
	row, err := h.reports.MostUsedDrone(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *ReportHandler) TopRenter(w http.ResponseWriter, r *http.Request) {
	row, err := h.reports.TopRenter(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *ReportHandler) EquipmentBeforeYear(w http.ResponseWriter, r *http.Request) {
	equipType := r.URL.Query().Get("type")
	yearStr := r.URL.Query().Get("year")
	if equipType == "" || yearStr == "" {
		writeError(w, fmt.Errorf("%w: type and year query parameters are required", domain.ErrValidation))
		return
	}
	year, err := strconv.ParseInt(yearStr, 10, 32)
	if err != nil {
		writeError(w, fmt.Errorf("%w: year must be numeric", domain.ErrValidation))
		return
	}
	rows, err := h.reports.EquipmentByTypeBeforeYear(r.Context(), equipType, int32(year))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
