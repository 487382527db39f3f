package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type rentRequest struct {
	CheckOutID string   `json:"checkout_id"`
	SerialNum  string   `json:"serial_num"`
	UserID     string   `json:"user_id"`
	DueDate    string   `json:"due_date"` // YYYY-MM-DD, optional
	Fee        *float64 `json:"fee"`
}

func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	var req rentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			writeError(w, fmt.Errorf("%w: due_date must be YYYY-MM-DD", domain.ErrValidation))
			return
		}
		dueDate = &parsed
	}

	entry, err := h.rentals.Rent(r.Context(), service.RentRequest{
		CheckOutID: req.CheckOutID,
		SerialNum:  req.SerialNum,
		UserID:     req.UserID,
		DueDate:    dueDate,
		Fee:        req.Fee,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	checkOutID := mux.Vars(r)["checkOutID"]
	entry, err := h.rentals.GetRental(r.Context(), checkOutID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	checkOutID := mux.Vars(r)["checkOutID"]
	entry, err := h.rentals.Return(r.Context(), checkOutID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

type transportRequest struct {
	EquipSerial string `json:"equip_serial"`
	DroneSerial string `json:"drone_serial"`
}

func (h *RentalHandler) ScheduleDelivery(w http.ResponseWriter, r *http.Request) {
	h.scheduleTransport(w, r, h.rentals.ScheduleDelivery)
}

func (h *RentalHandler) SchedulePickup(w http.ResponseWriter, r *http.Request) {
	h.scheduleTransport(w, r, h.rentals.SchedulePickup)
}

func (h *RentalHandler) scheduleTransport(w http.ResponseWriter, r *http.Request, schedule func(ctx context.Context, equipSerial, droneSerial string) (*domain.TransportLedgerEntry, error)) {
	var req transportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	entry, err := schedule(r.Context(), req.EquipSerial, req.DroneSerial)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// MemberRentals lists the rental ledger for one member.
func (h *RentalHandler) MemberRentals(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	entries, err := h.rentals.ListRentalsByMember(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
