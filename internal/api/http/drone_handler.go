package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/service"
)

type DroneHandler struct {
	drones  service.DroneService
	rentals service.RentalService
}

func NewDroneHandler(drones service.DroneService, rentals service.RentalService) *DroneHandler {
	return &DroneHandler{drones: drones, rentals: rentals}
}

type addDroneRequest struct {
	SerialNum      string   `json:"serial_num"`
	Name           string   `json:"name"`
	Model          string   `json:"model"`
	WeightCapacity *float64 `json:"weight_capacity"`
}

func (h *DroneHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addDroneRequest
	if !decodeBody(w, r, &req) {
		return
	}
	d := &domain.Drone{
		SerialNum:      req.SerialNum,
		Name:           req.Name,
		Model:          req.Model,
		WeightCapacity: req.WeightCapacity,
	}
	if err := h.drones.AddDrone(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

type editDroneRequest struct {
	Name   *string             `json:"name"`
	Model  *string             `json:"model"`
	Status *domain.DroneStatus `json:"status"`
}

func (h *DroneHandler) Edit(w http.ResponseWriter, r *http.Request) {
	serialNum := mux.Vars(r)["serialNum"]
	var req editDroneRequest
	if !decodeBody(w, r, &req) {
		return
	}
	patch := domain.DronePatch{
		Name:   req.Name,
		Model:  req.Model,
		Status: req.Status,
	}
	err := h.drones.EditDrone(r.Context(), serialNum, patch)
	if errors.Is(err, domain.ErrNoChanges) {
		writeNoChanges(w)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

func (h *DroneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serialNum := mux.Vars(r)["serialNum"]
	if err := h.drones.DeleteDrone(r.Context(), serialNum); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (h *DroneHandler) Get(w http.ResponseWriter, r *http.Request) {
	serialNum := mux.Vars(r)["serialNum"]
	d, err := h.drones.GetDrone(r.Context(), serialNum)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DroneHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		drones []domain.Drone
		err    error
	)
	if model := r.URL.Query().Get("model"); model != "" {
		drones, err = h.drones.SearchDrones(r.Context(), model)
	} else {
		drones, err = h.drones.ListDrones(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drones)
}

// Transports lists the append-only transport log for one drone.
func (h *DroneHandler) Transports(w http.ResponseWriter, r *http.Request) {
	serialNum := mux.Vars(r)["serialNum"]
	entries, err := h.rentals.ListTransportsByDrone(r.Context(), serialNum)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
