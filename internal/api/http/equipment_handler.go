package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/service"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
}

func NewEquipmentHandler(equipment service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

type addEquipmentRequest struct {
	SerialNum   string  `json:"serial_num"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Model       string  `json:"model"`
	Year        *int32  `json:"year"`
	WarehouseID *string `json:"warehouse_id"`
}

func (h *EquipmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addEquipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	e := &domain.Equipment{
		SerialNum:   req.SerialNum,
		Description: req.Description,
		Type:        req.Type,
		Model:       req.Model,
		Year:        req.Year,
		WarehouseID: req.WarehouseID,
	}
	if err := h.equipment.AddEquipment(r.Context(), e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

type editEquipmentRequest struct {
	Description *string                 `json:"description"`
	Type        *string                 `json:"type"`
	Model       *string                 `json:"model"`
	Status      *domain.EquipmentStatus `json:"status"`
}

func (h *EquipmentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	serialNum := mux.Vars(r)["serialNum"]
	var req editEquipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	patch := domain.EquipmentPatch{
		Description: req.Description,
		Type:        req.Type,
		Model:       req.Model,
		Status:      req.Status,
	}
	err := h.equipment.EditEquipment(r.Context(), serialNum, patch)
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

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serialNum := mux.Vars(r)["serialNum"]
	if err := h.equipment.DeleteEquipment(r.Context(), serialNum); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	serialNum := mux.Vars(r)["serialNum"]
	e, err := h.equipment.GetEquipment(r.Context(), serialNum)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		items []domain.Equipment
		err   error
	)
	if equipType := r.URL.Query().Get("type"); equipType != "" {
		items, err = h.equipment.SearchEquipment(r.Context(), equipType)
	} else {
		items, err = h.equipment.ListEquipment(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
