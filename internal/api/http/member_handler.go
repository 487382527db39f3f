package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/service"
)

type MemberHandler struct {
	members service.MemberService
}

func NewMemberHandler(members service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

type addMemberRequest struct {
	UserID            string   `json:"user_id"`
	FirstName         string   `json:"fname"`
	LastName          string   `json:"lname"`
	Address           string   `json:"address"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	WarehouseDistance *float64 `json:"warehouse_distance"`
}

func (h *MemberHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}
	m := &domain.Member{
		UserID:            req.UserID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Address:           req.Address,
		Phone:             req.Phone,
		Email:             req.Email,
		WarehouseDistance: req.WarehouseDistance,
	}
	if err := h.members.AddMember(r.Context(), m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

type editMemberRequest struct {
	FirstName *string `json:"fname"`
	LastName  *string `json:"lname"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

func (h *MemberHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	var req editMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}
	patch := domain.MemberPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	err := h.members.EditMember(r.Context(), userID, patch)
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

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	if err := h.members.DeleteMember(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	m, err := h.members.GetMember(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// List returns all members, or a last-name substring search when ?lname=
// is present.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		members []domain.Member
		err     error
	)
	if lname := r.URL.Query().Get("lname"); lname != "" {
		members, err = h.members.SearchMembers(r.Context(), lname)
	} else {
		members, err = h.members.ListMembers(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}
