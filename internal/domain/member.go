package domain

import "time"

type Member struct {
	UserID            string    `json:"user_id"`
	FirstName         string    `json:"fname"`
	LastName          string    `json:"lname"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	StartDate         time.Time `json:"start_date"` // set once at creation
	WarehouseDistance *float64  `json:"warehouse_distance,omitempty"`
}

// MemberPatch carries optional replacement values for an edit. Nil fields
// keep their stored value.
type MemberPatch struct {
	FirstName *string
	LastName  *string
	Address   *string
	Phone     *string
	Email     *string
}

func (p MemberPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Address == nil && p.Phone == nil && p.Email == nil
}
