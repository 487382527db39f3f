package domain

type EquipmentStatus string

const (
	EquipmentStatusAvailable EquipmentStatus = "AVAILABLE"
	EquipmentStatusRented    EquipmentStatus = "RENTED"
	// Auxiliary values settable only through a direct edit, never by the
	// rental engine.
	EquipmentStatusLost     EquipmentStatus = "LOST"
	EquipmentStatusInactive EquipmentStatus = "INACTIVE"
)

// equipmentTransitions is the set of status changes the rental engine is
// allowed to perform. Anything else goes through an edit.
var equipmentTransitions = map[EquipmentStatus]map[EquipmentStatus]bool{
	EquipmentStatusAvailable: {EquipmentStatusRented: true},
	EquipmentStatusRented:    {EquipmentStatusAvailable: true},
}

// CanTransition reports whether from->to is a legal engine-driven status
// change for equipment.
func (s EquipmentStatus) CanTransition(to EquipmentStatus) bool {
	return equipmentTransitions[s][to]
}

// Valid reports whether s is one of the enumerated statuses.
func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusRented, EquipmentStatusLost, EquipmentStatusInactive:
		return true
	}
	return false
}

type Equipment struct {
	SerialNum   string          `json:"serial_num"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Model       string          `json:"model"`
	Year        *int32          `json:"year,omitempty"`
	Status      EquipmentStatus `json:"status"`
	RenterID    *string         `json:"renter_id,omitempty"` // set iff Status == RENTED
	WarehouseID *string         `json:"warehouse_id,omitempty"`
}

type EquipmentPatch struct {
	Description *string
	Type        *string
	Model       *string
	Status      *EquipmentStatus
}

func (p EquipmentPatch) IsEmpty() bool {
	return p.Description == nil && p.Type == nil && p.Model == nil && p.Status == nil
}
