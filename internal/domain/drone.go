package domain

type DroneStatus string

const (
	DroneStatusAvailable DroneStatus = "AVAILABLE"
	DroneStatusInTransit DroneStatus = "IN_TRANSIT"
	DroneStatusInactive  DroneStatus = "INACTIVE"
)

// Drones dispatched on a transport go IN_TRANSIT. There is no automatic
// trip back: operators return a drone to AVAILABLE (or ground it) through
// an edit.
var droneTransitions = map[DroneStatus]map[DroneStatus]bool{
	DroneStatusAvailable: {DroneStatusInTransit: true},
	DroneStatusInTransit: {DroneStatusAvailable: true},
}

func (s DroneStatus) CanTransition(to DroneStatus) bool {
	return droneTransitions[s][to]
}

func (s DroneStatus) Valid() bool {
	switch s {
	case DroneStatusAvailable, DroneStatusInTransit, DroneStatusInactive:
		return true
	}
	return false
}

type Drone struct {
	SerialNum      string      `json:"serial_num"`
	Name           string      `json:"name"`
	Model          string      `json:"model"`
	Status         DroneStatus `json:"status"`
	WeightCapacity *float64    `json:"weight_capacity,omitempty"`
}

type DronePatch struct {
	Name   *string
	Model  *string
	Status *DroneStatus
}

func (p DronePatch) IsEmpty() bool {
	return p.Name == nil && p.Model == nil && p.Status == nil
}
