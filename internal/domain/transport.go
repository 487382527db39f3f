package domain

import "time"

type TransportType string

const (
	TransportTypeDelivery TransportType = "DELIVERY"
	TransportTypePickup   TransportType = "PICKUP"
)

// TransportLedgerEntry is an append-only log row linking a drone to the
// equipment it carried. Never mutated after insert.
type TransportLedgerEntry struct {
	TransportID    string        `json:"transport_id"`
	DroneSerialNum string        `json:"drone_serial_num"`
	EquipSerialNum string        `json:"equip_serial_num"`
	Type           TransportType `json:"type"`
	Date           time.Time     `json:"date"`
}
