package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"skygear-backend/internal/service"
)

// NewRouter wires every caller-facing operation onto one mux router.
func NewRouter(
	members service.MemberService,
	equipment service.EquipmentService,
	drones service.DroneService,
	rentals service.RentalService,
	reports service.ReportService,
) *mux.Router {
	memberHandler := NewMemberHandler(members)
	equipmentHandler := NewEquipmentHandler(equipment)
	droneHandler := NewDroneHandler(drones, rentals)
	rentalHandler := NewRentalHandler(rentals)
	reportHandler := NewReportHandler(reports)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/members", memberHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/members", memberHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/members/{userID}", memberHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/members/{userID}", memberHandler.Edit).Methods(http.MethodPatch)
	api.HandleFunc("/members/{userID}", memberHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/members/{userID}/rentals", rentalHandler.MemberRentals).Methods(http.MethodGet)

	api.HandleFunc("/equipment", equipmentHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/equipment", equipmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{serialNum}", equipmentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{serialNum}", equipmentHandler.Edit).Methods(http.MethodPatch)
	api.HandleFunc("/equipment/{serialNum}", equipmentHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/drones", droneHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/drones", droneHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/drones/{serialNum}", droneHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/drones/{serialNum}", droneHandler.Edit).Methods(http.MethodPatch)
	api.HandleFunc("/drones/{serialNum}", droneHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/drones/{serialNum}/transports", droneHandler.Transports).Methods(http.MethodGet)

	api.HandleFunc("/rentals", rentalHandler.Rent).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{checkOutID}", rentalHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{checkOutID}/return", rentalHandler.Return).Methods(http.MethodPost)
	api.HandleFunc("/transports/delivery", rentalHandler.ScheduleDelivery).Methods(http.MethodPost)
	api.HandleFunc("/transports/pickup", rentalHandler.SchedulePickup).Methods(http.MethodPost)

	api.HandleFunc("/reports/member-checkouts/{userID}", reportHandler.MemberCheckouts).Methods(http.MethodGet)
	api.HandleFunc("/reports/most-rented-equipment", reportHandler.MostRentedEquipment).Methods(http.MethodGet)
	api.HandleFunc("/reports/most-used-drone", reportHandler.MostUsedDrone).Methods(http.MethodGet)
	api.HandleFunc("/reports/top-renter", reportHandler.TopRenter).Methods(http.MethodGet)
	api.HandleFunc("/reports/equipment-before-year", reportHandler.EquipmentBeforeYear).Methods(http.MethodGet)

	return r
}
