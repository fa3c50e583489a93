package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every route. Route access levels live in config.RouteSecurityConfig.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestLogging)
	r.Use(AdminAuth(h.admin))

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Catalog and calendar
	api.HandleFunc("/equipments", h.ListAvailableEquipment).Methods(http.MethodGet)
	api.HandleFunc("/equipments/{id}/reserved-dates", h.ReservedDates).Methods(http.MethodGet)

	// Requests
	api.HandleFunc("/rentals", h.SubmitRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/rented", h.ListRented).Methods(http.MethodGet)

	// Admin
	api.HandleFunc("/admin/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/rentals", h.ListActiveRentals).Methods(http.MethodGet)
	api.HandleFunc("/admin/rentals/{id}/approve", h.ApproveRental).Methods(http.MethodPost)
	api.HandleFunc("/admin/rentals/{id}/return", h.ReturnRental).Methods(http.MethodPost)
	api.HandleFunc("/admin/equipments", h.ListAllEquipment).Methods(http.MethodGet)
	api.HandleFunc("/admin/equipments", h.AddEquipment).Methods(http.MethodPost)
	api.HandleFunc("/admin/equipments/{id}", h.DeleteEquipment).Methods(http.MethodDelete)

	return Recovery(CORS(allowedOrigins)(r))
}
