package http

import (
	"context"
	"net/http"
	"time"

	"equipment-rental-backend/internal/domain"
	"equipment-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	equipment service.EquipmentService
	rentals   service.RentalService
	admin     service.AdminService
	db        Pinger
}

func NewHandler(equipment service.EquipmentService, rentals service.RentalService, admin service.AdminService, db Pinger) *Handler {
	return &Handler{
		equipment: equipment,
		rentals:   rentals,
		admin:     admin,
		db:        db,
	}
}

// RentedItem is the public view of an ongoing rental; contact details stay admin-only.
type RentedItem struct {
	ID            string      `json:"id"`
	EquipmentName *string     `json:"equipment_name"`
	Name          string      `json:"name"`
	EndDate       domain.Date `json:"end_date"`
}

type addEquipmentRequest struct {
	Name string `json:"name"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "database": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "database": "ok"})
}

func (h *Handler) ListAvailableEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipment.ListAvailable(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) ReservedDates(w http.ResponseWriter, r *http.Request) {
	days, err := h.rentals.ReservedDates(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (h *Handler) ListRented(w http.ResponseWriter, r *http.Request) {
	items, err := h.rentals.ListRentedRequests(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	out := make([]RentedItem, 0, len(items))
	for _, it := range items {
		out = append(out, RentedItem{ID: it.ID, EquipmentName: it.EquipmentName, Name: it.Name, EndDate: it.EndDate})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) SubmitRental(w http.ResponseWriter, r *http.Request) {
	var input service.SubmitRentalInput
	if err := decodeJSON(w, r, &input); err != nil {
		WriteError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body")
		return
	}

	req, err := h.rentals.SubmitRentalRequest(r.Context(), input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body")
		return
	}

	token, expiresAt, err := h.admin.Login(r.Context(), body.Password)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}

func (h *Handler) ListActiveRentals(w http.ResponseWriter, r *http.Request) {
	items, err := h.rentals.ListActiveRequests(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) ApproveRental(w http.ResponseWriter, r *http.Request) {
	req, err := h.rentals.ApproveRentalRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) ReturnRental(w http.ResponseWriter, r *http.Request) {
	req, err := h.rentals.ReturnRentalRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) ListAllEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipment.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	var body addEquipmentRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body")
		return
	}

	e, err := h.equipment.AddEquipment(r.Context(), body.Name)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	if err := h.equipment.DeleteEquipment(r.Context(), mux.Vars(r)["id"]); err != nil {
		handleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
