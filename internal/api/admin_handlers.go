package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/entities"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/service"
)

type AdminHandler struct {
	Service *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	category := r.URL.Query().Get("category")
	status := r.URL.Query().Get("status")
	bookings, err := h.Service.ListBookings(date, category, status)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

// AdminCreateBooking creates a booking on a customer's behalf. It feeds the
// same request shape through the same engine as the public checkout.
func (h *AdminHandler) AdminCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	res, err := h.Service.CreateBooking(&req)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CreateBookingResponse{
		BookingCode: res.Code,
		Message:     "Booking created.",
	})
}

func (h *AdminHandler) AdminUpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateBookingStatus(code, req.Status); err != nil {
		http.Error(w, "Could not update booking", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Booking updated"})
}

func (h *AdminHandler) AdminDeleteBooking(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteBookingByID(id); err != nil {
		http.Error(w, "Could not delete booking", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Booking deleted"})
}
