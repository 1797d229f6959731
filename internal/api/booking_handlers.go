package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/booking"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/entities"
	httperrors "github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/errors"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/service"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/utils"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	category := utils.NormalizeCategory(r.URL.Query().Get("category"))
	services, err := h.Service.ListServices(category)
	if err != nil {
		http.Error(w, "Could not load services", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services)
}

// Quote runs the pricing engine without creating anything, so the checkout
// screen can show the live cost breakdown.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	payload, err := h.Service.Quote(req)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
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
		CheckoutURL: res.URL,
		SessionID:   res.SessionID,
		Message:     "Booking created.",
	})
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "email query parameter required", http.StatusBadRequest)
		return
	}
	res, err := h.Service.GetBookingByCode(code, email)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	err := h.Service.CancelBooking(code)
	if err != nil {
		http.Error(w, "Could not cancel booking", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Booking canceled"})
}

// writeEngineError maps engine validation failures to 400 and everything
// else to 409, mirroring what the create endpoint promises the frontend.
func writeEngineError(w http.ResponseWriter, err error) {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		e := httperrors.ErrBadRequest(verr.Error())
		http.Error(w, e.Message, e.Code)
		return
	}
	http.Error(w, err.Error(), http.StatusConflict)
}
