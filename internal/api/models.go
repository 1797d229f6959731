package api

// Booking creation
type CreateBookingResponse struct {
	BookingCode string `json:"booking_code"`
	CheckoutURL string `json:"checkout_url,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
	Message     string `json:"message"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
