package entities

import "github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/booking"

// BookingRequest is the submission body shared by the customer checkout flow
// and the admin creation flow. Numeric form values stay raw strings; the
// engine owns every parsing rule.
type BookingRequest struct {
	ServiceVariantID string `json:"service_variant_id"`

	Quantity      string `json:"quantity"`
	Measurement   string `json:"measurement"`
	Distance      string `json:"distance"`
	NumberOfBoxes string `json:"number_of_boxes"`

	BookingDate   string              `json:"booking_date"`
	BookingTime   string              `json:"booking_time"`
	SelectedDates []booking.DateEntry `json:"selected_dates"`

	CustomerName        string `json:"customer_name"`
	CustomerEmail       string `json:"customer_email"`
	CustomerPhone       string `json:"customer_phone"`
	ServiceAddress      string `json:"service_address"`
	SpecialInstructions string `json:"special_instructions"`

	PaymentMethod string `json:"payment_method"` // "online" or "onsite"
	Language      string `json:"language"`
}
