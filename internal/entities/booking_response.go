package entities

import (
	"time"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/booking"
)

type BookingResponse struct {
	Code                string              `json:"code"`
	ServiceID           string              `json:"service_id"`
	ServiceTitle        string              `json:"service_title"`
	BookingDate         string              `json:"booking_date"`
	BookingTime         string              `json:"booking_time"`
	BookingDates        []booking.DateEntry `json:"booking_dates,omitempty"`
	IsMultiDay          bool                `json:"is_multi_day_booking"`
	DurationMinutes     int                 `json:"duration_minutes"`
	CustomerName        string              `json:"customer_name"`
	CustomerEmail       string              `json:"customer_email"`
	CustomerPhone       string              `json:"customer_phone,omitempty"`
	ServiceAddress      string              `json:"service_address"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	TotalAmount         float64             `json:"total_amount"`
	PricingType         string              `json:"pricing_type"`
	IsHouseMoving       bool                `json:"is_house_moving"`
	Status              string              `json:"status"`
	PaymentStatus       string              `json:"payment_status"`
	Language            string              `json:"language"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

type StripeSessionResponse struct {
	Code      string `json:"code"`
	URL       string `json:"url,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}
