package db

import "time"

type Booking struct {
	ID                  int
	Code                string
	ServiceID           string
	ServiceVariantID    string
	ServiceTitle        string
	BookingDate         string
	BookingTime         string
	DurationMinutes     int
	IsMultiDay          bool
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	ServiceAddress      string
	SpecialInstructions string
	TotalAmount         float64
	PricingType         string
	IsHouseMoving       bool
	Status              string
	PaymentStatus       string
	StripeSessionID     string
	Language            string
	Payload             []byte // canonical payload JSON, audit trail
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Admin struct {
	ID           int
	Email        string
	PasswordHash string
}
