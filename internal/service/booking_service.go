package service

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/booking"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/db"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/entities"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/repository"
)

const (
	statusPending   = "pending"
	statusConfirmed = "confirmed"
	statusCancel    = "canceled"
	statusSucceeded = "succeeded"

	paymentOnline = "online"
	paymentOnsite = "onsite"
)

// BookingService runs every booking submission, customer or admin, through
// the one shared payload builder.
type BookingService struct {
	Repo          *repository.BookingRepository
	catalog       *repository.CatalogRepository
	stripeService *StripeService
	senderService *SenderService
	builder       *booking.Builder
}

func NewBookingService(repo *repository.BookingRepository, catalog *repository.CatalogRepository,
	stripeService *StripeService, senderService *SenderService) *BookingService {
	return &BookingService{
		Repo:          repo,
		catalog:       catalog,
		stripeService: stripeService,
		senderService: senderService,
		builder:       booking.NewBuilder(booking.DefaultRates()),
	}
}

func (s *BookingService) ListServices(category string) ([]entities.CatalogService, error) {
	return s.catalog.ListServices(category)
}

// Quote builds the canonical payload without persisting anything, so the UI
// can show a live cost breakdown before submission.
func (s *BookingService) Quote(req entities.BookingRequest) (*booking.Payload, error) {
	svc, variant, err := s.catalog.GetVariant(req.ServiceVariantID)
	if err != nil {
		return nil, err
	}
	return s.builder.Build(buildInput(req, svc, variant))
}

func (s *BookingService) CreateBooking(req *entities.BookingRequest) (*entities.StripeSessionResponse, error) {
	svc, variant, err := s.catalog.GetVariant(req.ServiceVariantID)
	if err != nil {
		return nil, err
	}

	payload, err := s.builder.Build(buildInput(*req, svc, variant))
	if err != nil {
		return nil, err
	}

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error encoding booking payload: %w", err)
	}

	code := fmt.Sprintf("%08X", time.Now().UnixNano()%100000000)
	record := &db.Booking{
		Code:                code,
		ServiceID:           svc.ID,
		ServiceVariantID:    variant.ID,
		ServiceTitle:        svc.Title,
		BookingDate:         payload.BookingDate,
		BookingTime:         payload.BookingTime,
		DurationMinutes:     payload.DurationMinutes,
		IsMultiDay:          payload.IsMultiDay,
		CustomerName:        payload.CustomerName,
		CustomerEmail:       payload.CustomerEmail,
		CustomerPhone:       payload.CustomerPhone,
		ServiceAddress:      payload.ServiceAddress,
		SpecialInstructions: payload.SpecialInstructions,
		TotalAmount:         payload.TotalAmount,
		PricingType:         string(payload.PricingType),
		IsHouseMoving:       payload.IsHouseMoving,
		Status:              statusPending,
		Language:            req.Language,
		Payload:             rawPayload,
		CreatedAt:           time.Now().UTC(),
		UpdatedAt:           time.Now().UTC(),
	}

	var sessionURL string
	if req.PaymentMethod == paymentOnsite {
		// Admin-created and pay-on-site bookings skip checkout entirely.
		record.Status = statusConfirmed
		record.PaymentStatus = paymentOnsite
	} else {
		sessionURL, err = s.handleCheckoutSession(req, record, payload.TotalAmount)
		if err != nil {
			return nil, err
		}
	}

	if err := s.Repo.CreateBooking(record); err != nil {
		log.Printf("Error creating booking in repository: %v", err)
		return nil, err
	}

	if record.Status == statusConfirmed {
		resp := s.toResponse(record)
		translated := StatusTranslation(statusConfirmed, record.Language)
		s.senderService.SendBookingSMS(*resp, translated)
		s.senderService.SendBookingEmail(*resp, translated)
	}

	return &entities.StripeSessionResponse{
		Code:      code,
		URL:       sessionURL,
		SessionID: record.StripeSessionID,
	}, nil
}

func (s *BookingService) GetBookingByCode(code, email string) (*entities.BookingResponse, error) {
	b, err := s.Repo.GetBookingByCode(code, email)
	if err != nil {
		return nil, err
	}
	return s.toResponse(b), nil
}

func (s *BookingService) GetBookingBySessionID(sessionID string) (*entities.BookingResponse, error) {
	b, err := s.Repo.GetBookingByStripeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(b), nil
}

func (s *BookingService) CancelBooking(code string) error {
	b, err := s.Repo.GetBookingByCodeOnly(code)
	if err != nil {
		return err
	}

	if start, err := time.Parse("2006-01-02 15:04", b.BookingDate+" "+b.BookingTime); err == nil {
		if time.Until(start) < 12*time.Hour {
			log.Printf("Booking %s cancellation rejected: less than 12 hours before start", code)
			return fmt.Errorf("bookings can only be canceled more than 12 hours before the start time")
		}
	}

	if b.StripeSessionID != "" && b.PaymentStatus == statusSucceeded {
		if err := s.stripeService.RefundPaymentBySessionID(b.StripeSessionID); err != nil {
			return err
		}
	}

	if _, err := s.Repo.CancelBooking(code); err != nil {
		return err
	}

	resp := s.toResponse(b)
	resp.Status = statusCancel
	translated := StatusTranslation(statusCancel, b.Language)
	s.senderService.SendBookingSMS(*resp, translated)
	s.senderService.SendBookingEmail(*resp, translated)
	return nil
}

func (s *BookingService) UpdateBookingAndPaymentStatusBySessionID(sessionID, status, paymentStatus string) error {
	b, err := s.Repo.GetBookingByStripeSessionID(sessionID)
	if err != nil {
		return err
	}
	return s.Repo.UpdateBookingAndPaymentStatus(b.ID, status, paymentStatus)
}

func (s *BookingService) UpdateBookingStatusPaymentAndIntentBySessionID(sessionID, status, paymentStatus, paymentIntentID string) error {
	b, err := s.Repo.GetBookingByStripeSessionID(sessionID)
	if err != nil {
		return err
	}
	return s.stripeService.repo.UpdateBookingStripeInfo(b.ID, sessionID, paymentIntentID, status, paymentStatus)
}

// GetSessionIDByPaymentIntentID resolves the checkout session a payment
// intent belongs to, needed for refund webhooks.
func (s *BookingService) GetSessionIDByPaymentIntentID(paymentIntentID string) (string, error) {
	params := &stripe.CheckoutSessionListParams{
		PaymentIntent: &paymentIntentID,
	}
	params.Limit = stripe.Int64(1)
	it := session.List(params)
	for it.Next() {
		sess := it.CheckoutSession()
		if sess != nil && sess.ID != "" {
			return sess.ID, nil
		}
	}
	return "", fmt.Errorf("no session_id found for PaymentIntentID %s", paymentIntentID)
}

func (s *BookingService) handleCheckoutSession(req *entities.BookingRequest, record *db.Booking, totalAmount float64) (string, error) {
	amount := centsAmount(totalAmount)
	description := fmt.Sprintf("%s (%s)", record.ServiceTitle, record.Code)

	sessionURL, sessionID, err := s.stripeService.CreateCheckoutSession(amount, "eur", description, req.CustomerEmail, req.Language)
	if err != nil {
		return "", err
	}

	record.StripeSessionID = sessionID
	record.PaymentStatus = statusPending
	return sessionURL, nil
}

func (s *BookingService) toResponse(b *db.Booking) *entities.BookingResponse {
	resp := &entities.BookingResponse{
		Code:                b.Code,
		ServiceID:           b.ServiceID,
		ServiceTitle:        b.ServiceTitle,
		BookingDate:         b.BookingDate,
		BookingTime:         b.BookingTime,
		IsMultiDay:          b.IsMultiDay,
		DurationMinutes:     b.DurationMinutes,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		ServiceAddress:      b.ServiceAddress,
		SpecialInstructions: b.SpecialInstructions,
		TotalAmount:         b.TotalAmount,
		PricingType:         b.PricingType,
		IsHouseMoving:       b.IsHouseMoving,
		Status:              b.Status,
		PaymentStatus:       b.PaymentStatus,
		Language:            b.Language,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
	if b.IsMultiDay && len(b.Payload) > 0 {
		var payload booking.Payload
		if err := json.Unmarshal(b.Payload, &payload); err == nil {
			resp.BookingDates = payload.BookingDates
		}
	}
	return resp
}

func buildInput(req entities.BookingRequest, svc booking.Service, variant booking.ServiceVariant) booking.BuildInput {
	return booking.BuildInput{
		Service:             svc,
		Variant:             variant,
		Quantity:            req.Quantity,
		Measurement:         req.Measurement,
		Distance:            req.Distance,
		NumberOfBoxes:       req.NumberOfBoxes,
		Date:                req.BookingDate,
		Time:                req.BookingTime,
		SelectedDates:       req.SelectedDates,
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		ServiceAddress:      req.ServiceAddress,
		SpecialInstructions: req.SpecialInstructions,
	}
}

// centsAmount converts an unrounded engine total into Stripe cents.
func centsAmount(total float64) int64 {
	return int64(math.Round(total * 100))
}

// StatusTranslation localizes a booking status for notifications.
func StatusTranslation(status, lang string) string {
	if lang == "de" {
		switch status {
		case "pending":
			return "ausstehend"
		case "confirmed":
			return "bestätigt"
		case "completed":
			return "abgeschlossen"
		case "canceled", "cancelled":
			return "storniert"
		}
	}
	// Default: English
	return status
}
