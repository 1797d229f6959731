package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/service"
)

const (
	confirmed       = "confirmed"
	canceled        = "canceled"
	refunded        = "refunded"
	statusSucceeded = "succeeded"
)

type StripeWebhookHandler struct {
	StripeSecret   string
	bookingService *service.BookingService
	senderService  *service.SenderService
}

func NewStripeWebhookHandler(stripeSecret string, bookingService *service.BookingService, senderService *service.SenderService) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		StripeSecret:   stripeSecret,
		bookingService: bookingService,
		senderService:  senderService,
	}
}

func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading body: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, h.StripeSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("Error parsing checkout.session: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if sess.ID == "" {
			log.Printf("No session ID in checkout.session.completed")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		paymentIntentID := ""
		if sess.PaymentIntent != nil {
			paymentIntentID = sess.PaymentIntent.ID
		}
		err := h.bookingService.UpdateBookingStatusPaymentAndIntentBySessionID(sess.ID, confirmed, statusSucceeded, paymentIntentID)
		if err != nil {
			log.Printf("DB error: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		booking, err := h.bookingService.GetBookingBySessionID(sess.ID)
		if err != nil {
			log.Printf("DB error: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		translated := service.StatusTranslation(confirmed, booking.Language)
		h.senderService.SendBookingSMS(*booking, translated)
		h.senderService.SendBookingEmail(*booking, translated)

	case "charge.refunded":
		var charge stripe.Charge
		json.Unmarshal(event.Data.Raw, &charge)
		if charge.PaymentIntent != nil && charge.PaymentIntent.ID != "" {
			si, err := h.bookingService.GetSessionIDByPaymentIntentID(charge.PaymentIntent.ID)
			if err != nil {
				log.Printf("No session_id found for PaymentIntent %s: %v", charge.PaymentIntent.ID, err)
				return
			}
			err = h.bookingService.UpdateBookingAndPaymentStatusBySessionID(si, canceled, refunded)
			if err != nil {
				log.Printf("DB error: %v", err)
				return
			}
		}
	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *StripeWebhookHandler) GetBookingBySessionIDHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id required", http.StatusBadRequest)
		return
	}
	booking, err := h.bookingService.GetBookingBySessionID(sessionID)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}
