package repository

import (
	"database/sql"
	"fmt"
	"time"
)

type StripeRepository struct {
	DB *sql.DB
}

func NewStripeRepository(db *sql.DB) *StripeRepository {
	return &StripeRepository{DB: db}
}

// UpdateBookingStripeInfo records the outcome of a Stripe event on a booking.
func (r *StripeRepository) UpdateBookingStripeInfo(bookingID int, stripeSessionID, stripePaymentIntentID, newStatus, newPaymentStatus string) error {
	query := `
		UPDATE bookings
		SET
			stripe_session_id = $2,
			stripe_payment_intent_id = $3,
			status = $4,
			payment_status = $5,
			updated_at = $6
		WHERE id = $1`

	_, err := r.DB.Exec(query,
		bookingID,
		stripeSessionID,
		stripePaymentIntentID,
		newStatus,
		newPaymentStatus,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("error updating booking %d with stripe info: %w", bookingID, err)
	}
	return nil
}
