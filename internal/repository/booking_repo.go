package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/db"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

const bookingColumns = `
	id, code, service_id, service_variant_id, service_title,
	booking_date, booking_time, duration_minutes, is_multi_day,
	customer_name, customer_email, customer_phone, service_address, special_instructions,
	total_amount, pricing_type, is_house_moving,
	status, payment_status, stripe_session_id, language, payload,
	created_at, updated_at`

func (r *BookingRepository) CreateBooking(b *db.Booking) error {
	query := `
		INSERT INTO bookings
		(code, service_id, service_variant_id, service_title,
		 booking_date, booking_time, duration_minutes, is_multi_day,
		 customer_name, customer_email, customer_phone, service_address, special_instructions,
		 total_amount, pricing_type, is_house_moving,
		 status, payment_status, stripe_session_id, language, payload,
		 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		b.Code,
		b.ServiceID,
		b.ServiceVariantID,
		b.ServiceTitle,
		b.BookingDate,
		b.BookingTime,
		b.DurationMinutes,
		b.IsMultiDay,
		b.CustomerName,
		b.CustomerEmail,
		b.CustomerPhone,
		b.ServiceAddress,
		b.SpecialInstructions,
		b.TotalAmount,
		b.PricingType,
		b.IsHouseMoving,
		b.Status,
		b.PaymentStatus,
		b.StripeSessionID,
		b.Language,
		b.Payload,
		b.CreatedAt,
		b.UpdatedAt,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func scanBooking(row *sql.Row) (*db.Booking, error) {
	var b db.Booking
	err := row.Scan(
		&b.ID, &b.Code, &b.ServiceID, &b.ServiceVariantID, &b.ServiceTitle,
		&b.BookingDate, &b.BookingTime, &b.DurationMinutes, &b.IsMultiDay,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.ServiceAddress, &b.SpecialInstructions,
		&b.TotalAmount, &b.PricingType, &b.IsHouseMoving,
		&b.Status, &b.PaymentStatus, &b.StripeSessionID, &b.Language, &b.Payload,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetBookingByCode(code, email string) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE code = $1 AND customer_email = $2`
	b, err := scanBooking(r.DB.QueryRow(query, code, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking with code '%s' and email '%s' not found: %w", code, email, err)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) GetBookingByCodeOnly(code string) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE code = $1`
	b, err := scanBooking(r.DB.QueryRow(query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking with code '%s' not found: %w", code, err)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) GetBookingByStripeSessionID(sessionID string) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE stripe_session_id = $1`
	b, err := scanBooking(r.DB.QueryRow(query, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking for stripe session '%s' not found: %w", sessionID, err)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) CancelBooking(code string) (string, error) {
	query := `UPDATE bookings SET status = 'canceled', updated_at = NOW() WHERE code = $1 RETURNING status`
	var status string
	err := r.DB.QueryRow(query, code).Scan(&status)
	if err != nil {
		log.Printf("Error canceling booking: %v", err)
		return "", err
	}
	return status, nil
}

func (r *BookingRepository) UpdateBookingAndPaymentStatus(id int, status, paymentStatus string) error {
	_, err := r.DB.Exec(
		`UPDATE bookings SET status = $2, payment_status = $3, updated_at = NOW() WHERE id = $1`,
		id, status, paymentStatus,
	)
	if err != nil {
		return fmt.Errorf("error updating booking %d status: %w", id, err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatusByCode(code, status string) error {
	result, err := r.DB.Exec(
		`UPDATE bookings SET status = $2, updated_at = NOW() WHERE code = $1`,
		code, status,
	)
	if err != nil {
		return fmt.Errorf("error updating booking %s status: %w", code, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("booking with code '%s' not found", code)
	}
	return nil
}

func (r *BookingRepository) DeleteBookingByID(id int) error {
	_, err := r.DB.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	return err
}

// ListBookings filters by booking date, service category and status; empty
// filters match everything.
func (r *BookingRepository) ListBookings(date, category, status string) ([]db.Booking, error) {
	query := `
	SELECT
		b.id, b.code, b.service_id, b.service_variant_id, b.service_title,
		b.booking_date, b.booking_time, b.duration_minutes, b.is_multi_day,
		b.customer_name, b.customer_email, b.customer_phone, b.service_address, b.special_instructions,
		b.total_amount, b.pricing_type, b.is_house_moving,
		b.status, b.payment_status, b.stripe_session_id, b.language, b.payload,
		b.created_at, b.updated_at
	FROM bookings b
	JOIN services s ON s.id = b.service_id
	WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		query += " AND b.booking_date = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if category != "" {
		query += " AND s.category = $" + strconv.Itoa(idx)
		args = append(args, category)
		idx++
	}
	if status != "" {
		query += " AND b.status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	query += " ORDER BY b.booking_date DESC, b.booking_time DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		err := rows.Scan(
			&b.ID, &b.Code, &b.ServiceID, &b.ServiceVariantID, &b.ServiceTitle,
			&b.BookingDate, &b.BookingTime, &b.DurationMinutes, &b.IsMultiDay,
			&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.ServiceAddress, &b.SpecialInstructions,
			&b.TotalAmount, &b.PricingType, &b.IsHouseMoving,
			&b.Status, &b.PaymentStatus, &b.StripeSessionID, &b.Language, &b.Payload,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}
