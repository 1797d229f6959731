package service

import (
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/db"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/entities"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/repository"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/utils"
)

// AdminService is the admin booking-creation flow. Creation delegates to the
// shared BookingService so admin bookings go through the exact same pricing
// and payload rules as customer checkout.
type AdminService struct {
	bookingService *BookingService
	bookingRepo    *repository.BookingRepository
}

func NewAdminService(bookingService *BookingService, bookingRepo *repository.BookingRepository) *AdminService {
	return &AdminService{
		bookingService: bookingService,
		bookingRepo:    bookingRepo,
	}
}

func (s *AdminService) ListBookings(date, category, status string) ([]db.Booking, error) {
	return s.bookingRepo.ListBookings(date, utils.NormalizeCategory(category), status)
}

// CreateBooking creates a booking on a customer's behalf. Payment is settled
// on site, so no checkout session is opened.
func (s *AdminService) CreateBooking(req *entities.BookingRequest) (*entities.StripeSessionResponse, error) {
	req.PaymentMethod = paymentOnsite
	return s.bookingService.CreateBooking(req)
}

func (s *AdminService) UpdateBookingStatus(code, status string) error {
	return s.bookingRepo.UpdateStatusByCode(code, status)
}

func (s *AdminService) DeleteBookingByID(id int) error {
	return s.bookingRepo.DeleteBookingByID(id)
}
