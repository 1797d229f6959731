package service

import (
	"fmt"
	"log"
	"time"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CompletePastBookings marks confirmed bookings whose date has passed as
// "completed".
func (s *JobService) CompletePastBookings() error {
	log.Println("Cron Job: Checking for bookings to mark as 'completed'...")

	bookingIDs, err := s.Repo.GetConfirmedBookingIDsPastDate()
	if err != nil {
		return fmt.Errorf("cron job: failed to get confirmed bookings past their date: %w", err)
	}

	if len(bookingIDs) == 0 {
		log.Println("Cron Job: No confirmed bookings found past their date.")
		return nil
	}

	log.Printf("Cron Job: Found %d bookings to mark as 'completed'. IDs: %v", len(bookingIDs), bookingIDs)

	err = s.Repo.UpdateBookingStatuses(bookingIDs, "completed")
	if err != nil {
		return fmt.Errorf("cron job: failed to update booking statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d bookings to 'completed'.", len(bookingIDs))
	return nil
}

// DeleteStalePendingBookings removes bookings whose Stripe checkout was
// abandoned.
func (s *JobService) DeleteStalePendingBookings(maxAge time.Duration) (int64, error) {
	return s.Repo.DeletePendingBookingsOlderThan(time.Now().UTC().Add(-maxAge))
}
