package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
	"github.com/swiftmove/backend/pkg/notify"
)

// BookingService defines the business logic for booking requests.
type BookingService interface {
	// Submit validates and stores a new booking with status "pending".
	Submit(ctx context.Context, b *model.Booking) error
	List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type bookingService struct {
	repo     repository.BookingRepository
	notifier notify.Notifier
}

// NewBookingService creates a BookingService. notifier may be nil.
func NewBookingService(repo repository.BookingRepository, notifier notify.Notifier) BookingService {
	return &bookingService{repo: repo, notifier: notifier}
}

func (s *bookingService) Submit(ctx context.Context, b *model.Booking) error {
	trimBooking(b)
	if err := validateBooking(b); err != nil {
		return err
	}

	b.Status = model.BookingStatusPending
	if err := s.repo.Save(ctx, b); err != nil {
		return err
	}

	alert(s.notifier, fmt.Sprintf("New booking: %s for %s on %s (%s, %s)",
		b.ServiceType, b.Name, b.PreferredDate.Format("2006-01-02"), b.Phone, b.Email))
	return nil
}

func (s *bookingService) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	return s.repo.List(ctx, opts)
}

func (s *bookingService) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidBookingStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func validateBooking(b *model.Booking) error {
	for _, err := range []error{
		required("name", b.Name),
		required("email", b.Email),
		required("phone", b.Phone),
		required("serviceType", b.ServiceType),
		required("currentAddress", b.CurrentAddress),
	} {
		if err != nil {
			return err
		}
	}
	if b.PreferredDate.IsZero() {
		return required("preferredDate", "")
	}

	switch {
	case !model.ValidServiceType(b.ServiceType):
		return invalid("serviceType")
	case !model.ValidMoveSize(b.MoveSize):
		return invalid("moveSize")
	case !model.ValidPreferredTime(b.PreferredTime):
		return invalid("preferredTime")
	case !model.ValidHoursNeeded(b.HoursNeeded):
		return invalid("hoursNeeded")
	}
	return nil
}

func trimBooking(b *model.Booking) {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	b.Phone = strings.TrimSpace(b.Phone)
	b.ServiceType = strings.TrimSpace(b.ServiceType)
	b.MoveSize = strings.TrimSpace(b.MoveSize)
	b.CurrentAddress = strings.TrimSpace(b.CurrentAddress)
	b.NewAddress = strings.TrimSpace(b.NewAddress)
	b.PreferredTime = strings.TrimSpace(b.PreferredTime)
	b.HoursNeeded = strings.TrimSpace(b.HoursNeeded)
	b.SpecialRequests = strings.TrimSpace(b.SpecialRequests)
}
