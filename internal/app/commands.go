package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"property_booking/internal/adapters/observability"
	"property_booking/internal/domain"
)

type BookingService struct {
	validator *BookingValidator
	payments  domain.PaymentProcessor
}

func NewBookingService(v *BookingValidator, p domain.PaymentProcessor) *BookingService {
	return &BookingService{validator: v, payments: p}
}

// Book validates the submission and hands it to the payment processor.
// Validation failures come back as *domain.ValidationError.
func (s *BookingService) Book(ctx context.Context, b domain.Booking) (domain.Confirmation, error) {
	if err := s.validator.Validate(b); err != nil {
		observability.ObserveBooking("rejected")
		return domain.Confirmation{}, err
	}

	ev := log.Info().
		Str("name", b.FirstName+" "+b.LastName).
		Str("email", b.Email).
		Str("phone", b.PhoneNumber).
		Str("property_id", b.PropertyID).
		Str("check_in", b.CheckIn).
		Str("check_out", b.CheckOut)
	if b.Guests != nil {
		ev = ev.Int("guests", *b.Guests)
	}
	ev.Msg("processing booking")

	rc, err := s.payments.Charge(ctx, b)
	if err != nil {
		observability.ObserveBooking("failed")
		return domain.Confirmation{}, fmt.Errorf("charge booking: %w", err)
	}
	observability.ObserveBooking("confirmed")

	log.Info().
		Str("booking_id", rc.BookingID).
		Str("confirmation", rc.ConfirmationNumber).
		Str("txn", rc.TransactionID).
		Msg("booking confirmed")

	return domain.Confirmation{
		BookingID:          rc.BookingID,
		ConfirmationNumber: rc.ConfirmationNumber,
		Message: fmt.Sprintf(
			"Booking confirmed! Your confirmation number is %s. A confirmation email will be sent to %s.",
			rc.ConfirmationNumber, b.Email,
		),
	}, nil
}
