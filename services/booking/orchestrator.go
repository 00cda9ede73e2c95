// File: services/booking/orchestrator.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "villamar/database/repository/reservation"
	"villamar/models"
	"villamar/services/pricing"
	"villamar/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttemptBooking drives one booking attempt through its terminal state:
// Committed, Rejected, or Conflicted. The stay is re-validated and re-priced
// against current configuration on entry; any quote the client saw earlier is
// display-only. The availability re-check and the reservation insert are one
// atomic unit inside the repository, so two racing attempts for overlapping
// ranges cannot both commit. Post-commit collaborators (payment intent,
// confirmation email) run after the reservation is durable and their failure
// never rolls it back.
func (s *DefaultBookingService) AttemptBooking(ctx context.Context, req BookingRequest) (*BookingOutcome, error) {
	logger := utils.GetLogger()

	if req.SessionID != "" {
		session, err := s.Sessions.Get(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		req.CheckIn = session.CheckIn
		req.CheckOut = session.CheckOut
		req.Guests = session.Guests
	}

	in, out, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	seasons, settings, err := s.loadRules(ctx)
	if err != nil {
		return nil, err
	}

	if rej := pricing.Validate(in, out, s.today(), seasons, settings); rej != nil {
		logger.Info("booking attempt rejected",
			zap.String("checkIn", req.CheckIn),
			zap.String("checkOut", req.CheckOut),
			zap.String("reason", rej.Code))
		return &BookingOutcome{Status: OutcomeRejected, Rejection: rej}, nil
	}

	quote, err := pricing.Quote(in, out, req.Guests, s.today(), seasons, settings, s.Currency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reservation := models.Reservation{
		ID:                  uuid.New().String(),
		CheckIn:             req.CheckIn,
		CheckOut:            req.CheckOut,
		Guests:              req.Guests,
		Guest:               req.Guest,
		Status:              models.ReservationPending,
		Quote:               quote,
		PaymentPending:      true,
		NotificationPending: true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.ReservationRepo.Commit(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrDatesConflict) {
			logger.Info("booking attempt lost the race for its dates",
				zap.String("checkIn", req.CheckIn),
				zap.String("checkOut", req.CheckOut))
			return &BookingOutcome{Status: OutcomeConflicted}, nil
		}
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}
	logger.Info("reservation committed",
		zap.String("reservationID", reservation.ID),
		zap.String("checkIn", reservation.CheckIn),
		zap.String("checkOut", reservation.CheckOut),
		zap.Int64("depositCents", int64(quote.DepositAmount)))

	s.invalidateCalendar(ctx)

	payment := s.createDeposit(ctx, &reservation)
	s.sendConfirmation(ctx, reservation)

	if req.SessionID != "" {
		if err := s.Sessions.Delete(ctx, req.SessionID); err != nil {
			logger.Warn("failed to clear booking session", zap.Error(err))
		}
	}

	return &BookingOutcome{
		Status:      OutcomeCommitted,
		Reservation: &reservation,
		Payment:     payment,
	}, nil
}

// createDeposit invokes the payment collaborator for the deposit amount. On
// failure the reservation stays committed with paymentPending set and a retry
// is queued.
func (s *DefaultBookingService) createDeposit(ctx context.Context, reservation *models.Reservation) *models.PaymentHandle {
	logger := utils.GetLogger()

	payReq := models.PaymentRequest{
		ReservationID: reservation.ID,
		Amount:        reservation.Quote.DepositAmount,
		Currency:      reservation.Quote.Currency,
		GuestEmail:    reservation.Guest.Email,
		Description:   fmt.Sprintf("Stay %s to %s", reservation.CheckIn, reservation.CheckOut),
	}
	handle, err := s.PaymentHandler.CreateDeposit(ctx, payReq)
	if err != nil {
		logger.Error("payment intent creation failed, queuing retry",
			zap.String("reservationID", reservation.ID), zap.Error(err))
		if s.Followups != nil {
			if qErr := s.Followups.EnqueuePaymentRetry(models.PaymentRetryPayload{ReservationID: reservation.ID}); qErr != nil {
				logger.Error("failed to queue payment retry", zap.Error(qErr))
			}
		}
		return nil
	}

	reservation.PaymentIntentID = handle.PaymentIntentID
	reservation.PaymentPending = false
	if err := s.ReservationRepo.SetPaymentResult(ctx, reservation.ID, handle.PaymentIntentID, false); err != nil {
		logger.Error("failed to record payment intent on reservation",
			zap.String("reservationID", reservation.ID), zap.Error(err))
	}
	return handle
}

// sendConfirmation asks the notification collaborator for the confirmation
// email. Best-effort: failure flags the reservation and queues a resend.
func (s *DefaultBookingService) sendConfirmation(ctx context.Context, reservation models.Reservation) {
	logger := utils.GetLogger()

	payload := models.ConfirmationPayload{
		ReservationID: reservation.ID,
		Guest:         reservation.Guest,
		Quote:         reservation.Quote,
	}
	if err := s.NotificationSvc.SendBookingConfirmation(ctx, payload); err != nil {
		logger.Error("confirmation email failed, queuing resend",
			zap.String("reservationID", reservation.ID), zap.Error(err))
		if s.Followups != nil {
			if qErr := s.Followups.EnqueueConfirmationResend(payload); qErr != nil {
				logger.Error("failed to queue confirmation resend", zap.Error(qErr))
			}
		}
		return
	}
	if err := s.ReservationRepo.SetNotificationPending(ctx, reservation.ID, false); err != nil {
		logger.Error("failed to clear notification flag",
			zap.String("reservationID", reservation.ID), zap.Error(err))
	}
}
