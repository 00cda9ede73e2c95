// File: services/booking/service.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"villamar/models"
	"villamar/services/pricing"
	"villamar/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// parseRange parses and orders the stay bounds. Malformed dates surface as
// ErrInvalidRange, same as reversed ones; both are caller errors.
func parseRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := pricing.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, pricing.ErrInvalidRange
	}
	out, err := pricing.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, pricing.ErrInvalidRange
	}
	return in, out, nil
}

// loadRules fetches the current season directory and settings once. Every
// computation downstream sees this one consistent snapshot; configuration is
// never re-read mid-calculation.
func (s *DefaultBookingService) loadRules(ctx context.Context) ([]models.SeasonPeriod, models.PricingSettings, error) {
	settings, err := s.SettingsRepo.Get(ctx)
	if err != nil {
		return nil, models.PricingSettings{}, fmt.Errorf("failed to load pricing settings: %w", err)
	}
	seasons, err := s.SeasonRepo.ListActive(ctx)
	if err != nil {
		return nil, models.PricingSettings{}, fmt.Errorf("failed to load season periods: %w", err)
	}
	return seasons, *settings, nil
}

// QuoteStay prices a stay for display. Non-binding: the amount actually
// charged is recomputed at confirmation time.
func (s *DefaultBookingService) QuoteStay(ctx context.Context, checkIn, checkOut string, guests int) (*models.PriceQuote, error) {
	in, out, err := parseRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	seasons, settings, err := s.loadRules(ctx)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.Quote(in, out, guests, s.today(), seasons, settings, s.Currency)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// OpenSession quotes a stay and caches it as a quoted session the guest can
// confirm against without re-sending the dates.
func (s *DefaultBookingService) OpenSession(ctx context.Context, checkIn, checkOut string, guests int) (*models.BookingSession, error) {
	quote, err := s.QuoteStay(ctx, checkIn, checkOut, guests)
	if err != nil {
		return nil, err
	}
	session := models.BookingSession{
		SessionID: uuid.New().String(),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    guests,
		Quote:     *quote,
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store booking session: %w", err)
	}
	return &session, nil
}

// ValidateStay applies the stay rules and returns the rejection, if any, as a
// value the UI can render directly.
func (s *DefaultBookingService) ValidateStay(ctx context.Context, checkIn, checkOut string) (*pricing.Rejection, error) {
	in, out, err := parseRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	seasons, settings, err := s.loadRules(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.Validate(in, out, s.today(), seasons, settings), nil
}

// IsAvailable is the cheap pre-check for calendar rendering. Not
// authoritative: only AttemptBooking's transactional re-check decides.
func (s *DefaultBookingService) IsAvailable(ctx context.Context, checkIn, checkOut string) (bool, error) {
	in, out, err := parseRange(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	if _, err := pricing.NightsBetween(in, out); err != nil {
		return false, err
	}
	occupied, err := s.ReservationRepo.HasOverlap(ctx, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !occupied, nil
}

// CalendarFeed returns the booked ranges intersecting [from, to) for the
// month renderer.
func (s *DefaultBookingService) CalendarFeed(ctx context.Context, from, to string) ([]models.BookedPeriod, error) {
	if _, _, err := parseRange(from, to); err != nil {
		return nil, err
	}

	cacheKey := utils.AvailabilityCachePrefix + from + ":" + to
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached []models.BookedPeriod
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	periods, err := s.ReservationRepo.ListBookedPeriods(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(periods); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, utils.AvailabilityCacheTTL); err != nil {
				utils.GetLogger().Warn("failed to cache calendar feed", zap.Error(err))
			}
		}
	}
	return periods, nil
}

// ConfirmReservation applies the payment processor's success transition: the
// reservation moves from pending to confirmed and keeps blocking its dates.
func (s *DefaultBookingService) ConfirmReservation(ctx context.Context, reservationID string) error {
	if err := s.ReservationRepo.Confirm(ctx, reservationID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrReservationNotFound
		}
		return err
	}
	s.invalidateCalendar(ctx)
	utils.GetLogger().Info("reservation confirmed",
		zap.String("reservationID", reservationID))
	return nil
}

// CancelReservation releases the reservation's dates. Reversal of a commit is
// always this explicit release, never a rollback of the quoting path.
func (s *DefaultBookingService) CancelReservation(ctx context.Context, reservationID string) error {
	err := s.ReservationRepo.Cancel(ctx, reservationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrReservationNotFound
		}
		return err
	}
	s.invalidateCalendar(ctx)
	utils.GetLogger().Info("reservation cancelled, dates released",
		zap.String("reservationID", reservationID))
	return nil
}
