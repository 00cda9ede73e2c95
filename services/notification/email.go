// File: services/notification/email.go
package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"villamar/config"
	"villamar/models"

	"go.uber.org/zap"
)

// SMTPNotificationService sends guest emails through the configured mail
// relay.
type SMTPNotificationService struct {
	logger *zap.Logger
}

func NewSMTPNotificationService(logger *zap.Logger) *SMTPNotificationService {
	return &SMTPNotificationService{logger: logger}
}

func (s *SMTPNotificationService) SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	subject := fmt.Sprintf("Booking confirmed: %s — %s", payload.Quote.CheckIn, payload.Quote.CheckOut)
	body := confirmationBody(payload)
	return s.send(ctx, payload.Guest.Email, subject, body)
}

func (s *SMTPNotificationService) SendCancellationNotice(ctx context.Context, payload models.ConfirmationPayload) error {
	subject := fmt.Sprintf("Booking cancelled: %s — %s", payload.Quote.CheckIn, payload.Quote.CheckOut)
	body := fmt.Sprintf("Your reservation %s has been cancelled.\r\n", payload.ReservationID)
	return s.send(ctx, payload.Guest.Email, subject, body)
}

func confirmationBody(payload models.ConfirmationPayload) string {
	q := payload.Quote
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\r\n\r\n", payload.Guest.Name)
	fmt.Fprintf(&b, "Your stay at %s is confirmed.\r\n\r\n", config.AppConfig.PropertyName)
	fmt.Fprintf(&b, "Arrival:   %s\r\n", q.CheckIn)
	fmt.Fprintf(&b, "Departure: %s\r\n", q.CheckOut)
	fmt.Fprintf(&b, "Guests:    %d\r\n\r\n", q.Guests)
	fmt.Fprintf(&b, "Nights (%d):  %s\r\n", q.Nights, q.BasePrice.Display())
	fmt.Fprintf(&b, "Cleaning:     %s\r\n", q.CleaningFee.Display())
	fmt.Fprintf(&b, "Tourist tax:  %s\r\n", q.TouristTax.Display())
	fmt.Fprintf(&b, "Total:        %s\r\n", q.Total.Display())
	if q.RequiresFullPayment {
		fmt.Fprintf(&b, "\r\nFull payment of %s is due now.\r\n", q.DepositAmount.Display())
	} else {
		fmt.Fprintf(&b, "\r\nA deposit of %s is due now; the balance is due before arrival.\r\n", q.DepositAmount.Display())
	}
	fmt.Fprintf(&b, "\r\nReservation reference: %s\r\n", payload.ReservationID)
	return b.String()
}

func (s *SMTPNotificationService) send(ctx context.Context, to, subject, body string) error {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		return fmt.Errorf("mail relay not configured")
	}
	if to == "" {
		return fmt.Errorf("recipient address is empty")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", cfg.MailFrom, to, subject, body)
	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, cfg.MailFrom, []string{to}, []byte(msg))
	}()
	select {
	case err := <-done:
		if err != nil {
			s.logger.Error("smtp send failed", zap.String("to", to), zap.Error(err))
			return err
		}
		s.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
