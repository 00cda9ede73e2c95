// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"villamar/config"
	reservationRepo "villamar/database/repository/reservation"
	"villamar/models"
	"villamar/services/booking"
	"villamar/services/notification"
	"villamar/services/tasks"

	"github.com/hibiken/asynq"
)

// InitFollowupWorker runs the async worker that re-drives failed downstream
// calls. A committed reservation never waits on these: the worker's only job
// is to eventually deliver the payment intent and the confirmation email the
// commit path could not.
func InitFollowupWorker(
	resRepo reservationRepo.ReservationRepository,
	payments booking.PaymentHandler,
	notifSvc notification.NotificationService,
	enqueuer booking.FollowupEnqueuer,
) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRetryQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePaymentRetry, handlePaymentRetry(resRepo, payments))
	mux.HandleFunc(tasks.TypeConfirmationResend, handleConfirmationResend(resRepo, notifSvc))

	// Periodically sweep for reservations still owing a followup, in case a
	// queued task was lost.
	go reconcileLoop(resRepo, enqueuer)

	go func() {
		log.Println("[FollowupWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[FollowupWorker] failed to start worker: %v", err)
		}
	}()
}

func handlePaymentRetry(
	resRepo reservationRepo.ReservationRepository,
	payments booking.PaymentHandler,
) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PaymentRetryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowupWorker] invalid payment-retry payload: %v", err)
			return err
		}

		res, err := resRepo.GetByID(ctx, p.ReservationID)
		if err != nil {
			return fmt.Errorf("load reservation %s: %w", p.ReservationID, err)
		}
		if !res.PaymentPending || res.Status == models.ReservationCancelled {
			return nil // already settled or moot
		}

		handle, err := payments.CreateDeposit(ctx, models.PaymentRequest{
			ReservationID: res.ID,
			Amount:        res.Quote.DepositAmount,
			Currency:      res.Quote.Currency,
			GuestEmail:    res.Guest.Email,
			Description:   fmt.Sprintf("Stay %s to %s", res.CheckIn, res.CheckOut),
		})
		if err != nil {
			log.Printf("[FollowupWorker] payment retry failed for %s: %v", res.ID, err)
			return err // asynq retries with backoff
		}
		return resRepo.SetPaymentResult(ctx, res.ID, handle.PaymentIntentID, false)
	}
}

func handleConfirmationResend(
	resRepo reservationRepo.ReservationRepository,
	notifSvc notification.NotificationService,
) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowupWorker] invalid confirmation payload: %v", err)
			return err
		}

		res, err := resRepo.GetByID(ctx, p.ReservationID)
		if err != nil {
			return fmt.Errorf("load reservation %s: %w", p.ReservationID, err)
		}
		if !res.NotificationPending || res.Status == models.ReservationCancelled {
			return nil
		}

		if err := notifSvc.SendBookingConfirmation(ctx, p); err != nil {
			log.Printf("[FollowupWorker] confirmation resend failed for %s: %v", p.ReservationID, err)
			return err
		}
		return resRepo.SetNotificationPending(ctx, p.ReservationID, false)
	}
}

// reconcileLoop scans for reservations with outstanding followups and
// re-queues them. Idempotent: handlers check the pending flags before acting.
func reconcileLoop(resRepo reservationRepo.ReservationRepository, enqueuer booking.FollowupEnqueuer) {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	ctx := context.Background()

	for range ticker.C {
		pending, err := resRepo.ListPendingFollowups(ctx)
		if err != nil {
			log.Printf("[FollowupWorker] reconciliation scan failed: %v", err)
			continue
		}
		for _, res := range pending {
			if res.PaymentPending {
				if err := enqueuer.EnqueuePaymentRetry(models.PaymentRetryPayload{ReservationID: res.ID}); err != nil {
					log.Printf("[FollowupWorker] failed to queue payment retry for %s: %v", res.ID, err)
				}
			}
			if res.NotificationPending {
				payload := models.ConfirmationPayload{
					ReservationID: res.ID,
					Guest:         res.Guest,
					Quote:         res.Quote,
				}
				if err := enqueuer.EnqueueConfirmationResend(payload); err != nil {
					log.Printf("[FollowupWorker] failed to queue confirmation resend for %s: %v", res.ID, err)
				}
			}
		}
	}
}
