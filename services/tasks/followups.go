// File: services/tasks/followups.go
package tasks

import (
	"encoding/json"

	"villamar/config"
	"villamar/models"

	"github.com/hibiken/asynq"
)

const (
	TypePaymentRetry       = "followup:payment"
	TypeConfirmationResend = "followup:confirmation"
)

// NewPaymentRetryTask builds a task that re-attempts payment-intent creation
// for a committed reservation.
func NewPaymentRetryTask(payload models.PaymentRetryPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePaymentRetry, b), nil
}

// NewConfirmationResendTask builds a task that resends the confirmation
// email.
func NewConfirmationResendTask(payload models.ConfirmationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeConfirmationResend, b), nil
}

// AsynqFollowupEnqueuer queues downstream retries on the shared Redis-backed
// queue. It satisfies booking.FollowupEnqueuer.
type AsynqFollowupEnqueuer struct {
	Client *asynq.Client
}

// NewAsynqFollowupEnqueuer creates the enqueuer with its own asynq client.
func NewAsynqFollowupEnqueuer() *AsynqFollowupEnqueuer {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRetryQueueDB,
	})
	return &AsynqFollowupEnqueuer{Client: client}
}

func (e *AsynqFollowupEnqueuer) EnqueuePaymentRetry(payload models.PaymentRetryPayload) error {
	task, err := NewPaymentRetryTask(payload)
	if err != nil {
		return err
	}
	_, err = e.Client.Enqueue(task, asynq.MaxRetry(10))
	return err
}

func (e *AsynqFollowupEnqueuer) EnqueueConfirmationResend(payload models.ConfirmationPayload) error {
	task, err := NewConfirmationResendTask(payload)
	if err != nil {
		return err
	}
	_, err = e.Client.Enqueue(task, asynq.MaxRetry(10))
	return err
}
