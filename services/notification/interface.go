// File: services/notification/interface.go
package notification

import (
	"context"

	"villamar/models"
)

// NotificationService is the outbound-mail collaborator. Best-effort and
// asynchronous from the booking's point of view: a committed reservation is
// valid whether or not its confirmation ever sends.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
	SendCancellationNotice(ctx context.Context, payload models.ConfirmationPayload) error
}
