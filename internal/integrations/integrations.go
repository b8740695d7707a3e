package integrations

import (
	"context"

	"github.com/applicare/backend/internal/models"
)

// CRM creates an external support ticket for a confirmed appointment and
// returns its opaque reference.
type CRM interface {
	CreateTicket(ctx context.Context, appt models.Appointment) (string, error)
}

// Calendar pushes the appointment slot to an external calendar and returns
// an opaque event reference.
type Calendar interface {
	SyncEvent(ctx context.Context, appt models.Appointment) (string, error)
}
