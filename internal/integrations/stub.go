package integrations

import (
	"context"

	"github.com/applicare/backend/internal/models"
)

// Stub implementations used when no external endpoints are configured.
// They always succeed with a fixed placeholder reference.

type StubCRM struct{}

func (StubCRM) CreateTicket(ctx context.Context, appt models.Appointment) (string, error) {
	return "CRM-PLACEHOLDER", nil
}

type StubCalendar struct{}

func (StubCalendar) SyncEvent(ctx context.Context, appt models.Appointment) (string, error) {
	return "CAL-PLACEHOLDER", nil
}
