package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/applicare/backend/internal/directory"
	"github.com/applicare/backend/internal/integrations"
	"github.com/applicare/backend/internal/models"
	"github.com/applicare/backend/internal/store"
)

type fixedResolver string

func (f fixedResolver) Resolve(ctx context.Context, pincode string) string {
	return string(f)
}

type failingCRM struct{}

func (failingCRM) CreateTicket(ctx context.Context, appt models.Appointment) (string, error) {
	return "", errors.New("crm down")
}

func newTestService(region string) *Service {
	return &Service{
		Store:     store.New(),
		Directory: directory.New(directory.Seed()),
		Resolver:  fixedResolver(region),
		CRM:       integrations.StubCRM{},
		Calendar:  integrations.StubCalendar{},
		Logger:    zerolog.Nop(),
	}
}

func seedBooking(t *testing.T, svc *Service) (models.Customer, models.Job) {
	t.Helper()
	customer := svc.Store.CreateCustomer(models.Customer{
		FullName:    "Asha Kumari",
		Phone:       "9876543210",
		Pincode:     "560001",
		RegionLabel: "Bengaluru Urban",
	})
	job := svc.Store.CreateJob(models.Job{
		RequestType:   RequestService,
		ApplianceType: "WashingMachine",
		FaultSymptoms: []string{"wm_vibration"},
		Urgency:       UrgencyNormal,
		CustomerID:    customer.ID,
	})
	return customer, job
}

func TestConfirmCreatesConfirmedAppointment(t *testing.T) {
	svc := newTestService("Bengaluru Urban")
	customer, job := seedBooking(t, svc)
	tech, _ := svc.Directory.Get("tech_01")

	appt, err := svc.Confirm(context.Background(), ConfirmRequest{
		CustomerID:   customer.ID,
		JobID:        job.ID,
		TechnicianID: tech.ID,
		Slot:         tech.Availability[0],
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(appt.TicketID, "TK-"))
	assert.Equal(t, StatusConfirmed, appt.Status)
	assert.Equal(t, "Asha Kumari", appt.CustomerName)
	assert.Equal(t, []string{"wm_vibration"}, appt.FaultSymptoms)
	assert.Equal(t, "CRM-PLACEHOLDER", appt.CRMTicketID)
	assert.Equal(t, "CAL-PLACEHOLDER", appt.CalendarRef)

	stored, ok := svc.Store.GetAppointment(appt.TicketID)
	require.True(t, ok)
	assert.Equal(t, appt, stored)
}

func TestConfirmUnknownReferences(t *testing.T) {
	svc := newTestService("Bengaluru Urban")
	customer, job := seedBooking(t, svc)

	_, err := svc.Confirm(context.Background(), ConfirmRequest{CustomerID: "CUST-missing", JobID: job.ID, TechnicianID: "tech_01"})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Confirm(context.Background(), ConfirmRequest{CustomerID: customer.ID, JobID: "JOB-missing", TechnicianID: "tech_01"})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestConfirmSurvivesIntegrationFailure(t *testing.T) {
	svc := newTestService("Bengaluru Urban")
	svc.CRM = failingCRM{}
	customer, job := seedBooking(t, svc)
	tech, _ := svc.Directory.Get("tech_01")

	appt, err := svc.Confirm(context.Background(), ConfirmRequest{
		CustomerID:   customer.ID,
		JobID:        job.ID,
		TechnicianID: tech.ID,
		Slot:         tech.Availability[0],
	})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, appt.Status)
	assert.Empty(t, appt.CRMTicketID)
	assert.Equal(t, "CAL-PLACEHOLDER", appt.CalendarRef)
}

func confirmFixture(t *testing.T, svc *Service) models.Appointment {
	t.Helper()
	customer, job := seedBooking(t, svc)
	tech, _ := svc.Directory.Get("tech_01")
	appt, err := svc.Confirm(context.Background(), ConfirmRequest{
		CustomerID:   customer.ID,
		JobID:        job.ID,
		TechnicianID: tech.ID,
		Slot:         tech.Availability[0],
	})
	require.NoError(t, err)
	return appt
}

func TestRescheduleExactSlotAccepted(t *testing.T) {
	svc := newTestService("Bengaluru Urban")
	appt := confirmFixture(t, svc)
	tech, _ := svc.Directory.Get("tech_01")

	res, err := svc.Reschedule(context.Background(), appt.TicketID, tech.Availability[1])
	require.NoError(t, err)
	require.True(t, res.Accepted)
	assert.Equal(t, StatusRescheduled, res.Appointment.Status)
	assert.True(t, res.Appointment.Slot.Start.Equal(tech.Availability[1].Start))
	require.NotNil(t, res.Appointment.RescheduledAt)
}

func TestRescheduleRejectionSuggestsAlternative(t *testing.T) {
	svc := newTestService("Bengaluru Urban")
	appt := confirmFixture(t, svc)
	tech, _ := svc.Directory.Get("tech_01")

	// overlaps availability but is not an exact window, so it is rejected
	offSlot := models.TimeSlot{
		Start: tech.Availability[0].Start.Add(30 * time.Minute),
		End:   tech.Availability[0].End,
	}
	res, err := svc.Reschedule(context.Background(), appt.TicketID, offSlot)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	require.NotNil(t, res.Alternative)
	assert.True(t, res.Alternative.Start.Equal(tech.Availability[0].Start))

	// recorded slot and status stay untouched
	stored, _ := svc.Store.GetAppointment(appt.TicketID)
	assert.Equal(t, StatusConfirmed, stored.Status)
	assert.True(t, stored.Slot.Start.Equal(appt.Slot.Start))
}

func TestRescheduleUnknownTicket(t *testing.T) {
	svc := newTestService("Bengaluru Urban")
	_, err := svc.Reschedule(context.Background(), "TK-missing", models.TimeSlot{})
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestRescheduleUnknownTechnician(t *testing.T) {
	svc := newTestService("Bengaluru Urban")
	customer, job := seedBooking(t, svc)
	appt, err := svc.Confirm(context.Background(), ConfirmRequest{
		CustomerID:   customer.ID,
		JobID:        job.ID,
		TechnicianID: "tech_gone",
	})
	require.NoError(t, err)

	_, err = svc.Reschedule(context.Background(), appt.TicketID, models.TimeSlot{})
	assert.ErrorIs(t, err, ErrTechnicianNotFound)
}

func TestCancelTransitionsAndOverwrites(t *testing.T) {
	svc := newTestService("Bengaluru Urban")
	appt := confirmFixture(t, svc)

	first, err := svc.Cancel(context.Background(), appt.TicketID, "customer travelling")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, first.Status)
	assert.Equal(t, "customer travelling", first.CancelReason)
	require.NotNil(t, first.CancelledAt)

	// re-cancelling succeeds and overwrites the reason
	second, err := svc.Cancel(context.Background(), appt.TicketID, "duplicate request")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, second.Status)
	assert.Equal(t, "duplicate request", second.CancelReason)
}

func TestCancelUnknownTicket(t *testing.T) {
	svc := newTestService("Bengaluru Urban")
	_, err := svc.Cancel(context.Background(), "TK-missing", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWarmTransferMasksPhone(t *testing.T) {
	payload := WarmTransfer(models.Appointment{
		TicketID:      "TK-abc",
		CustomerName:  "Asha Kumari",
		Phone:         "9876543210",
		ApplianceType: "WashingMachine",
		FaultSymptoms: []string{"wm_vibration"},
	}, "needs human")
	assert.Equal(t, "98***10", payload.Phone)
	assert.Equal(t, "needs human", payload.Reason)
	assert.Equal(t, "TK-abc", payload.TicketID)
}
