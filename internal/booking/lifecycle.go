package booking

import (
	"context"
	"time"

	"github.com/applicare/backend/internal/models"
	"github.com/applicare/backend/internal/utils"
)

const (
	StatusConfirmed   = "confirmed"
	StatusRescheduled = "rescheduled"
	StatusCancelled   = "cancelled"
)

type ConfirmRequest struct {
	CustomerID   string
	JobID        string
	TechnicianID string
	Slot         models.TimeSlot
}

// Confirm creates the appointment. The chosen slot is taken as given —
// it is not checked against earlier proposals or the technician's
// availability, so a caller may book any interval. CRM and calendar sync
// are best-effort; their failure never blocks the confirmation.
func (s *Service) Confirm(ctx context.Context, req ConfirmRequest) (models.Appointment, error) {
	customer, ok := s.Store.GetCustomer(req.CustomerID)
	if !ok {
		return models.Appointment{}, ErrCustomerNotFound
	}
	job, ok := s.Store.GetJob(req.JobID)
	if !ok {
		return models.Appointment{}, ErrJobNotFound
	}

	appt := s.Store.CreateAppointment(models.Appointment{
		JobID:         job.ID,
		CustomerID:    customer.ID,
		CustomerName:  customer.FullName,
		Phone:         customer.Phone,
		Email:         customer.Email,
		AddressText:   customer.AddressText,
		Pincode:       customer.Pincode,
		RegionLabel:   customer.RegionLabel,
		ApplianceType: job.ApplianceType,
		FaultSymptoms: job.FaultSymptoms,
		TechnicianID:  req.TechnicianID,
		Slot:          req.Slot,
		Status:        StatusConfirmed,
		CreatedAt:     time.Now().UTC(),
	})

	crmRef, err := s.CRM.CreateTicket(ctx, appt)
	if err != nil {
		s.Logger.Warn().Err(err).Str("ticket_id", appt.TicketID).Msg("crm ticket creation failed")
	}
	calRef, err := s.Calendar.SyncEvent(ctx, appt)
	if err != nil {
		s.Logger.Warn().Err(err).Str("ticket_id", appt.TicketID).Msg("calendar sync failed")
	}
	appt, _ = s.Store.UpdateAppointment(appt.TicketID, func(a *models.Appointment) {
		a.CRMTicketID = crmRef
		a.CalendarRef = calRef
	})

	s.Logger.Info().
		Str("ticket_id", appt.TicketID).
		Str("customer", utils.MaskPII(customer.FullName)).
		Msg("booking confirmed")
	return appt, nil
}

// RescheduleResult distinguishes an applied reschedule from a rejection.
// A rejection is not an error: it carries the technician's first declared
// window as the suggested alternative.
type RescheduleResult struct {
	Accepted    bool
	Appointment models.Appointment
	Alternative *models.TimeSlot
	Message     string
}

// Reschedule accepts the new slot only when it equals one of the assigned
// technician's declared availability windows exactly — stricter than the
// proposal engine's overlap rule.
func (s *Service) Reschedule(ctx context.Context, ticketID string, newSlot models.TimeSlot) (RescheduleResult, error) {
	appt, ok := s.Store.GetAppointment(ticketID)
	if !ok {
		return RescheduleResult{}, ErrTicketNotFound
	}
	tech, ok := s.Directory.Get(appt.TechnicianID)
	if !ok {
		return RescheduleResult{}, ErrTechnicianNotFound
	}

	match := false
	for _, avail := range tech.Availability {
		if avail.Start.Equal(newSlot.Start) && avail.End.Equal(newSlot.End) {
			match = true
			break
		}
	}
	if !match {
		result := RescheduleResult{Message: "requested slot not available"}
		if len(tech.Availability) > 0 {
			alt := tech.Availability[0]
			result.Alternative = &alt
		}
		return result, nil
	}

	now := time.Now().UTC()
	appt, _ = s.Store.UpdateAppointment(ticketID, func(a *models.Appointment) {
		a.Slot = newSlot
		a.Status = StatusRescheduled
		a.RescheduledAt = &now
	})
	s.Logger.Info().Str("ticket_id", ticketID).Msg("booking rescheduled")
	return RescheduleResult{Accepted: true, Appointment: appt}, nil
}

// Cancel is terminal but not guarded: cancelling an already cancelled
// ticket succeeds again and overwrites reason and timestamp.
func (s *Service) Cancel(ctx context.Context, ticketID, reason string) (models.Appointment, error) {
	now := time.Now().UTC()
	appt, ok := s.Store.UpdateAppointment(ticketID, func(a *models.Appointment) {
		a.Status = StatusCancelled
		a.CancelReason = reason
		a.CancelledAt = &now
	})
	if !ok {
		return models.Appointment{}, ErrTicketNotFound
	}
	s.Logger.Info().Str("ticket_id", ticketID).Msg("booking cancelled")
	return appt, nil
}

// TransferPayload is the compact masked summary handed to a human agent.
type TransferPayload struct {
	Customer      string   `json:"customer"`
	Phone         string   `json:"phone"`
	ApplianceType string   `json:"appliance"`
	FaultSymptoms []string `json:"fault_symptoms"`
	TicketID      string   `json:"ticket_id,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

// WarmTransfer builds the escalation summary from an appointment snapshot.
func WarmTransfer(appt models.Appointment, reason string) TransferPayload {
	return TransferPayload{
		Customer:      appt.CustomerName,
		Phone:         utils.MaskPII(appt.Phone),
		ApplianceType: appt.ApplianceType,
		FaultSymptoms: appt.FaultSymptoms,
		TicketID:      appt.TicketID,
		Reason:        reason,
	}
}
