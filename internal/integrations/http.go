package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/applicare/backend/internal/models"
)

// HTTPCRM posts appointment snapshots to an external CRM service.
type HTTPCRM struct {
	BaseURL string
	Client  *http.Client
}

type crmTicketRequest struct {
	TicketID      string `json:"ticket_id"`
	CustomerName  string `json:"customer_name"`
	Phone         string `json:"phone"`
	ApplianceType string `json:"appliance_type"`
	RegionLabel   string `json:"region_label"`
	SlotStart     string `json:"slot_start"`
	SlotEnd       string `json:"slot_end"`
}

type crmTicketResponse struct {
	CRMTicketID string `json:"crm_ticket_id"`
}

func (h HTTPCRM) CreateTicket(ctx context.Context, appt models.Appointment) (string, error) {
	if h.Client == nil {
		h.Client = &http.Client{Timeout: 15 * time.Second}
	}

	payload := crmTicketRequest{
		TicketID:      appt.TicketID,
		CustomerName:  appt.CustomerName,
		Phone:         appt.Phone,
		ApplianceType: appt.ApplianceType,
		RegionLabel:   appt.RegionLabel,
		SlotStart:     appt.Slot.Start.Format(time.RFC3339),
		SlotEnd:       appt.Slot.End.Format(time.RFC3339),
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/tickets", bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New("crm service error")
	}

	var r crmTicketResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	return r.CRMTicketID, nil
}

// HTTPCalendar posts appointment slots to an external calendar service.
type HTTPCalendar struct {
	BaseURL string
	Client  *http.Client
}

type calendarEventRequest struct {
	TicketID     string `json:"ticket_id"`
	TechnicianID string `json:"technician_id"`
	Summary      string `json:"summary"`
	SlotStart    string `json:"slot_start"`
	SlotEnd      string `json:"slot_end"`
}

type calendarEventResponse struct {
	EventID string `json:"event_id"`
}

func (h HTTPCalendar) SyncEvent(ctx context.Context, appt models.Appointment) (string, error) {
	if h.Client == nil {
		h.Client = &http.Client{Timeout: 15 * time.Second}
	}

	payload := calendarEventRequest{
		TicketID:     appt.TicketID,
		TechnicianID: appt.TechnicianID,
		Summary:      appt.ApplianceType + " visit for " + appt.CustomerName,
		SlotStart:    appt.Slot.Start.Format(time.RFC3339),
		SlotEnd:      appt.Slot.End.Format(time.RFC3339),
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/events", bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New("calendar service error")
	}

	var r calendarEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	return r.EventID, nil
}
