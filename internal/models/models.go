package models

import "time"

// TimeSlot is a half-open interval [Start, End).
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SlotInput carries a caller-supplied slot before timestamp parsing.
// Entries that do not parse are dropped, not rejected.
type SlotInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Technician struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Skills       []string   `json:"skills"`
	Appliances   []string   `json:"appliances_supported"`
	Regions      []string   `json:"regions"`
	Availability []TimeSlot `json:"availability_slots"`
}

type RegionEntry struct {
	PincodePrefix string `json:"pincode_prefix"`
	RegionLabel   string `json:"region_label"`
}

type Customer struct {
	ID             string      `json:"id"`
	FullName       string      `json:"full_name"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email,omitempty"`
	AddressText    string      `json:"address_text"`
	Pincode        string      `json:"pincode"`
	RegionLabel    string      `json:"region_label"`
	PreferredSlots []SlotInput `json:"preferred_time_slots"`
}

type Job struct {
	ID                  string   `json:"id"`
	RequestType         string   `json:"request_type"`
	ApplianceType       string   `json:"appliance_type"`
	ModelIfKnown        string   `json:"model_if_known,omitempty"`
	FaultSymptoms       []string `json:"fault_symptoms"`
	InstallationDetails []string `json:"installation_details"`
	Urgency             string   `json:"urgency"`
	CustomerID          string   `json:"customer_id"`
}

// Appointment snapshots the customer and job at confirm time; later
// contact or address edits do not rewrite it.
type Appointment struct {
	TicketID      string     `json:"ticket_id"`
	JobID         string     `json:"job_id"`
	CustomerID    string     `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email,omitempty"`
	AddressText   string     `json:"address_text"`
	Pincode       string     `json:"pincode"`
	RegionLabel   string     `json:"region_label"`
	ApplianceType string     `json:"appliance_type"`
	FaultSymptoms []string   `json:"fault_symptoms"`
	TechnicianID  string     `json:"technician_id"`
	Slot          TimeSlot   `json:"slot"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	RescheduledAt *time.Time `json:"rescheduled_at,omitempty"`
	CancelReason  string     `json:"cancel_reason,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CRMTicketID   string     `json:"crm_id,omitempty"`
	CalendarRef   string     `json:"calendar_id,omitempty"`
}

type Proposal struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	TechnicianID string    `json:"technician_id"`
}
