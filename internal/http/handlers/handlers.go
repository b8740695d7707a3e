package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/applicare/backend/internal/booking"
	"github.com/applicare/backend/internal/directory"
	"github.com/applicare/backend/internal/models"
	"github.com/applicare/backend/internal/store"
	"github.com/applicare/backend/internal/utils"
)

type Handler struct {
	Booking   *booking.Service
	Store     *store.Store
	Directory *directory.Directory
	Validator *validator.Validate
	Logger    zerolog.Logger
	AdminKey  string
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type ServiceIssueRequest struct {
	FullName           string             `json:"full_name" validate:"required"`
	Phone              string             `json:"phone" validate:"required,inphone"`
	Email              string             `json:"email" validate:"omitempty,email"`
	AddressText        string             `json:"address_text"`
	Pincode            string             `json:"pincode" validate:"required,pincode"`
	PreferredTimeSlots []models.SlotInput `json:"preferred_time_slots"`
	ApplianceType      string             `json:"appliance_type" validate:"required"`
	ModelIfKnown       string             `json:"model_if_known"`
	FaultSymptoms      []string           `json:"fault_symptoms"`
	Urgency            string             `json:"urgency"`
}

// @Summary Register a service issue
// @Description Captures the customer, resolves the service region and proposes technician slots
// @Tags intake
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/service-issues [post]
func (h *Handler) ServiceIssue(c *gin.Context) {
	var req ServiceIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationReasons(err))
		return
	}

	result := h.Booking.RegisterServiceIssue(c.Request.Context(), booking.IntakeRequest{
		FullName:       strings.TrimSpace(req.FullName),
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.TrimSpace(req.Email),
		AddressText:    strings.TrimSpace(req.AddressText),
		Pincode:        strings.TrimSpace(req.Pincode),
		PreferredSlots: req.PreferredTimeSlots,
		ApplianceType:  strings.TrimSpace(req.ApplianceType),
		ModelIfKnown:   req.ModelIfKnown,
		FaultSymptoms:  req.FaultSymptoms,
		Urgency:        req.Urgency,
	})
	c.JSON(http.StatusOK, gin.H{
		"status":              "ok",
		"customer_id":         result.CustomerID,
		"job_id":              result.JobID,
		"region_label":        result.RegionLabel,
		"matched_tech_count":  result.MatchedTechCount,
		"proposed_slots":      result.ProposedSlots,
		"knowledge_questions": result.KnowledgeQuestions,
	})
}

type InstallationRequest struct {
	FullName            string             `json:"full_name" validate:"required"`
	Phone               string             `json:"phone" validate:"required,inphone"`
	Email               string             `json:"email" validate:"omitempty,email"`
	AddressText         string             `json:"address_text"`
	Pincode             string             `json:"pincode" validate:"required,pincode"`
	PreferredTimeSlots  []models.SlotInput `json:"preferred_time_slots"`
	ApplianceType       string             `json:"appliance_type" validate:"required"`
	ModelIfKnown        string             `json:"model_if_known"`
	InstallationDetails []string           `json:"installation_details"`
	Urgency             string             `json:"urgency"`
}

func (h *Handler) Installation(c *gin.Context) {
	var req InstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationReasons(err))
		return
	}

	result := h.Booking.BookInstallation(c.Request.Context(), booking.IntakeRequest{
		FullName:            strings.TrimSpace(req.FullName),
		Phone:               strings.TrimSpace(req.Phone),
		Email:               strings.TrimSpace(req.Email),
		AddressText:         strings.TrimSpace(req.AddressText),
		Pincode:             strings.TrimSpace(req.Pincode),
		PreferredSlots:      req.PreferredTimeSlots,
		ApplianceType:       strings.TrimSpace(req.ApplianceType),
		ModelIfKnown:        req.ModelIfKnown,
		InstallationDetails: req.InstallationDetails,
		Urgency:             req.Urgency,
	})
	c.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"customer_id":        result.CustomerID,
		"job_id":             result.JobID,
		"region_label":       result.RegionLabel,
		"matched_tech_count": result.MatchedTechCount,
		"proposed_slots":     result.ProposedSlots,
	})
}

func (h *Handler) Availability(c *gin.Context) {
	pincode := strings.TrimSpace(c.Query("pincode"))
	appliance := strings.TrimSpace(c.Query("appliance"))
	var reasons []string
	if !pincodeRE.MatchString(pincode) {
		reasons = append(reasons, "invalid pincode (6 digits)")
	}
	if appliance == "" {
		reasons = append(reasons, "appliance required")
	}
	if len(reasons) > 0 {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "pincode and appliance required", reasons)
		return
	}

	result := h.Booking.Availability(c.Request.Context(), pincode, appliance)
	c.JSON(http.StatusOK, result)
}

type ConfirmBookingRequest struct {
	CustomerID   string           `json:"customer_id" validate:"required"`
	JobID        string           `json:"job_id" validate:"required"`
	TechnicianID string           `json:"technician_id" validate:"required"`
	ChosenSlot   models.SlotInput `json:"chosen_slot" validate:"required"`
}

// @Summary Confirm a booking
// @Tags booking
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/bookings/confirm [post]
func (h *Handler) ConfirmBooking(c *gin.Context) {
	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationReasons(err))
		return
	}
	slot, ok := parseSlot(req.ChosenSlot)
	if !ok {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed",
			[]string{"invalid chosen_slot (RFC3339 start and end required)"})
		return
	}

	appt, err := h.Booking.Confirm(c.Request.Context(), booking.ConfirmRequest{
		CustomerID:   req.CustomerID,
		JobID:        req.JobID,
		TechnicianID: req.TechnicianID,
		Slot:         slot,
	})
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Confirm failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ticket_id": appt.TicketID, "appointment": appt})
}

type RescheduleRequest struct {
	NewSlot models.SlotInput `json:"new_slot" validate:"required"`
}

func (h *Handler) Reschedule(c *gin.Context) {
	ticketID := c.Param("ticket_id")
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	slot, ok := parseSlot(req.NewSlot)
	if !ok {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed",
			[]string{"invalid new_slot (RFC3339 start and end required)"})
		return
	}

	result, err := h.Booking.Reschedule(c.Request.Context(), ticketID, slot)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Reschedule failed", err.Error())
		return
	}
	if !result.Accepted {
		c.JSON(http.StatusOK, gin.H{
			"status":           "no",
			"message":          result.Message,
			"alternative_slot": result.Alternative,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ticket_id": ticketID, "appointment": result.Appointment})
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) Cancel(c *gin.Context) {
	ticketID := c.Param("ticket_id")
	var req CancelRequest
	// cancel allows an empty body
	_ = c.ShouldBindJSON(&req)

	if _, err := h.Booking.Cancel(c.Request.Context(), ticketID, req.Reason); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Cancel failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ticket_id": ticketID})
}

type UpdateContactRequest struct {
	Phone string `json:"phone" validate:"omitempty,inphone"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (h *Handler) UpdateContact(c *gin.Context) {
	customerID := c.Param("id")
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationReasons(err))
		return
	}

	customer, err := h.Booking.UpdateContact(c.Request.Context(), customerID, strings.TrimSpace(req.Phone), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "customer": customer})
}

type ChangeAddressRequest struct {
	AddressText string `json:"address_text"`
	Pincode     string `json:"pincode" validate:"omitempty,pincode"`
}

func (h *Handler) ChangeAddress(c *gin.Context) {
	customerID := c.Param("id")
	var req ChangeAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationReasons(err))
		return
	}

	customer, err := h.Booking.ChangeAddress(c.Request.Context(), customerID, strings.TrimSpace(req.AddressText), strings.TrimSpace(req.Pincode))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "customer": customer})
}

type EscalateRequest struct {
	TicketID string `json:"ticket_id"`
	Reason   string `json:"reason"`
	Context  struct {
		CustomerName  string   `json:"customer_name"`
		Phone         string   `json:"phone"`
		ApplianceType string   `json:"appliance_type"`
		FaultSymptoms []string `json:"fault_symptoms"`
	} `json:"context"`
}

// Escalate builds a warm-transfer summary for a human agent, from the
// appointment when the ticket is known, otherwise from caller context.
func (h *Handler) Escalate(c *gin.Context) {
	var req EscalateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	var payload booking.TransferPayload
	if appt, ok := h.Store.GetAppointment(req.TicketID); ok {
		payload = booking.WarmTransfer(appt, req.Reason)
	} else {
		payload = booking.TransferPayload{
			Customer:      req.Context.CustomerName,
			Phone:         utils.MaskPII(req.Context.Phone),
			ApplianceType: req.Context.ApplianceType,
			FaultSymptoms: req.Context.FaultSymptoms,
			Reason:        req.Reason,
		}
	}
	h.Logger.Info().Str("ticket_id", req.TicketID).Str("reason", req.Reason).Msg("escalation requested")
	c.JSON(http.StatusOK, gin.H{"status": "ok", "transfer_payload": payload})
}

// DebugState dumps current state with PII masked; admin only.
func (h *Handler) DebugState(c *gin.Context) {
	customers := h.Store.CustomersSnapshot()
	masked := make(map[string]models.Customer, len(customers))
	for id, cust := range customers {
		cust.Phone = utils.MaskPII(cust.Phone)
		cust.Email = utils.MaskPII(cust.Email)
		masked[id] = cust
	}
	_, _, appointments := h.Store.Counts()
	c.JSON(http.StatusOK, gin.H{
		"customers":          masked,
		"jobs":               h.Store.JobsSnapshot(),
		"appointments_count": appointments,
		"technicians_count":  len(h.Directory.All()),
	})
}

func parseSlot(in models.SlotInput) (models.TimeSlot, bool) {
	start, err := time.Parse(time.RFC3339, in.Start)
	if err != nil {
		return models.TimeSlot{}, false
	}
	end, err := time.Parse(time.RFC3339, in.End)
	if err != nil {
		return models.TimeSlot{}, false
	}
	return models.TimeSlot{Start: start, End: end}, true
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
