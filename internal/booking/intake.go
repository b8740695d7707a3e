package booking

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/applicare/backend/internal/directory"
	"github.com/applicare/backend/internal/integrations"
	"github.com/applicare/backend/internal/models"
	"github.com/applicare/backend/internal/schedule"
	"github.com/applicare/backend/internal/store"
	"github.com/applicare/backend/internal/utils"
)

const (
	RequestService      = "service"
	RequestInstallation = "installation"

	UrgencyNormal = "normal"
)

// RegionResolver is satisfied by region.Resolver; tests inject fixed labels.
type RegionResolver interface {
	Resolve(ctx context.Context, pincode string) string
}

// Service orchestrates intake, slot proposal and the appointment
// lifecycle over the injected store and catalogs.
type Service struct {
	Store     *store.Store
	Directory *directory.Directory
	Resolver  RegionResolver
	CRM       integrations.CRM
	Calendar  integrations.Calendar
	Logger    zerolog.Logger
}

// IntakeRequest carries an already format-validated service or
// installation request.
type IntakeRequest struct {
	FullName            string
	Phone               string
	Email               string
	AddressText         string
	Pincode             string
	PreferredSlots      []models.SlotInput
	ApplianceType       string
	ModelIfKnown        string
	FaultSymptoms       []string
	InstallationDetails []string
	Urgency             string
}

type IntakeResult struct {
	CustomerID         string            `json:"customer_id"`
	JobID              string            `json:"job_id"`
	RegionLabel        string            `json:"region_label"`
	MatchedTechCount   int               `json:"matched_tech_count"`
	ProposedSlots      []models.Proposal `json:"proposed_slots"`
	KnowledgeQuestions []string          `json:"knowledge_questions,omitempty"`
}

// RegisterServiceIssue resolves the region, matches technicians on the
// first fault symptom as required skill, proposes slots and persists the
// customer and job. Empty matches and fallback labels are normal results.
func (s *Service) RegisterServiceIssue(ctx context.Context, req IntakeRequest) IntakeResult {
	regionLabel := s.Resolver.Resolve(ctx, req.Pincode)

	requiredSkill := ""
	if len(req.FaultSymptoms) > 0 {
		requiredSkill = req.FaultSymptoms[0]
	}
	techs := s.Directory.Match(req.ApplianceType, requiredSkill, regionLabel)
	proposals := schedule.ProposeAcross(techs, schedule.ParseSlots(req.PreferredSlots))

	customer, job := s.persistIntake(req, regionLabel, RequestService)

	s.Logger.Info().
		Str("customer", utils.MaskPII(customer.FullName)).
		Str("phone", utils.MaskPII(customer.Phone)).
		Str("region", regionLabel).
		Int("matched", len(techs)).
		Msg("service issue registered")

	return IntakeResult{
		CustomerID:         customer.ID,
		JobID:              job.ID,
		RegionLabel:        regionLabel,
		MatchedTechCount:   len(techs),
		ProposedSlots:      proposals,
		KnowledgeQuestions: KnowledgeQuestions(req.ApplianceType),
	}
}

// BookInstallation is the installation-flow counterpart. The derived
// install skill tag is recorded on the job but matching stays on
// appliance + region, so any supporting technician qualifies.
func (s *Service) BookInstallation(ctx context.Context, req IntakeRequest) IntakeResult {
	regionLabel := s.Resolver.Resolve(ctx, req.Pincode)

	techs := s.Directory.Match(req.ApplianceType, "", regionLabel)
	proposals := schedule.ProposeAcross(techs, schedule.ParseSlots(req.PreferredSlots))

	installSkill := "install_" + strings.ToLower(req.ApplianceType)
	req.InstallationDetails = append(req.InstallationDetails, installSkill)

	customer, job := s.persistIntake(req, regionLabel, RequestInstallation)

	s.Logger.Info().
		Str("customer", utils.MaskPII(customer.FullName)).
		Str("pincode", req.Pincode).
		Str("region", regionLabel).
		Msg("installation booked")

	return IntakeResult{
		CustomerID:       customer.ID,
		JobID:            job.ID,
		RegionLabel:      regionLabel,
		MatchedTechCount: len(techs),
		ProposedSlots:    proposals,
	}
}

func (s *Service) persistIntake(req IntakeRequest, regionLabel, requestType string) (models.Customer, models.Job) {
	customer := s.Store.CreateCustomer(models.Customer{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Email:          req.Email,
		AddressText:    req.AddressText,
		Pincode:        req.Pincode,
		RegionLabel:    regionLabel,
		PreferredSlots: req.PreferredSlots,
	})

	urgency := req.Urgency
	if urgency == "" {
		urgency = UrgencyNormal
	}
	faultSymptoms := req.FaultSymptoms
	installDetails := req.InstallationDetails
	if requestType == RequestService {
		installDetails = nil
	} else {
		faultSymptoms = nil
	}
	job := s.Store.CreateJob(models.Job{
		RequestType:         requestType,
		ApplianceType:       req.ApplianceType,
		ModelIfKnown:        req.ModelIfKnown,
		FaultSymptoms:       faultSymptoms,
		InstallationDetails: installDetails,
		Urgency:             urgency,
		CustomerID:          customer.ID,
	})
	return customer, job
}

type TechnicianAvailability struct {
	TechnicianID   string            `json:"technician_id"`
	TechnicianName string            `json:"technician_name"`
	Slots          []models.TimeSlot `json:"slots"`
}

type AvailabilityResult struct {
	RegionLabel  string                   `json:"region_label"`
	Availability []TechnicianAvailability `json:"availability"`
}

// Availability lists qualifying technicians for a pincode + appliance with
// their first two availability windows.
func (s *Service) Availability(ctx context.Context, pincode, appliance string) AvailabilityResult {
	regionLabel := s.Resolver.Resolve(ctx, pincode)

	result := AvailabilityResult{RegionLabel: regionLabel, Availability: []TechnicianAvailability{}}
	for _, tech := range s.Directory.Match(appliance, "", regionLabel) {
		slots := tech.Availability
		if len(slots) > 2 {
			slots = slots[:2]
		}
		result.Availability = append(result.Availability, TechnicianAvailability{
			TechnicianID:   tech.ID,
			TechnicianName: tech.Name,
			Slots:          slots,
		})
	}
	return result
}

// UpdateContact changes phone and/or email; empty fields are left alone.
func (s *Service) UpdateContact(ctx context.Context, customerID, phone, email string) (models.Customer, error) {
	customer, ok := s.Store.UpdateCustomer(customerID, func(c *models.Customer) {
		if phone != "" {
			c.Phone = phone
		}
		if email != "" {
			c.Email = email
		}
	})
	if !ok {
		return models.Customer{}, ErrCustomerNotFound
	}
	s.Logger.Info().Str("customer_id", customerID).Msg("contact updated")
	return customer, nil
}

// ChangeAddress updates the free-text address and, when the pincode
// changes, re-resolves the region label.
func (s *Service) ChangeAddress(ctx context.Context, customerID, addressText, pincode string) (models.Customer, error) {
	regionLabel := ""
	if pincode != "" {
		regionLabel = s.Resolver.Resolve(ctx, pincode)
	}
	customer, ok := s.Store.UpdateCustomer(customerID, func(c *models.Customer) {
		if addressText != "" {
			c.AddressText = addressText
		}
		if pincode != "" {
			c.Pincode = pincode
			c.RegionLabel = regionLabel
		}
	})
	if !ok {
		return models.Customer{}, ErrCustomerNotFound
	}
	s.Logger.Info().Str("customer_id", customerID).Msg("address updated")
	return customer, nil
}
