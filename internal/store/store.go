// Package store is the in-memory record store for customers, jobs and
// appointments. It is injected into the services that mutate it; nothing
// here survives a restart.
package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/applicare/backend/internal/models"
)

// Store guards all three catalogs with one RWMutex. Update closures run
// under the lock, so each record mutates atomically; concurrent writers
// to the same record serialize and the last writer wins.
type Store struct {
	mu           sync.RWMutex
	customers    map[string]models.Customer
	jobs         map[string]models.Job
	appointments map[string]models.Appointment
}

func New() *Store {
	return &Store{
		customers:    map[string]models.Customer{},
		jobs:         map[string]models.Job{},
		appointments: map[string]models.Appointment{},
	}
}

// NewID builds identifiers like CUST-1a2b3c4d.
func NewID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (s *Store) CreateCustomer(c models.Customer) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = NewID("CUST")
	}
	s.customers[c.ID] = c
	return c
}

func (s *Store) GetCustomer(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	return c, ok
}

func (s *Store) UpdateCustomer(id string, apply func(*models.Customer)) (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return models.Customer{}, false
	}
	apply(&c)
	c.ID = id
	s.customers[id] = c
	return c, true
}

func (s *Store) CreateJob(j models.Job) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j.ID == "" {
		j.ID = NewID("JOB")
	}
	s.jobs[j.ID] = j
	return j
}

func (s *Store) GetJob(id string) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	return j, ok
}

func (s *Store) CreateAppointment(a models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.TicketID == "" {
		a.TicketID = NewID("TK")
	}
	s.appointments[a.TicketID] = a
	return a
}

func (s *Store) GetAppointment(ticketID string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[ticketID]
	return a, ok
}

func (s *Store) UpdateAppointment(ticketID string, apply func(*models.Appointment)) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[ticketID]
	if !ok {
		return models.Appointment{}, false
	}
	apply(&a)
	a.TicketID = ticketID
	s.appointments[ticketID] = a
	return a, true
}

func (s *Store) CustomersSnapshot() map[string]models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Customer, len(s.customers))
	for id, c := range s.customers {
		out[id] = c
	}
	return out
}

func (s *Store) JobsSnapshot() map[string]models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Job, len(s.jobs))
	for id, j := range s.jobs {
		out[id] = j
	}
	return out
}

func (s *Store) Counts() (customers, jobs, appointments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers), len(s.jobs), len(s.appointments)
}
