package integrations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/applicare/backend/internal/models"
)

func TestHTTPCRMCreateTicket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tickets", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "TK-abc", body["ticket_id"])
		_ = json.NewEncoder(w).Encode(map[string]string{"crm_ticket_id": "CRM-42"})
	}))
	defer srv.Close()

	ref, err := HTTPCRM{BaseURL: srv.URL}.CreateTicket(context.Background(), models.Appointment{TicketID: "TK-abc"})
	require.NoError(t, err)
	assert.Equal(t, "CRM-42", ref)
}

func TestHTTPCalendarErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := HTTPCalendar{BaseURL: srv.URL}.SyncEvent(context.Background(), models.Appointment{})
	assert.Error(t, err)
}
