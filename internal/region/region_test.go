package region

import (
	"context"
	"errors"
	"testing"

	"github.com/applicare/backend/internal/models"
)

type scriptedLookup struct {
	places []Place
	err    error
	calls  int
}

func (s *scriptedLookup) Lookup(ctx context.Context, pincode string) ([]Place, error) {
	s.calls++
	return s.places, s.err
}

func TestResolveNormalizesAgainstTable(t *testing.T) {
	client := &scriptedLookup{places: []Place{{Name: "Bengaluru", State: "Bengaluru Urban District"}}}
	r := &Resolver{Client: client, Table: DefaultTable()}
	got := r.Resolve(context.Background(), "560001")
	if got != "Bengaluru Urban" {
		t.Fatalf("expected normalized label, got %q", got)
	}
}

func TestResolveReturnsRawCandidateWithoutTableMatch(t *testing.T) {
	client := &scriptedLookup{places: []Place{{Name: "Mysuru", State: "Karnataka"}}}
	r := &Resolver{Client: client, Table: DefaultTable()}
	got := r.Resolve(context.Background(), "570001")
	if got != "Karnataka" {
		t.Fatalf("expected raw state label, got %q", got)
	}
}

func TestResolveFallsBackToLocalityWhenStateMissing(t *testing.T) {
	client := &scriptedLookup{places: []Place{{Name: "Mumbai Suburban East"}}}
	r := &Resolver{Client: client, Table: DefaultTable()}
	got := r.Resolve(context.Background(), "400001")
	if got != "Mumbai Suburban" {
		t.Fatalf("expected locality normalized to table label, got %q", got)
	}
}

func TestResolveRetriesThenPrefixFallback(t *testing.T) {
	client := &scriptedLookup{err: errors.New("connection refused")}
	r := &Resolver{Client: client, Table: DefaultTable(), Retries: 2}
	got := r.Resolve(context.Background(), "560034")
	if got != "Bengaluru Urban" {
		t.Fatalf("expected prefix fallback, got %q", got)
	}
	if client.calls != 3 {
		t.Fatalf("expected 3 attempts (1 initial + 2 retries), got %d", client.calls)
	}
}

func TestResolveEmptyPlacesConsumesBudget(t *testing.T) {
	client := &scriptedLookup{}
	r := &Resolver{Client: client, Table: DefaultTable(), Retries: 1}
	got := r.Resolve(context.Background(), "110011")
	if got != "Delhi" {
		t.Fatalf("expected prefix fallback, got %q", got)
	}
	if client.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", client.calls)
	}
}

func TestResolveUnknownSentinel(t *testing.T) {
	client := &scriptedLookup{err: errors.New("timeout")}
	r := &Resolver{Client: client, Table: DefaultTable(), Retries: 2}
	if got := r.Resolve(context.Background(), "999999"); got != Unknown {
		t.Fatalf("expected %q, got %q", Unknown, got)
	}
}

func TestResolveWithoutClientUsesTable(t *testing.T) {
	r := &Resolver{Table: DefaultTable()}
	if got := r.Resolve(context.Background(), "400099"); got != "Mumbai Suburban" {
		t.Fatalf("expected table hit, got %q", got)
	}
}

func TestResolveByPrefix(t *testing.T) {
	table := []models.RegionEntry{
		{PincodePrefix: "5600xx", RegionLabel: "Bengaluru Urban"},
		{PincodePrefix: "1100", RegionLabel: "Delhi"},
	}
	if label, ok := ResolveByPrefix(table, "560012"); !ok || label != "Bengaluru Urban" {
		t.Fatalf("unexpected result: %q %v", label, ok)
	}
	if label, ok := ResolveByPrefix(table, "110001"); !ok || label != "Delhi" {
		t.Fatalf("unexpected result: %q %v", label, ok)
	}
	if _, ok := ResolveByPrefix(table, "600001"); ok {
		t.Fatalf("expected no prefix match")
	}
}
