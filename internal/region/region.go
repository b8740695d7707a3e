package region

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/applicare/backend/internal/models"
)

// Unknown is returned when every resolution tier comes up empty.
const Unknown = "Unknown"

// Place is one record from the postal lookup service.
type Place struct {
	Name  string
	State string
}

// LookupClient is the external postal lookup the resolver degrades from.
type LookupClient interface {
	Lookup(ctx context.Context, pincode string) ([]Place, error)
}

// Resolver maps a pincode to a region label through three tiers:
// live lookup with bounded retries, then the static prefix table,
// then the Unknown sentinel. It never returns an error.
type Resolver struct {
	Client  LookupClient
	Table   []models.RegionEntry
	Retries int
	Timeout time.Duration
	Logger  zerolog.Logger
}

func (r *Resolver) Resolve(ctx context.Context, pincode string) string {
	if label, ok := r.resolveLive(ctx, pincode); ok {
		return label
	}
	if label, ok := ResolveByPrefix(r.Table, pincode); ok {
		return label
	}
	return Unknown
}

func (r *Resolver) resolveLive(ctx context.Context, pincode string) (string, bool) {
	if r.Client == nil {
		return "", false
	}
	retries := r.Retries
	if retries < 0 {
		retries = 0
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	for attempt := 0; attempt <= retries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		places, err := r.Client.Lookup(attemptCtx, pincode)
		cancel()
		if err != nil || len(places) == 0 {
			// transport failures, non-2xx responses and empty place lists
			// all consume one attempt from the same budget
			r.Logger.Debug().Err(err).
				Str("pincode", pincode).
				Int("attempt", attempt+1).
				Msg("postal lookup attempt failed")
			continue
		}

		state := strings.TrimSpace(places[0].State)
		name := strings.TrimSpace(places[0].Name)
		if label, ok := normalizeLabel(r.Table, state, name); ok {
			return label, true
		}
		if state != "" {
			return state, true
		}
		if name != "" {
			return name, true
		}
		return Unknown, true
	}
	return "", false
}

// normalizeLabel maps a raw candidate onto a cached region label by
// case-insensitive substring containment in either direction.
func normalizeLabel(table []models.RegionEntry, candidates ...string) (string, bool) {
	for _, entry := range table {
		label := strings.ToLower(entry.RegionLabel)
		if label == "" {
			continue
		}
		for _, c := range candidates {
			c = strings.ToLower(strings.TrimSpace(c))
			if c == "" {
				continue
			}
			if strings.Contains(c, label) || strings.Contains(label, c) {
				return entry.RegionLabel, true
			}
		}
	}
	return "", false
}

// ResolveByPrefix matches the first 4 characters of an entry's prefix
// pattern against the pincode.
func ResolveByPrefix(table []models.RegionEntry, pincode string) (string, bool) {
	for _, entry := range table {
		prefix := entry.PincodePrefix
		if len(prefix) > 4 {
			prefix = prefix[:4]
		}
		if prefix != "" && strings.HasPrefix(pincode, prefix) {
			return entry.RegionLabel, true
		}
	}
	return "", false
}
