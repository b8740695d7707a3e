package region

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var ErrNoPlaces = errors.New("postal lookup returned no places")

type ZippopotamClient struct {
	BaseURL string
	Country string
	Client  *http.Client
}

type zippoResponse struct {
	Places []zippoPlace `json:"places"`
}

type zippoPlace struct {
	Name  string
	State string
}

// The zippopotam payload keys its locality as "place name"; a json struct
// tag cannot carry a space, so the place decodes through a string map.
func (p *zippoPlace) UnmarshalJSON(b []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.Name = raw["place name"]
	p.State = raw["state"]
	return nil
}

func (z *ZippopotamClient) Lookup(ctx context.Context, pincode string) ([]Place, error) {
	if z.Client == nil {
		z.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if z.BaseURL == "" {
		z.BaseURL = "https://api.zippopotam.us"
	}
	if z.Country == "" {
		z.Country = "IN"
	}

	endpoint := fmt.Sprintf("%s/%s/%s", z.BaseURL, z.Country, url.PathEscape(pincode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := z.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("postal lookup http error: %s", resp.Status)
	}

	var body zippoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return parsePlaces(body)
}

func parsePlaces(body zippoResponse) ([]Place, error) {
	if len(body.Places) == 0 {
		return nil, ErrNoPlaces
	}
	out := make([]Place, 0, len(body.Places))
	for _, p := range body.Places {
		out = append(out, Place{Name: p.Name, State: p.State})
	}
	return out, nil
}
