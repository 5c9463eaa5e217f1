// Package routing wraps the external GraphHopper routing API. Callers
// fall back to straight-line estimates when the provider is unavailable.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/pkg/config"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/geo"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/queries"
)

type GraphHopperClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGraphHopperClient(cfg config.RoutingConfig) *GraphHopperClient {
	return &GraphHopperClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type routeResponse struct {
	Paths []struct {
		Distance float64 `json:"distance"` // meters
		Time     int64   `json:"time"`     // milliseconds
	} `json:"paths"`
}

// Route asks GraphHopper for the driving leg from one point to another.
// A missing API key reports upstream-unavailable without a network call.
func (c *GraphHopperClient) Route(ctx context.Context, from, to geo.Point) (queries.RouteEstimate, error) {
	if c.apiKey == "" {
		return queries.RouteEstimate{}, errs.Mark(errs.New("routing provider not configured"), errs.ErrUpstreamUnavailable)
	}

	q := url.Values{}
	q.Add("point", fmt.Sprintf("%f,%f", from.Latitude, from.Longitude))
	q.Add("point", fmt.Sprintf("%f,%f", to.Latitude, to.Longitude))
	q.Set("profile", "car")
	q.Set("calc_points", "false")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/route?"+q.Encode(), nil)
	if err != nil {
		return queries.RouteEstimate{}, errs.Wrap(err, "failed to build routing request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return queries.RouteEstimate{}, errs.Mark(errs.Wrap(err, "routing request failed"), errs.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return queries.RouteEstimate{}, errs.Mark(
			errs.New(fmt.Sprintf("routing provider returned status %d", resp.StatusCode)),
			errs.ErrUpstreamUnavailable,
		)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return queries.RouteEstimate{}, errs.Mark(errs.Wrap(err, "failed to decode routing response"), errs.ErrUpstreamUnavailable)
	}
	if len(body.Paths) == 0 {
		return queries.RouteEstimate{}, errs.Mark(errs.New("routing provider returned no paths"), errs.ErrUpstreamUnavailable)
	}

	path := body.Paths[0]
	return queries.RouteEstimate{
		DistanceKm: path.Distance / 1000,
		Duration:   time.Duration(path.Time) * time.Millisecond,
	}, nil
}
