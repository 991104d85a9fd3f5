// Package hubspot implements the CRM deal service against the HubSpot
// CRM v3 REST API.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// DefaultBaseURL is the HubSpot API endpoint.
const DefaultBaseURL = "https://api.hubapi.com"

// Deal property names used by the sizing flow.
const (
	propCurrentSite        = "Current site"
	propRecommendedPackage = "Recommended Migration Package"
)

// Ensure DealService implements screamingtom.DealService at compile time.
var _ screamingtom.DealService = (*DealService)(nil)

// DealService talks to the HubSpot deals API using bearer-token
// authentication. Calls are synchronous with no internal retry.
type DealService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// Option configures a DealService.
type Option func(*DealService)

// WithBaseURL overrides the API endpoint. Used by tests to point the
// service at a local server.
func WithBaseURL(u string) Option {
	return func(s *DealService) {
		s.baseURL = u
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *DealService) {
		s.client = c
	}
}

// NewDealService creates a DealService authenticating with the given API key.
func NewDealService(apiKey string, opts ...Option) *DealService {
	s := &DealService{
		client:  http.DefaultClient,
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// dealResponse is the subset of the deal payload the sizing flow reads.
type dealResponse struct {
	Properties map[string]string `json:"properties"`
}

// FetchSiteURL returns the current site URL recorded on the deal.
func (s *DealService) FetchSiteURL(ctx context.Context, dealID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.dealEndpoint(dealID), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching deal %s: %w", dealID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", screamingtom.Errorf(screamingtom.EUNAVAILABLE,
			"fetching deal %s: HTTP %d", dealID, resp.StatusCode)
	}

	var deal dealResponse
	if err := json.NewDecoder(resp.Body).Decode(&deal); err != nil {
		return "", fmt.Errorf("decoding deal %s: %w", dealID, err)
	}

	siteURL := deal.Properties[propCurrentSite]
	if siteURL == "" {
		return "", screamingtom.Errorf(screamingtom.ENOTFOUND,
			"deal %s has no current site URL", dealID)
	}
	return siteURL, nil
}

// UpdateRecommendedPackage writes the recommended migration package back to
// the deal.
func (s *DealService) UpdateRecommendedPackage(ctx context.Context, dealID, pkg string) error {
	payload := map[string]map[string]string{
		"properties": {propRecommendedPackage: pkg},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, s.dealEndpoint(dealID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("updating deal %s: %w", dealID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return screamingtom.Errorf(screamingtom.EUNAVAILABLE,
			"updating deal %s: HTTP %d", dealID, resp.StatusCode)
	}
	return nil
}

func (s *DealService) dealEndpoint(dealID string) string {
	return fmt.Sprintf("%s/crm/v3/objects/deals/%s", s.baseURL, url.PathEscape(dealID))
}
