// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package postal validates US addresses against a USPS-style provider API.
// Every call is gated by a shared token-bucket limiter and retried with
// bounded backoff on transient failures.
package postal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"datacleanse/internal/address"
	"datacleanse/internal/observability"
	"datacleanse/internal/resilience"
)

// tokenEarlyRefresh is how long before expiry a cached token is discarded.
const tokenEarlyRefresh = 300 * time.Second

// Credentials hold the OAuth client pair for the provider.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Config controls provider endpoints and call pacing.
type Config struct {
	AuthURL       string
	ValidateURL   string
	RatePerSecond float64
	Burst         int
	Timeout       time.Duration
	Retry         resilience.RetryConfig
}

// DefaultConfig returns the provider defaults: 2 requests per second and a
// 15 second per-call timeout.
func DefaultConfig() Config {
	return Config{
		AuthURL:       "https://apis.usps.com/oauth2/v3/token",
		ValidateURL:   "https://apis.usps.com/addresses/v3/address",
		RatePerSecond: 2,
		Burst:         2,
		Timeout:       15 * time.Second,
		Retry:         resilience.PostalRetryConfig(),
	}
}

// Client calls the postal provider. Safe for concurrent use; the token
// cache and the rate limiter are shared across goroutines.
type Client struct {
	cfg      Config
	creds    Credentials
	http     *http.Client
	limiter  *rate.Limiter
	observer *observability.StandardObserver

	mu             sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

// NewClient creates a provider client. Missing credentials are allowed;
// Validate reports the client as unconfigured instead of failing at
// construction so name-only runs need no provider setup.
func NewClient(cfg Config, creds Credentials, observer *observability.StandardObserver) *Client {
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Retry.MaxRetries == 0 && cfg.Retry.InitialInterval == 0 {
		cfg.Retry = resilience.PostalRetryConfig()
	}
	return &Client{
		cfg:      cfg,
		creds:    creds,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		observer: observer,
	}
}

// Configured reports whether provider credentials are present.
func (c *Client) Configured() bool {
	return c != nil && c.creds.ClientID != "" && c.creds.ClientSecret != ""
}

// tokenResponse is the OAuth token endpoint payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// token returns a cached access token, fetching a new one when the cache
// is empty or within the early-refresh window of expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiresAt.Add(-tokenEarlyRefresh)) {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.creds.ClientID},
		"client_secret": {c.creds.ClientSecret},
		"scope":         {"addresses"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return "", resilience.ClassifyHTTPStatus(resp.StatusCode, string(body))
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", resilience.NewPermanentError("token response contained no access token", nil)
	}

	expiresIn := tok.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}
	c.accessToken = tok.AccessToken
	c.tokenExpiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)
	return c.accessToken, nil
}

// providerResponse is the validate endpoint payload.
type providerResponse struct {
	Address *struct {
		StreetAddress    string `json:"streetAddress"`
		SecondaryAddress string `json:"secondaryAddress"`
		City             string `json:"city"`
		State            string `json:"state"`
		ZIPCode          string `json:"ZIPCode"`
		ZIPPlus4         string `json:"ZIPPlus4"`
	} `json:"address"`
	AdditionalInfo struct {
		DPVConfirmation      string `json:"DPVConfirmation"`
		Business             string `json:"business"`
		Vacant               string `json:"vacant"`
		CentralDeliveryPoint string `json:"centralDeliveryPoint"`
		CarrierRoute         string `json:"carrierRoute"`
		DeliveryPoint        string `json:"deliveryPoint"`
	} `json:"additionalInfo"`
}

// Validate checks one address against the provider. Provider rejections
// (HTTP 400/404) are terminal and return a non-deliverable Result with a
// nil error; transport failures and retry exhaustion return an error.
func (c *Client) Validate(ctx context.Context, rec address.Record) (*Result, error) {
	if !c.Configured() {
		return nil, resilience.NewPermanentError("postal provider credentials not configured", nil)
	}

	done := c.startTiming("validate", rec.ID)

	// The limiter gates every attempt, not just the first; retries must not
	// slip past the provider's request rate.
	resp, err := resilience.RetryWithResult(ctx, c.cfg.Retry, func(ctx context.Context) (*providerResponse, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		return c.callValidate(ctx, rec)
	})
	if err != nil {
		if rejection := terminalRejection(err); rejection != nil {
			done(true, nil)
			return rejection.toResult(rec.ID), nil
		}
		done(false, err)
		return nil, err
	}

	result := mapResponse(rec.ID, resp)
	done(true, nil)
	return result, nil
}

// callValidate performs a single validate request.
func (c *Client) callValidate(ctx context.Context, rec address.Record) (*providerResponse, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	street, unit := splitStreet(rec.Line1)
	if unit == "" {
		unit = strings.TrimSpace(rec.Line2)
	}

	zip := strings.TrimSpace(rec.Zip)
	if len(zip) > 5 {
		zip = zip[:5]
	}

	query := url.Values{
		"streetAddress": {strings.ToUpper(street)},
		"city":          {strings.ToUpper(strings.TrimSpace(rec.City))},
		"state":         {strings.ToUpper(strings.TrimSpace(rec.State))},
		"ZIPCode":       {zip},
	}
	if unit != "" {
		query.Set("secondaryAddress", strings.ToUpper(unit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.ValidateURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building validate request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return nil, resilience.ClassifyHTTPStatus(resp.StatusCode, string(body))
	}

	var parsed providerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding validate response: %w", err)
	}
	return &parsed, nil
}

// rejection describes a terminal provider refusal of an address.
type rejection struct {
	message string
}

func (r *rejection) toResult(recordID string) *Result {
	return &Result{
		GUID:             uuid.NewString(),
		RecordID:         recordID,
		Deliverable:      false,
		ResultPercentage: nonDeliverablePercentage,
		Method:           methodProviderV3,
		Message:          r.message,
	}
}

// terminalRejection converts invalid-input and not-found classifications
// into address rejections. Other errors are real failures.
func terminalRejection(err error) *rejection {
	var classified *resilience.ClassifiedError
	if !errors.As(err, &classified) {
		return nil
	}
	switch classified.Type {
	case resilience.ErrorTypeInvalidInput:
		return &rejection{message: "invalid address format"}
	case resilience.ErrorTypeNotFound:
		return &rejection{message: "address not found"}
	default:
		return nil
	}
}

// mapResponse converts a provider payload into a Result.
func mapResponse(recordID string, resp *providerResponse) *Result {
	result := &Result{
		GUID:     uuid.NewString(),
		RecordID: recordID,
		Method:   methodProviderV3,
	}

	if resp.Address == nil {
		result.ResultPercentage = nonDeliverablePercentage
		result.Message = "no address data in response"
		return result
	}

	dpv := resp.AdditionalInfo.DPVConfirmation
	result.Deliverable = dpv == "Y" || dpv == "D"
	if result.Deliverable {
		result.ResultPercentage = deliverablePercentage
	} else {
		result.ResultPercentage = nonDeliverablePercentage
	}

	street := resp.Address.StreetAddress
	if resp.Address.SecondaryAddress != "" {
		street += " " + resp.Address.SecondaryAddress
	}
	zip := resp.Address.ZIPCode
	if resp.Address.ZIPPlus4 != "" {
		zip += "-" + resp.Address.ZIPPlus4
	}
	result.Standardized = Standardized{
		StreetAddress: strings.TrimSpace(street),
		City:          resp.Address.City,
		State:         resp.Address.State,
		Zip:           zip,
	}
	result.Metadata = Metadata{
		Business:        resp.AdditionalInfo.Business == "Y",
		Vacant:          resp.AdditionalInfo.Vacant == "Y",
		Centralized:     resp.AdditionalInfo.CentralDeliveryPoint == "Y",
		CarrierRoute:    resp.AdditionalInfo.CarrierRoute,
		DeliveryPoint:   resp.AdditionalInfo.DeliveryPoint,
		DPVConfirmation: dpv,
	}
	return result
}

// startTiming wraps the observer timing hook; it is a no-op without an
// observer.
func (c *Client) startTiming(operation, recordID string) func(success bool, err error) {
	if c.observer == nil {
		return func(bool, error) {}
	}
	finish := c.observer.StartTiming("postal", operation, recordID)
	return func(success bool, err error) {
		var metadata map[string]interface{}
		if err != nil {
			metadata = map[string]interface{}{"error": err.Error()}
		}
		finish(success, metadata)
	}
}
