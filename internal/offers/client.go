// Package offers is a client for a flight-offers provider authenticated with
// the OAuth2 client-credentials grant.
package offers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/route-finder/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const maxErrorBody = 512

// Client exchanges credentials for a bearer token and queries flight offers.
// Tokens are acquired per search and never shared between requests.
type Client struct {
	http        *http.Client
	credentials *clientcredentials.Config
	offersURL   string
	logger      *slog.Logger
}

// New creates a Client from provider configuration. When httpClient is nil a
// client with the configured timeout is used.
func New(cfg *config.ProviderConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.TimeoutDuration()}
	}

	base := strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		http: httpClient,
		credentials: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     base + cfg.TokenPath,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		offersURL: base + cfg.OffersPath,
		logger:    logger.With("system", "offers"),
	}
}

// Token performs the client-credentials exchange. A response without an access
// token yields ErrNoToken; a non-success status yields ErrTokenRejected.
func (c *Client) Token(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)

	tok, err := c.credentials.Token(ctx)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			return "", fmt.Errorf("%w: status %d", ErrTokenRejected, re.Response.StatusCode)
		}
		return "", fmt.Errorf("%w: %w", ErrNoToken, err)
	}
	if tok == nil || tok.AccessToken == "" {
		return "", ErrNoToken
	}
	return tok.AccessToken, nil
}

// Search acquires a token and fetches offers for req. No lookup is attempted
// when the token exchange fails.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*Response, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("originLocationCode", req.Origin)
	query.Set("destinationLocationCode", req.Destination)
	query.Set("departureDate", req.DepartureDate)
	query.Set("adults", strconv.Itoa(req.Adults))
	query.Set("max", strconv.Itoa(req.Max))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.offersURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build offers request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("offers request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}

	c.logger.Debug("offers fetched",
		"origin", req.Origin,
		"destination", req.Destination,
		"count", len(result.Data),
	)
	return &result, nil
}
