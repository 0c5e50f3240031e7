package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	// EnvProviderClientID and EnvProviderClientSecret carry the client-credentials
	// pair for the flight-offers provider.
	EnvProviderClientID     = "AMADEUS_CLIENT_ID"
	EnvProviderClientSecret = "AMADEUS_CLIENT_SECRET"

	EnvProviderBaseURL        = "PROVIDER_BASE_URL"
	EnvProviderDepartureDate  = "PROVIDER_DEPARTURE_DATE"
	EnvProviderAdults         = "PROVIDER_ADULTS"
	EnvProviderMaxOffers      = "PROVIDER_MAX_OFFERS"
	EnvProviderCurrencySymbol = "PROVIDER_CURRENCY_SYMBOL"
	EnvProviderTimeout        = "PROVIDER_TIMEOUT"
)

// DateLayout is the provider's departure date format.
const DateLayout = "2006-01-02"

// ProviderConfig contains the flight-offers provider connection and query settings.
type ProviderConfig struct {
	BaseURL      string `toml:"base_url"`
	TokenPath    string `toml:"token_path"`
	OffersPath   string `toml:"offers_path"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`

	// DepartureDate is sent as departureDate. Empty means seven days after
	// the request date.
	DepartureDate  string `toml:"departure_date"`
	Adults         int    `toml:"adults"`
	MaxOffers      int    `toml:"max_offers"`
	CurrencySymbol string `toml:"currency_symbol"`
	Timeout        string `toml:"timeout"`
}

// HasCredentials reports whether both halves of the client-credentials pair are set.
func (c *ProviderConfig) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// TimeoutDuration parses and returns the HTTP client timeout as a time.Duration.
func (c *ProviderConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the provider configuration.
// Missing credentials are not an error: live lookups fail and degrade to empty results.
func (c *ProviderConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ProviderConfig) Merge(overlay *ProviderConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.TokenPath != "" {
		c.TokenPath = overlay.TokenPath
	}
	if overlay.OffersPath != "" {
		c.OffersPath = overlay.OffersPath
	}
	if overlay.ClientID != "" {
		c.ClientID = overlay.ClientID
	}
	if overlay.ClientSecret != "" {
		c.ClientSecret = overlay.ClientSecret
	}
	if overlay.DepartureDate != "" {
		c.DepartureDate = overlay.DepartureDate
	}
	if overlay.Adults != 0 {
		c.Adults = overlay.Adults
	}
	if overlay.MaxOffers != 0 {
		c.MaxOffers = overlay.MaxOffers
	}
	if overlay.CurrencySymbol != "" {
		c.CurrencySymbol = overlay.CurrencySymbol
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *ProviderConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://test.api.amadeus.com"
	}
	if c.TokenPath == "" {
		c.TokenPath = "/v1/security/oauth2/token"
	}
	if c.OffersPath == "" {
		c.OffersPath = "/v2/shopping/flight-offers"
	}
	if c.Adults == 0 {
		c.Adults = 1
	}
	if c.MaxOffers == 0 {
		c.MaxOffers = 3
	}
	if c.CurrencySymbol == "" {
		c.CurrencySymbol = "₹"
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *ProviderConfig) loadEnv() {
	if v := os.Getenv(EnvProviderClientID); v != "" {
		c.ClientID = v
	}
	if v := os.Getenv(EnvProviderClientSecret); v != "" {
		c.ClientSecret = v
	}
	if v := os.Getenv(EnvProviderBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvProviderDepartureDate); v != "" {
		c.DepartureDate = v
	}
	if v := os.Getenv(EnvProviderAdults); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Adults = n
		}
	}
	if v := os.Getenv(EnvProviderMaxOffers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxOffers = n
		}
	}
	if v := os.Getenv(EnvProviderCurrencySymbol); v != "" {
		c.CurrencySymbol = v
	}
	if v := os.Getenv(EnvProviderTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *ProviderConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url: %q", c.BaseURL)
	}
	if c.DepartureDate != "" {
		if _, err := time.Parse(DateLayout, c.DepartureDate); err != nil {
			return fmt.Errorf("invalid departure_date: %w", err)
		}
	}
	if c.Adults < 1 || c.Adults > 9 {
		return fmt.Errorf("adults must be between 1 and 9")
	}
	if c.MaxOffers < 1 || c.MaxOffers > 250 {
		return fmt.Errorf("max_offers must be between 1 and 250")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
