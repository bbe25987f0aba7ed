package google

import (
	"os"

	calendar "google.golang.org/api/calendar/v3"
)

// Environment variables consumed by the environment credential strategy.
const (
	EnvRefreshToken = "GOOGLE_REFRESH_TOKEN"
	EnvClientID     = "GOOGLE_CLIENT_ID"
	EnvClientSecret = "GOOGLE_CLIENT_SECRET"
)

// Default file names for the development credential strategy.
const (
	DefaultTokenFile       = "token.json"
	DefaultCredentialsFile = "credentials.json"
)

// Scopes granted to resolved credentials.
var Scopes = []string{calendar.CalendarScope}

// Config holds the inputs of credential resolution: the environment triple
// and the paths used by the file strategy.
type Config struct {
	RefreshToken string
	ClientID     string
	ClientSecret string

	// TokenFile is the path of the persisted development credential.
	TokenFile string

	// CredentialsFile is the path of the provider-issued client secrets
	// required by the interactive consent flow.
	CredentialsFile string
}

// ConfigFromEnv builds a Config from process environment variables, with
// default token and client-secrets file paths.
func ConfigFromEnv() Config {
	return Config{
		RefreshToken:    os.Getenv(EnvRefreshToken),
		ClientID:        os.Getenv(EnvClientID),
		ClientSecret:    os.Getenv(EnvClientSecret),
		TokenFile:       DefaultTokenFile,
		CredentialsFile: DefaultCredentialsFile,
	}
}

// HasEnvCredentials reports whether the environment strategy applies.
// All three values must be present; a partial triple never selects it.
func (c Config) HasEnvCredentials() bool {
	return c.RefreshToken != "" && c.ClientID != "" && c.ClientSecret != ""
}

// EnvStatus describes which credential environment variables are set,
// with short previews that never expose a full secret.
type EnvStatus struct {
	HasRefreshToken     bool   `json:"has_refresh_token"`
	HasClientID         bool   `json:"has_client_id"`
	HasClientSecret     bool   `json:"has_client_secret"`
	ClientIDPreview     string `json:"client_id_preview"`
	RefreshTokenPreview string `json:"refresh_token_preview"`
}

// EnvStatus returns the debug snapshot for this configuration.
func (c Config) EnvStatus() EnvStatus {
	return EnvStatus{
		HasRefreshToken:     c.RefreshToken != "",
		HasClientID:         c.ClientID != "",
		HasClientSecret:     c.ClientSecret != "",
		ClientIDPreview:     preview(c.ClientID),
		RefreshTokenPreview: preview(c.RefreshToken),
	}
}

// preview truncates a secret to its first 20 characters. Unset values show
// as "NOT_SET...".
func preview(value string) string {
	if value == "" {
		value = "NOT_SET"
	}
	if len(value) > 20 {
		value = value[:20]
	}
	return value + "..."
}
