package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ErrNoCredentials is returned when neither the environment triple nor a
// client-secrets file is available to produce a credential.
var ErrNoCredentials = errors.New("no Google credentials configured: set " +
	EnvRefreshToken + ", " + EnvClientID + " and " + EnvClientSecret +
	", or provide a client-secrets file")

// Resolver produces authenticated OAuth2 token sources for the calendar
// provider, selecting between the environment and file strategies.
type Resolver struct {
	config Config
	logger *slog.Logger
}

// NewResolver creates a Resolver for the given configuration.
func NewResolver(config Config) *Resolver {
	return &Resolver{
		config: config,
		logger: slog.Default(),
	}
}

// Config returns the resolver's configuration.
func (r *Resolver) Config() Config {
	return r.config
}

// TokenSource resolves a credential and returns a token source for it.
// The environment strategy is preferred and touches neither the token file
// nor the client-secrets file. Otherwise the file strategy applies: load the
// token file, or run the interactive consent flow and persist its result.
func (r *Resolver) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if r.config.HasEnvCredentials() {
		r.logger.Debug("resolving credentials from environment")
		return r.envTokenSource(ctx), nil
	}
	r.logger.Debug("resolving credentials from token file", "path", r.config.TokenFile)
	return r.fileTokenSource(ctx)
}

// envTokenSource builds a token source directly from the environment triple.
// The access token starts out expired so the first use refreshes it against
// the fixed provider token endpoint.
func (r *Resolver) envTokenSource(ctx context.Context) oauth2.TokenSource {
	conf := &oauth2.Config{
		ClientID:     r.config.ClientID,
		ClientSecret: r.config.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       Scopes,
	}
	return conf.TokenSource(ctx, &oauth2.Token{
		RefreshToken: r.config.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Unix(1, 0),
	})
}

// fileTokenSource loads the development credential from the token file. A
// missing, expired or otherwise invalid token requires the full interactive
// consent flow; the granted token is written back to the token file.
func (r *Resolver) fileTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	tok, err := loadToken(r.config.TokenFile)
	if err != nil || !tok.Valid() {
		if _, statErr := os.Stat(r.config.CredentialsFile); statErr != nil {
			return nil, fmt.Errorf("%w: %s not found", ErrNoCredentials, r.config.CredentialsFile)
		}

		tok, err = RunConsentFlow(ctx, r.config.CredentialsFile)
		if err != nil {
			return nil, err
		}

		if err := saveToken(r.config.TokenFile, tok); err != nil {
			return nil, err
		}
		r.logger.Info("saved credential", "path", r.config.TokenFile)
	}

	// Refresh through the client config when the secrets file is readable,
	// otherwise hand out the token as-is.
	if conf, err := configFromSecretsFile(r.config.CredentialsFile); err == nil {
		return conf.TokenSource(ctx, tok), nil
	}
	return oauth2.StaticTokenSource(tok), nil
}

// configFromSecretsFile parses a provider-issued client-secrets file into an
// OAuth2 client configuration.
func configFromSecretsFile(path string) (*oauth2.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read client-secrets file: %w", err)
	}
	conf, err := google.ConfigFromJSON(b, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client-secrets file: %w", err)
	}
	return conf, nil
}

// loadToken reads a serialized OAuth2 token from disk.
func loadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("invalid token file %s: %w", path, err)
	}
	return tok, nil
}

// saveToken writes a serialized OAuth2 token to disk, readable only by the
// owning user.
func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to write token file %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("unable to encode token file %s: %w", path, err)
	}
	return nil
}
