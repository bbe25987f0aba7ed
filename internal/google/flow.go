package google

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// consentTimeout bounds how long the consent flow waits for the user.
const consentTimeout = 5 * time.Minute

// generateStateToken generates a random state token for CSRF protection.
func generateStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// RunConsentFlow runs the interactive local OAuth consent flow against the
// given client-secrets file. It opens an ephemeral listener on a random
// localhost port for the redirect, prints the authorization URL for the user
// to visit, and exchanges the returned code for a token with offline access
// (so the result carries a refresh token).
func RunConsentFlow(ctx context.Context, credentialsFile string) (*oauth2.Token, error) {
	conf, err := configFromSecretsFile(credentialsFile)
	if err != nil {
		return nil, err
	}
	return runFlow(ctx, conf)
}

// ConsentFlowConfig parses the client-secrets file and returns both the
// granted token and the client configuration. Used by the token command,
// which reports the client ID and secret alongside the refresh token.
func ConsentFlowConfig(ctx context.Context, credentialsFile string) (*oauth2.Token, *oauth2.Config, error) {
	conf, err := configFromSecretsFile(credentialsFile)
	if err != nil {
		return nil, nil, err
	}
	tok, err := runFlow(ctx, conf)
	if err != nil {
		return nil, nil, err
	}
	return tok, conf, nil
}

func runFlow(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	// Bind strictly to 127.0.0.1 on a random free port.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to open consent listener: %w", err)
	}
	conf.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr().String())

	state, err := generateStateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		// Verify state token to prevent CSRF
		if r.URL.Query().Get("state") != state {
			http.Error(w, "State token mismatch", http.StatusBadRequest)
			errCh <- fmt.Errorf("state token mismatch")
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "No authorization code received", http.StatusBadRequest)
			errCh <- fmt.Errorf("no authorization code received")
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><h1>Authorization Successful!</h1>`+
			`<p>You can close this window and return to the terminal.</p></body></html>`)
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("consent listener failed: %w", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	authURL := conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Printf("Visit the following URL in your browser to authorize access:\n%s\n", authURL)
	fmt.Println("Waiting for authorization...")

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(consentTimeout):
		return nil, fmt.Errorf("timed out waiting for authorization")
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return tok, nil
}
