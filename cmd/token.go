package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tmwh/calbridge/internal/google"
	"github.com/tmwh/calbridge/internal/logging"
)

// defaultTokenSnapshot is where the token command writes the minted token
// so it can be inspected or copied to a secrets store.
const defaultTokenSnapshot = "token_prod.json"

func newTokenCmd() *cobra.Command {
	var (
		credentialsFile string
		outputFile      string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an offline refresh token for unattended deployments",
		Long: `Run the interactive Google OAuth consent flow once and print the
environment variables an unattended deployment needs.

The flow requests offline access, so the minted token includes a refresh
token that stays valid until revoked. The token is also written to a
snapshot file for inspection.

Requires a browser on this machine and an OAuth client secrets file
(download it from the Google Cloud Console).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runToken(ctx, credentialsFile, outputFile)
		},
	}

	cmd.Flags().StringVar(&credentialsFile, "credentials-file", google.DefaultCredentialsFile, "Path to the OAuth client secrets file")
	cmd.Flags().StringVar(&outputFile, "output", defaultTokenSnapshot, "Path to write the minted token snapshot")

	return cmd
}

func runToken(ctx context.Context, credentialsFile, outputFile string) error {
	logging.Setup(false)

	tok, conf, err := google.ConsentFlowConfig(ctx, credentialsFile)
	if err != nil {
		return fmt.Errorf("consent flow failed: %w", err)
	}
	if tok.RefreshToken == "" {
		return fmt.Errorf("no refresh token granted; revoke the app's access at https://myaccount.google.com/permissions and run this command again")
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(outputFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write token snapshot: %w", err)
	}

	fmt.Println("Authorization complete. Set these environment variables on the deployment:")
	fmt.Println()
	fmt.Printf("export %s=%q\n", google.EnvClientID, conf.ClientID)
	fmt.Printf("export %s=%q\n", google.EnvClientSecret, conf.ClientSecret)
	fmt.Printf("export %s=%q\n", google.EnvRefreshToken, tok.RefreshToken)
	fmt.Printf("export GOOGLE_TOKEN_URI=%q\n", conf.Endpoint.TokenURL)
	fmt.Println()
	fmt.Printf("Token snapshot written to %s\n", outputFile)

	return nil
}
