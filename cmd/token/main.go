// Command token mints identity tokens for local development, standing in
// for the external identity provider.
package main

import (
	"errors" // Usage errors
	"fmt"    // Output and error wrapping
	"os"     // Exit status
	"time"   // Token lifetime

	"web3_portal/internal/config" // Shared configuration
	"web3_portal/internal/utils"  // Token signing

	"github.com/spf13/cobra" // CLI framework
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1) // Cobra already printed the error
	}
}

func newRootCmd() *cobra.Command {
	var (
		secret string        // Signing secret
		ttl    time.Duration // Token lifetime
	)
	cmd := &cobra.Command{
		Use:   "token <principal>",
		Short: "Print a signed identity token for a principal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = config.LoadConfig().JWTSecret // Same secret as the server
			}
			if secret == "" {
				return errors.New("no secret: pass --secret or set JWT_SECRET")
			}
			token, err := utils.GenerateJWT(args[0], secret, ttl)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token) // Token only, for use in scripts
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to JWT_SECRET)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
