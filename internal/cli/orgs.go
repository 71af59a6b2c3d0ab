package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kubera-apps/canoe-capital-activity-export/internal/canoe"
	"github.com/kubera-apps/canoe-capital-activity-export/internal/config"
)

var orgsCmd = LeafCommand{
	Use:   "orgs",
	Short: "List organizations visible to the configured credential",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "timeout", Usage: "per-request HTTP timeout (default: 30s)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		timeout, err := parseTimeoutFlag(cmd)
		if err != nil {
			return err
		}
		return runOrgs(cmd, cfg, timeout)
	},
}.Build()

func runOrgs(cmd *cobra.Command, cfg config.Config, timeout time.Duration) error {
	ctx := commandContext(cmd)

	token, err := canoe.Authenticate(ctx, cfg.TokenURL, cfg.ClientID, cfg.ClientSecret, timeout)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	client := canoe.NewClient(cfg.APIBaseURL, token, timeout)
	orgs, err := client.ListOrganizations(ctx)
	if err != nil {
		return fmt.Errorf("organization listing failed: %w", err)
	}

	if len(orgs) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("No organizations visible to this credential."))
		return nil
	}

	for _, org := range orgs {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", Silent(org.ID), Primary(org.Name))
	}
	return nil
}
