package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kubera-apps/canoe-capital-activity-export/internal/config"
)

var previewCmd = LeafCommand{
	Use:   "preview",
	Short: "Fetch activity records and browse them without writing a file",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "org", Usage: "organization display name (default: ORG_NAME from environment)"},
		{Name: "date-after", Usage: "only include activity strictly after this date, YYYY-MM-DD (default: DATE_AFTER or 2000-01-01)"},
		{Name: "timeout", Usage: "per-request HTTP timeout (default: 30s)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, timeout, err := loadConfigWithFlags(cmd)
		if err != nil {
			return err
		}
		return runPreview(cmd, cfg, timeout)
	},
}.Build()

func runPreview(cmd *cobra.Command, cfg config.Config, timeout time.Duration) error {
	org, records, err := collectActivity(commandContext(cmd), cfg, timeout, warnToStderr(cmd))
	if err != nil {
		return err
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No activity records for %s after %s.\n",
			org.Name, cfg.DateAfter.Format(config.DateLayout))
		return nil
	}

	return runPreviewTable(cmd, org.Name, records)
}
