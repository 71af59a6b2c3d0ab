package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kubera-apps/canoe-capital-activity-export/internal/activity"
	"github.com/kubera-apps/canoe-capital-activity-export/internal/config"
)

var runCmd = LeafCommand{
	Use:   "run",
	Short: "Export capital-activity records to a file",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "org", Usage: "organization display name (default: ORG_NAME from environment)"},
		{Name: "date-after", Usage: "only include activity strictly after this date, YYYY-MM-DD (default: DATE_AFTER or 2000-01-01)"},
		{Name: "output", Usage: "output file path (default: capital_activity.<format>)"},
		{Name: "format", Usage: "output format (csv, pdf)", Default: "csv"},
		{Name: "timeout", Usage: "per-request HTTP timeout (default: 30s)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, timeout, err := loadConfigWithFlags(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = "capital_activity." + format
		}

		return runRun(cmd, cfg, timeout, output, format)
	},
}.Build()

func runRun(cmd *cobra.Command, cfg config.Config, timeout time.Duration, output, format string) error {
	if format != "csv" && format != "pdf" {
		return fmt.Errorf("unsupported --format %q (supported: csv, pdf)", format)
	}

	org, records, err := collectActivity(commandContext(cmd), cfg, timeout, warnToStderr(cmd))
	if err != nil {
		return err
	}

	switch format {
	case "pdf":
		err = renderActivityPDF(org.Name, records, cfg.DateAfter, output)
	default:
		err = activity.WriteCSV(records, output)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
		Primary(fmt.Sprintf("Exported %d activity records for %s to %s", len(records), org.Name, output)))
	return nil
}
