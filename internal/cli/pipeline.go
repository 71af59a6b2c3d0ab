package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kubera-apps/canoe-capital-activity-export/internal/activity"
	"github.com/kubera-apps/canoe-capital-activity-export/internal/canoe"
	"github.com/kubera-apps/canoe-capital-activity-export/internal/config"
)

// loadConfigWithFlags loads environment configuration and folds in the
// per-invocation flag overrides shared by run and preview.
func loadConfigWithFlags(cmd *cobra.Command) (config.Config, time.Duration, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, 0, err
	}

	if org, _ := cmd.Flags().GetString("org"); org != "" {
		cfg.OrgName = org
	}
	if da, _ := cmd.Flags().GetString("date-after"); da != "" {
		t, err := time.Parse(config.DateLayout, da)
		if err != nil {
			return config.Config{}, 0, fmt.Errorf("invalid --date-after value %q (expected YYYY-MM-DD)", da)
		}
		cfg.DateAfter = t
	}

	timeout, err := parseTimeoutFlag(cmd)
	if err != nil {
		return config.Config{}, 0, err
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, 0, err
	}
	return cfg, timeout, nil
}

func parseTimeoutFlag(cmd *cobra.Command) (time.Duration, error) {
	raw, _ := cmd.Flags().GetString("timeout")
	if raw == "" {
		return canoe.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid --timeout value %q (expected a duration like 30s)", raw)
	}
	return d, nil
}

// commandContext returns the command's context, which cobra only populates
// when the command runs through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// collectActivity runs the pipeline up to the sorted record set: credential
// exchange, organization resolution, concurrent document fetch, and
// normalization. Errors name the phase that failed. Documents that cannot be
// normalized are reported through warn and skipped.
func collectActivity(ctx context.Context, cfg config.Config, timeout time.Duration, warn func(*activity.RecordParseError)) (canoe.Organization, []activity.Record, error) {
	if cfg.OrgName == "" {
		return canoe.Organization{}, nil, fmt.Errorf("ORG_NAME is not set (or pass --org)")
	}

	token, err := canoe.Authenticate(ctx, cfg.TokenURL, cfg.ClientID, cfg.ClientSecret, timeout)
	if err != nil {
		return canoe.Organization{}, nil, fmt.Errorf("authentication failed: %w", err)
	}

	client := canoe.NewClient(cfg.APIBaseURL, token, timeout)

	_, org, err := client.ResolveOrganization(ctx, cfg.OrgName)
	if err != nil {
		return canoe.Organization{}, nil, fmt.Errorf("organization resolution failed: %w", err)
	}

	// Single organization today, but the fetch fans out over however many
	// ids it is given.
	docs, err := client.FetchAllOrgDocuments(ctx, []string{org.ID})
	if err != nil {
		return canoe.Organization{}, nil, fmt.Errorf("document fetch failed: %w", err)
	}

	records := activity.Normalize(docs.Call, activity.KindCall, cfg.DateAfter, warn)
	records = append(records, activity.Normalize(docs.Distribution, activity.KindDistribution, cfg.DateAfter, warn)...)
	activity.SortByDateDesc(records)

	return org, records, nil
}

// warnToStderr writes per-record normalization warnings to the command's
// error stream.
func warnToStderr(cmd *cobra.Command) func(*activity.RecordParseError) {
	return func(e *activity.RecordParseError) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), Warning("warning: "+e.Error()))
	}
}
