package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/spf13/cobra"
)

const cronResetPath = "/api/cron/database-reset"

// smokeCheck is one request of the smoke run and the status codes it may answer with.
type smokeCheck struct {
	name     string
	method   string
	path     string
	headers  map[string]string
	body     any
	expected []int
}

func newSmokeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Smoke test the reset routes of a deployment",
		Long: `Checks the status route, a dry run manual trigger and the rejection of a cron call
presenting a wrong secret. Nothing is reset. The cron check needs --cron-secret and is
skipped without one, since a deployment without a cron secret accepts any caller.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adminKey, _ := cmd.Flags().GetString("admin-key")
			cronSecret, _ := cmd.Flags().GetString("cron-secret")

			api, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			checks := []smokeCheck{
				{
					name:   "status",
					method: http.MethodGet,
					path:   resetStatusPath,
					// A failed status check still proves the route is served.
					expected: []int{http.StatusOK, http.StatusInternalServerError},
				},
				{
					name:     "manual trigger (dry run)",
					method:   http.MethodPost,
					path:     triggerResetPath,
					body:     dto.TriggerResetRequest{AdminKey: adminKey, DryRun: true, Force: true},
					expected: []int{http.StatusOK},
				},
			}
			if cronSecret != "" {
				checks = append(checks, smokeCheck{
					name:     "cron rejects a wrong secret",
					method:   http.MethodPost,
					path:     cronResetPath,
					headers:  map[string]string{"Authorization": "Bearer " + cronSecret + "-invalid"},
					body:     dto.CronResetRequest{},
					expected: []int{http.StatusUnauthorized},
				})
			} else {
				slog.Warn("no cron secret given, skipping the cron check")
			}

			return runSmokeChecks(cmd.Context(), api, checks)
		},
	}

	cmd.Flags().String("admin-key", "", "Admin API key (defaults to ADMIN_API_KEY)")
	cmd.Flags().String("cron-secret", "", "Cron secret of the deployment (defaults to CRON_SECRET)")
	return cmd
}

func runSmokeChecks(ctx context.Context, api *apiClient, checks []smokeCheck) error {
	var errs []error
	for _, check := range checks {
		status, err := api.do(ctx, check.method, check.path, check.headers, check.body, nil)
		switch {
		case err != nil:
			slog.Error("smoke check failed", "check", check.name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", check.name, err))
		case !slices.Contains(check.expected, status):
			slog.Error("smoke check failed", "check", check.name, "status", status, "expected", check.expected)
			errs = append(errs, fmt.Errorf("%s: unexpected status %d", check.name, status))
		default:
			slog.Info("smoke check passed", "check", check.name, "status", status)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d smoke checks failed: %w", len(errs), len(checks), errors.Join(errs...))
	}
	return nil
}
