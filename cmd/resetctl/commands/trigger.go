package commands

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/spf13/cobra"
)

const triggerResetPath = "/api/admin/trigger-reset"

func newTriggerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Trigger a manual reset through the orchestrator",
		Long:  `Posts to the admin trigger route and prints the orchestrator's reply. A dry run prints the call the orchestrator would make.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			adminKey, _ := cmd.Flags().GetString("admin-key")

			api, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			var resp dto.TriggerResetResponse
			status, err := api.do(cmd.Context(), http.MethodPost, triggerResetPath, nil, dto.TriggerResetRequest{
				Force:    force,
				AdminKey: adminKey,
				DryRun:   dryRun,
			}, &resp)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), resp); err != nil {
				return err
			}

			if status != http.StatusOK || !resp.Success {
				return fmt.Errorf("reset trigger failed with status %d: %s", status, firstNonEmpty(resp.Error, resp.Message))
			}
			slog.Info("reset trigger finished", "skipped", resp.Skipped, "dryRun", resp.DryRun, "duration_ms", resp.Duration)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Reset even when resets are disabled")
	cmd.Flags().Bool("dry-run", false, "Report the call without resetting")
	cmd.Flags().String("admin-key", "", "Admin API key (defaults to ADMIN_API_KEY)")
	return cmd
}
