package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/spf13/cobra"
)

const resetStatusPath = "/api/admin/reset-status"

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report the reset system status",
		Long:  `Prints the orchestrator's status report. Fails when the status check fails or health is "error".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			var raw json.RawMessage
			status, err := api.do(cmd.Context(), http.MethodGet, resetStatusPath, nil, nil, &raw)
			if err != nil {
				return err
			}
			if len(raw) > 0 {
				if err := printJSON(cmd.OutOrStdout(), raw); err != nil {
					return err
				}
			}

			var report struct {
				Error  string     `json:"error"`
				Health dto.Health `json:"health"`
			}
			_ = json.Unmarshal(raw, &report)
			for _, issue := range report.Health.Issues {
				slog.Warn("reset system issue", "issue", issue)
			}

			if status != http.StatusOK {
				return fmt.Errorf("status check failed with status %d: %s", status, firstNonEmpty(report.Error))
			}
			if report.Health.Overall == dto.HealthError {
				return fmt.Errorf("reset system health is %s", report.Health.Overall)
			}
			slog.Info("reset system status", "health", report.Health.Overall)
			return nil
		},
	}
}
