package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/freelanceos/internal/adapters/resetfn"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/spf13/cobra"
)

const (
	defaultResetFunctionPath = "/functions/v1/database-reset"
	automationActor   = "automation_script"
	webhookEventName  = "database_reset"
)

// webhookEvent is posted to RESET_WEBHOOK_URL after a successful reset.
type webhookEvent struct {
	Event           string              `json:"event"`
	Timestamp       string              `json:"timestamp"`
	Success         bool                `json:"success"`
	Duration        int64               `json:"duration"`
	RecordsAffected *domain.ResetCounts `json:"recordsAffected,omitempty"`
	TriggeredBy     string              `json:"triggeredBy"`
}

func newInvokeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Call the reset procedure directly with the service role key",
		Long: `Calls the reset procedure at <supabase-url><function-path> without going
through the orchestrator. On success the result is posted to --webhook-url when one is set;
a failing webhook is logged and does not fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			baseURL, _ := cmd.Flags().GetString("supabase-url")
			serviceKey, _ := cmd.Flags().GetString("service-key")
			webhookURL, _ := cmd.Flags().GetString("webhook-url")
			functionPath, _ := cmd.Flags().GetString("function-path")

			var errs []error
			if baseURL == "" {
				errs = append(errs, errors.New("SUPABASE_URL environment variable is required"))
			}
			if serviceKey == "" {
				errs = append(errs, errors.New("SUPABASE_SERVICE_ROLE_KEY environment variable is required"))
			}
			if err := errors.Join(errs...); err != nil {
				return err
			}

			hc, err := httpClientFor(cmd)
			if err != nil {
				return err
			}
			client := resetfn.NewClient(baseURL, functionPath, serviceKey, hc.Timeout,
				resetfn.WithHTTPClient(hc),
				resetfn.WithUserAgent(userAgent),
			)
			payload := dto.ResetFunctionRequest{TriggeredBy: automationActor, Force: force}

			if dryRun {
				slog.Info("dry run, the reset procedure is not called")
				return printJSON(cmd.OutOrStdout(), dto.WouldReset{Endpoint: client.Endpoint(), Payload: payload})
			}

			reply, err := client.Invoke(cmd.Context(), payload)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), reply.ResetFunctionResponse); err != nil {
				return err
			}
			if reply.StatusCode != http.StatusOK || !reply.Success {
				return fmt.Errorf("database reset failed with status %d: %s", reply.StatusCode, firstNonEmpty(reply.Error, reply.Message))
			}
			slog.Info("database reset completed", "duration_ms", reply.Duration)

			if webhookURL != "" {
				event := webhookEvent{
					Event:           webhookEventName,
					Timestamp:       dto.FormatTimestamp(time.Now()),
					Success:         reply.Success,
					Duration:        reply.Duration,
					RecordsAffected: reply.RecordsAffected,
					TriggeredBy:     automationActor,
				}
				status, err := sendJSON(cmd.Context(), hc, http.MethodPost, webhookURL, nil, event, nil)
				switch {
				case err != nil:
					slog.Warn("failed to send webhook notification", "err", err)
				case status >= http.StatusBadRequest:
					slog.Warn("webhook notification rejected", "status", status)
				default:
					slog.Debug("webhook notification sent", "status", status)
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Reset even when resets are disabled")
	cmd.Flags().Bool("dry-run", false, "Print the request without sending it")
	cmd.Flags().String("supabase-url", "", "Base URL of the reset procedure (defaults to SUPABASE_URL)")
	cmd.Flags().String("service-key", "", "Service role key (defaults to SUPABASE_SERVICE_ROLE_KEY)")
	cmd.Flags().String("function-path", defaultResetFunctionPath, "Path of the reset procedure (defaults to RESET_FUNCTION_PATH)")
	cmd.Flags().String("webhook-url", "", "Webhook notified after a reset (defaults to RESET_WEBHOOK_URL)")
	return cmd
}
