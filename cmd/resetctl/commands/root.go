package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SscSPs/freelanceos/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultConfigFilename = ".resetctl"
	defaultBaseURL        = "http://localhost:8080"
)

// envKeys binds flags to the variables the server itself reads, so one .env serves both.
var envKeys = map[string]string{
	"url":           "RESETCTL_URL",
	"admin-key":     "ADMIN_API_KEY",
	"cron-secret":   "CRON_SECRET",
	"service-key":   "SUPABASE_SERVICE_ROLE_KEY",
	"supabase-url":  "SUPABASE_URL",
	"webhook-url":   "RESET_WEBHOOK_URL",
	"function-path": "RESET_FUNCTION_PATH",
}

var RootCmd = NewRootCommand()

// NewRootCommand builds the resetctl command tree.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		SilenceUsage:      true,
		Use:               "resetctl",
		Short:             "Operate the demo database reset",
		DisableAutoGenTag: true,
		Long: `Operate the demo database reset

resetctl talks to a running orchestrator to trigger resets, report their status and
smoke test a deployment. 'invoke' skips the orchestrator and calls the reset procedure
directly with the service role key. Flags fall back to a ./.resetctl config file and to
the environment (ADMIN_API_KEY, CRON_SECRET, SUPABASE_URL, SUPABASE_SERVICE_ROLE_KEY,
RESET_WEBHOOK_URL, RESET_FUNCTION_PATH, RESETCTL_URL).`,
		Example: `  # Show what a manual reset would do
  resetctl trigger --dry-run

  # Force a reset from a CI job and notify a webhook
  RESET_WEBHOOK_URL=https://hooks.example.com/reset resetctl invoke --force

  # Check a deployment
  resetctl smoke --url https://demo.example.com --cron-secret "$CRON_SECRET"`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cmd.Flags().GetString("logLevel")
			if err != nil {
				return err
			}
			slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), false, logging.ParseLevel(level)))

			return initializeConfig(v, cmd)
		},
	}

	root.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")
	root.PersistentFlags().String("url", defaultBaseURL, "Base URL of the orchestrator")
	root.PersistentFlags().Duration("timeout", 30*time.Second, "Timeout of every request")

	root.AddCommand(
		newTriggerCommand(),
		newInvokeCommand(),
		newStatusCommand(),
		newSmokeCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func initializeConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetConfigName(defaultConfigFilename)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	v.SetEnvPrefix("RESETCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}

	bindFlags(v, cmd)
	return nil
}

// bindFlags copies config and environment values onto the flags the user did not set.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))) // nolint: errcheck
		}
	})
}
