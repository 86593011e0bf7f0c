// Package root contains the root command for the application.
package root

import (
	"fjacquet/finledger/internal/config"
	"fjacquet/finledger/internal/container"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "finledger",
		Short: "A CLI tool to record expenses, track savings goals and export reports.",
		Long: `finledger is a personal finance ledger. It records transactions with
rule-based auto-categorization, reports spending by category and month,
tracks savings goals, and exports everything as JSON or CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
		},
	}
)

// Setup builds the application container from the resolved configuration.
// Commands call it at the start of their Run function.
func Setup() (*container.Container, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	return container.NewContainer(cfg)
}
