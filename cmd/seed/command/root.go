package command

import (
	"context"
	"fmt"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/historias-clinicas/seed/seeder"
)

var rootParams = struct {
	LogLevel string
	DryRun   bool
}{}

// Run executes a given function with dependencies supplied by the seeder DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the seeder
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, seeder.Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the medical records backend with fixture data",
	Long:  "The seed command submits every fixture medical record to the GraphQL backend, one mutation at a time",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Overwrite zap's log level
		return os.Setenv("LOG_LEVEL", rootParams.LogLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error { return Run(seed) },
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootParams.LogLevel, "log-level", "v", "error", "Log Level")
	rootCmd.Flags().BoolVar(&rootParams.DryRun, "dry-run", false, "Only prints out the records that would be created")
}

// seed never fails the process, the outcome is reported in the printed tally
func seed(loader *seeder.Loader) {
	loader.DryRun = rootParams.DryRun
	loader.Run(context.Background())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
