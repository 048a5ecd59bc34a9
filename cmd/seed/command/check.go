package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/historias-clinicas/seed/config"
	"github.com/historias-clinicas/seed/seeder"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the GraphQL endpoint",
	Long:  "The check command only runs the liveness probe against the GraphQL endpoint",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(check) },
}

func check(loader *seeder.Loader, cfg *config.Config) {
	if loader.CheckEndpointLive(context.Background()) {
		fmt.Printf("✅ Conexión exitosa con %s\n", cfg.GraphQLURL)
	} else {
		fmt.Printf("❌ No se puede conectar a %s\n", cfg.GraphQLURL)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
