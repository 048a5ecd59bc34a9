package seeder

import (
	"go.uber.org/fx"

	"github.com/historias-clinicas/seed/config"
	"github.com/historias-clinicas/seed/fixtures"
	"github.com/historias-clinicas/seed/graphql"
	"github.com/historias-clinicas/seed/logger"
	"github.com/historias-clinicas/seed/records"
)

var Module = fx.Provide(
	config.Load,
	logger.NewProductionLogger,
	logger.Suggar,
	graphql.NewClient,
	records.NewService,
	fixtures.New,
	NewLoader,
)

func Dependencies() []fx.Option {
	return []fx.Option{Module}
}
