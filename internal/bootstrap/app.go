package bootstrap

import (
	events_module "github.com/init-pkg/excel-users/internal/app/events"
	excel_parser_module "github.com/init-pkg/excel-users/internal/app/excel-parser"
	ingestion_module "github.com/init-pkg/excel-users/internal/app/ingestion"
	persistence_module "github.com/init-pkg/excel-users/internal/app/persistence"
	staging_module "github.com/init-pkg/excel-users/internal/app/staging"
	summary_module "github.com/init-pkg/excel-users/internal/app/summary"
	validation_module "github.com/init-pkg/excel-users/internal/app/validation"
	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		excel_parser_module.Register(),
		validation_module.Register(),
		staging_module.Register(),
		ingestion_module.Register(),
		persistence_module.Register(),
		summary_module.Register(),
		events_module.Register(),

		fx.Invoke(
			fx.Annotate(RegisterHandlers, fx.ParamTags(``, `group:"http_handlers"`)),
			StartHttp,
		),
	)
}
