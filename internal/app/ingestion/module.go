package ingestion_module

import (
	"github.com/init-pkg/excel-users/domain/app"
	ingestion_service "github.com/init-pkg/excel-users/internal/app/ingestion/service"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(ingestion_service.New, fx.As(new(app.IngestionPipeline))),
	)
}
