package staging_module

import (
	"github.com/init-pkg/excel-users/domain/app"
	staging_service "github.com/init-pkg/excel-users/internal/app/staging/service"
	staging_http_handler "github.com/init-pkg/excel-users/internal/app/staging/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(staging_service.New, fx.As(new(app.RecordStore))),
		fx.Annotate(
			staging_http_handler.New,
			fx.As(new(app.HttpHandler)),
			fx.ResultTags(`group:"http_handlers"`),
		),
	)
}
