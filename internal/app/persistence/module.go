package persistence_module

import (
	"github.com/init-pkg/excel-users/domain/app"
	user_repository "github.com/init-pkg/excel-users/internal/app/persistence/repository"
	persistence_service "github.com/init-pkg/excel-users/internal/app/persistence/service"
	persistence_http_handler "github.com/init-pkg/excel-users/internal/app/persistence/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(user_repository.New, fx.As(new(app.UserRepository))),
		fx.Annotate(persistence_service.New, fx.As(new(app.PersistenceGateway))),
		fx.Annotate(persistence_service.NewUsersService, fx.As(new(app.UsersService))),
		fx.Annotate(
			persistence_http_handler.New,
			fx.As(new(app.HttpHandler)),
			fx.ResultTags(`group:"http_handlers"`),
		),
	)
}
