package validation_module

import (
	"github.com/init-pkg/excel-users/domain/app"
	validation_service "github.com/init-pkg/excel-users/internal/app/validation/service"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(validation_service.New, fx.As(new(app.FieldValidator))),
	)
}
