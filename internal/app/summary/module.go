package summary_module

import (
	summary_service "github.com/init-pkg/excel-users/internal/app/summary/service"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(summary_service.New)
}
