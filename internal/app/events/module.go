package events_module

import (
	events_service "github.com/init-pkg/excel-users/internal/app/events/service"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(events_service.New)
}
