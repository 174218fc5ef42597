package bootstrap

import (
	db_client "github.com/init-pkg/excel-users/internal/clients/db"
	rabbitmq_client "github.com/init-pkg/excel-users/internal/clients/rabbitmq"
	redis_client "github.com/init-pkg/excel-users/internal/clients/redis"
	"go.uber.org/fx"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			db_client.New,
			redis_client.New,
			rabbitmq_client.New,
		),
	)
}
