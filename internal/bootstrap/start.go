package bootstrap

import (
	"go.uber.org/fx"
)

func Run() {
	app := fx.New(
		coreOptions(),
		clientsOptions(),
		appOptions(),
	)

	app.Run()
}
