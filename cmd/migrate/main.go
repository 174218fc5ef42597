package main

import (
	"github.com/init-pkg/excel-users/internal/bootstrap"
	db_client "github.com/init-pkg/excel-users/internal/clients/db"
	"github.com/init-pkg/excel-users/internal/config"
)

func main() {
	var (
		cfg = config.MustLoad()
		log = bootstrap.NewLogger(cfg)
	)

	db, err := db_client.Open(cfg.Infrastructure.Db)
	if err != nil {
		panic(err)
	}
	if err := db_client.Migrate(db, cfg.Infrastructure.Db.Driver, log); err != nil {
		panic(err)
	}

	log.Info("migrations applied", "driver", cfg.Infrastructure.Db.Driver)
}
