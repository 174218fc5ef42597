package db_client

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/init-pkg/excel-users/internal/clients/db/migrations"
	"github.com/init-pkg/excel-users/internal/config"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the configured database, creates the users table if absent and
// closes the pool when the application stops.
func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := Open(cfg.Infrastructure.Db)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, cfg.Infrastructure.Db.Driver, log); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	log.Info("database ready", "driver", cfg.Infrastructure.Db.Driver)
	return db, nil
}

func Open(cfg config.Db) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	switch cfg.Driver {
	case "postgres":
		sqlDB, err := sql.Open("postgres", cfg.Dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gcfg)
	case "mysql":
		dsn, err := mysqldriver.ParseDSN(cfg.Dsn)
		if err != nil {
			return nil, fmt.Errorf("parse mysql dsn: %w", err)
		}
		dsn.ParseTime = true
		return gorm.Open(mysql.Open(dsn.FormatDSN()), gcfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Dsn), gcfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func Migrate(db *gorm.DB, driver string, log *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return migrations.Up(sqlDB, dialect(driver), log)
}

func dialect(driver string) string {
	if driver == "sqlite" {
		return "sqlite3"
	}
	return driver
}
