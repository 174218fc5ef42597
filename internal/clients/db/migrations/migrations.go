package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql mysql/*.sql sqlite3/*.sql
var FS embed.FS

// Up applies the migrations for dialect (postgres, mysql, sqlite3). The
// directory name inside FS equals the dialect.
func Up(db *sql.DB, dialect string, log *slog.Logger) error {
	goose.SetBaseFS(FS)
	goose.SetLogger(&gooseLogger{log})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect %s: %w", dialect, err)
	}
	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

type gooseLogger struct {
	log *slog.Logger
}

func (this *gooseLogger) Printf(format string, v ...interface{}) {
	this.log.Info(fmt.Sprintf(format, v...), "component", "goose")
}

func (this *gooseLogger) Fatalf(format string, v ...interface{}) {
	this.log.Error(fmt.Sprintf(format, v...), "component", "goose")
	os.Exit(1)
}
