package main

import (
	"fmt"

	"github.com/fastygo/tasklist/internal/config"
	pgInfra "github.com/fastygo/tasklist/internal/infrastructure/postgres"
	sqliteInfra "github.com/fastygo/tasklist/internal/infrastructure/sqlite"
)

func (a *app) migrate() error {
	switch a.cfg.Database.Driver {
	case config.DriverPostgres:
		return pgInfra.RunMigrations(a.cfg.Database, a.logger)
	case config.DriverSQLite:
		return sqliteInfra.RunMigrations(a.cfg.Database.SQLitePath, a.logger)
	default:
		return fmt.Errorf("unsupported driver %q", a.cfg.Database.Driver)
	}
}
