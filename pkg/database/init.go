package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/petscare/petscare_backend/config"
)

// InitializeDatabases creates the application and Casbin databases if they
// don't exist. It connects to the default 'postgres' database to create the
// others, so it must run before migrations.
func InitializeDatabases(cfg *config.Config) error {
	adminCfg := FromCentralConfig(cfg.Database)
	adminCfg.DBName = "postgres"

	conn, err := openSQLDB(adminCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	for _, dbName := range []string{cfg.Database.DBName, cfg.CasbinDatabase.DBName} {
		if dbName == "" {
			continue
		}
		if err := createDatabaseIfNotExists(conn, dbName); err != nil {
			return fmt.Errorf("failed to create database %q: %w", dbName, err)
		}
	}

	return nil
}

func createDatabaseIfNotExists(conn *sql.DB, dbName string) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	err := conn.QueryRowContext(context.Background(), query, dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = conn.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE %s", dbName))
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	return nil
}
