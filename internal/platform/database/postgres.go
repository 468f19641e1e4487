package database

import (
	"database/sql"
	"fmt"
	"time"

	"jobtrack/internal/platform/config"
	"jobtrack/internal/platform/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/pressly/goose/v3"
)

var DB *sql.DB

// Connect opens the PostgreSQL pool and runs pending goose migrations.
func Connect() error {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.Up(DB, config.AppConfig.MigrationsDir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	logger.Log.Infow("connected to PostgreSQL", "database", config.AppConfig.DBName)
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
		logger.Log.Info("database connection closed")
	}
}
