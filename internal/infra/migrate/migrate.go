package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/suphotsudsee/queue-booking-app-v2/migrations"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator обёртка над goose поверх встроенных миграций
type Migrator struct {
	db  *sql.DB
	log Logger
}

// NewMigrator создает новый мигратор
func NewMigrator(db *sql.DB, log Logger) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("migrate: set goose dialect: %w", err)
	}
	goose.SetBaseFS(migrations.FS)

	return &Migrator{db: db, log: log}, nil
}

// Run применяет все непримененные миграции
func (m *Migrator) Run(ctx context.Context) error {
	m.log.Info("Applying database migrations...")

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migrate: apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("migrate: get version: %w", err)
	}

	m.log.Info("Migrations applied, schema version %d", version)
	return nil
}
