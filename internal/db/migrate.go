package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	errEmptyDSN            = errors.New("DSN для миграций не может быть пустым")
	errEmptyMigrationsPath = errors.New("путь к файлам миграций не может быть пустым")
)

// RunMigrations накатывает все миграции из каталога и проверяет, что схема не "грязная"
func RunMigrations(dsn, migrationsPath string, log *slog.Logger) error {
	if dsn == "" {
		return errEmptyDSN
	}
	if migrationsPath == "" {
		return errEmptyMigrationsPath
	}

	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр мигратора: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("ошибка при выполнении миграций: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("ошибка при проверке версии миграций: %w", err)
	}
	if dirty {
		return fmt.Errorf("обнаружена 'грязная' миграция версии %d. Исправьте вручную", version)
	}

	log.Info("схема базы данных актуальна", slog.Uint64("version", uint64(version)))
	return nil
}
