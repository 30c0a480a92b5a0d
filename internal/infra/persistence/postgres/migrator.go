package postgres

import (
	"embed"
	"log/slog"

	"survey/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator applies the embedded schema migrations with golang-migrate.
type Migrator struct {
	databaseURL string
	logger      *slog.Logger
}

// NewMigrator creates a Migrator for migration.databaseUrl.
func NewMigrator(cfg *config.Config, logger *slog.Logger) (*Migrator, error) {
	if cfg.Migration == nil || cfg.Migration.DatabaseURL == "" {
		return nil, errors.New("migration.databaseUrl must be provided")
	}

	return &Migrator{
		databaseURL: cfg.Migration.DatabaseURL,
		logger:      logger,
	}, nil
}

func (m *Migrator) open() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrations source")
	}

	instance, err := migrate.NewWithSourceInstance("iofs", source, m.databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate instance")
	}

	return instance, nil
}

// Up applies every pending migration.
func (m *Migrator) Up() error {
	instance, err := m.open()
	if err != nil {
		return err
	}
	defer instance.Close()

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to run migrations")
	}

	m.logVersion(instance)

	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(steps int) error {
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}

	instance, err := m.open()
	if err != nil {
		return err
	}
	defer instance.Close()

	if err := instance.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to roll back migrations")
	}

	m.logVersion(instance)

	return nil
}

// Version reports the applied schema version. ok is false on an empty database.
func (m *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	instance, err := m.open()
	if err != nil {
		return 0, false, false, err
	}
	defer instance.Close()

	version, dirty, err = instance.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, errors.Wrap(err, "failed to read schema version")
	}

	return version, dirty, true, nil
}

func (m *Migrator) logVersion(instance *migrate.Migrate) {
	version, dirty, err := instance.Version()
	if err != nil {
		return
	}

	m.logger.Info("Schema migrations applied",
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)
}
