package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appraisal/internal/database"
)

type fakeMigrator struct {
	steps   []int
	ups     int
	version uint
	verErr  error
	closed  bool
}

func (f *fakeMigrator) Up() error { f.ups++; return migrate.ErrNoChange }
func (f *fakeMigrator) Steps(n int) error { f.steps = append(f.steps, n); return nil }
func (f *fakeMigrator) Close() (error, error) { f.closed = true; return nil, nil }
func (f *fakeMigrator) Version() (uint, bool, error) {
	return f.version, false, f.verErr
}

func execute(t *testing.T, fake *fakeMigrator, args ...string) (string, error) {
	t.Helper()
	open := func(cfg *database.Config) (migrator, error) {
		assert.Equal(t, "file://migrations", cfg.SourceURL())
		return fake, nil
	}
	root := newRootCommand(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMigrateCommands(t *testing.T) {
	t.Setenv("DB_DRIVER", database.DriverPostgres)
	t.Setenv("MIGRATIONS_PATH", "migrations")

	t.Run("up_tolerates_no_change", func(t *testing.T) {
		fake := &fakeMigrator{}
		_, err := execute(t, fake, "up")
		require.NoError(t, err)
		assert.Equal(t, 1, fake.ups)
		assert.True(t, fake.closed)
	})

	t.Run("down_rolls_back_steps", func(t *testing.T) {
		fake := &fakeMigrator{}
		_, err := execute(t, fake, "down", "--steps=2")
		require.NoError(t, err)
		assert.Equal(t, []int{-2}, fake.steps)
	})

	t.Run("down_rejects_zero_steps", func(t *testing.T) {
		fake := &fakeMigrator{}
		_, err := execute(t, fake, "down", "--steps=0")
		require.Error(t, err)
		assert.Empty(t, fake.steps)
		assert.False(t, fake.closed)
	})

	t.Run("version", func(t *testing.T) {
		out, err := execute(t, &fakeMigrator{version: 2}, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "version 2")
	})

	t.Run("version_before_any_migration", func(t *testing.T) {
		out, err := execute(t, &fakeMigrator{verErr: migrate.ErrNilVersion}, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "no migrations applied")
	})

	t.Run("version_error", func(t *testing.T) {
		_, err := execute(t, &fakeMigrator{verErr: errors.New("connection refused")}, "version")
		assert.Error(t, err)
	})
}

func TestMigrateRequiresPostgres(t *testing.T) {
	t.Setenv("DB_DRIVER", database.DriverSQLite)

	fake := &fakeMigrator{}
	_, err := execute(t, fake, "up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auto-migrated")
	assert.Zero(t, fake.ups)
}
