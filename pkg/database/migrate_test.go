package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_Pairs(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, f := range files {
		name := strings.TrimPrefix(f, "migrations/")
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", name)
		}
	}
	assert.Equal(t, ups, downs, "every up migration needs a down migration")
}

func TestEmbeddedMigrations_SourceReadable(t *testing.T) {
	d, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer d.Close()

	first, err := d.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := d.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)
}

func TestEmbeddedMigrations_MonthLockTrigger(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "migrations/000002_month_funds_lock.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "months_funds_locked")
	assert.Contains(t, string(body), "FOR UPDATE")
}

func TestRunMigrations_InvalidURL(t *testing.T) {
	_, err := RunMigrations("postgres://invalid host:5432/db")
	assert.Error(t, err)
}
