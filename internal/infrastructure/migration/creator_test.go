package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"add contracts table", "add_contracts_table"},
		{"Add-Release-Columns", "add_release_columns"},
		{"seed_payment_terms", "seed_payment_terms"},
		{"drop  double  spaces", "drop_double_spaces"},
		{"trailing underscore ", "trailing_underscore"},
		{"UPPER123lower", "upper123lower"},
		{"weird!@#chars", "weirdchars"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, sanitizeName(tc.input), "input %q", tc.input)
	}
}

func TestCreateMigration(t *testing.T) {
	t.Run("creates an up and down pair", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "add contracts table", "contract schema")
		require.NoError(t, err)

		assert.Len(t, mf.Version, 14, "version is a sortable timestamp")
		assert.FileExists(t, mf.UpPath)
		assert.FileExists(t, mf.DownPath)
		assert.Contains(t, filepath.Base(mf.UpPath), "add_contracts_table.up.sql")
		assert.Contains(t, filepath.Base(mf.DownPath), "add_contracts_table.down.sql")

		up, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(up), "add contracts table")
		assert.Contains(t, string(up), "contract schema")

		down, err := os.ReadFile(mf.DownPath)
		require.NoError(t, err)
		assert.Contains(t, string(down), "Rollback")
	})

	t.Run("creates the migrations directory when missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "db", "migrations")

		_, err := CreateMigration(dir, "init", "initial schema")
		require.NoError(t, err)
		assert.DirExists(t, dir)
	})
}

func TestListMigrations(t *testing.T) {
	t.Run("lists up migrations without duplicates", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"20260801000001_add_contracts.up.sql",
			"20260801000001_add_contracts.down.sql",
			"20260801000002_add_parties.up.sql",
			"20260801000002_add_parties.down.sql",
			"notes.txt",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0644))
		}

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"20260801000001_add_contracts",
			"20260801000002_add_parties",
		}, migrations)
	})

	t.Run("returns empty list for missing directory", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "missing"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("ignores subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "archive"), 0755))

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
