package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(files, dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_init.sql", entries[0].Name())

	body, err := fs.ReadFile(files, dir+"/00001_init.sql")
	require.NoError(t, err)
	for _, table := range []string{"users", "mentors", "notes", "events", "clubs", "opportunities", "projects_ifp", "links", "discussions_channels"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"))
}

func TestUp_UsesEmbeddedDir(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var gotDir string
	gooseUp = func(_ context.Context, _ *sql.DB, d string) error {
		gotDir = d
		return nil
	}

	require.NoError(t, up(context.Background(), nil))
	assert.Equal(t, "sql", gotDir)
}

func TestUp_WrapsError(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	boom := errors.New("boom")
	gooseUp = func(context.Context, *sql.DB, string) error { return boom }

	err := up(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}
