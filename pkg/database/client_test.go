package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClientMigrates(t *testing.T) {
	client := newTestClient(t)

	// The migrated schema accepts task rows immediately.
	err := client.Task.Create().SetID("t-1").SetTitle("First").Exec(context.Background())
	require.NoError(t, err)

	count, err := client.Task.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewClientIdempotentMigrations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	first, err := NewClient(context.Background(), Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening the same file applies no new migrations and succeeds.
	second, err := NewClient(context.Background(), Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestForeignKeysEnforced(t *testing.T) {
	client := newTestClient(t)

	err := client.Task.Create().
		SetID("orphan").
		SetTitle("Orphan").
		SetParentID("no-such-parent").
		Exec(context.Background())
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)

	status, err := Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
}
