package database

import (
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSourceLoads(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)
}

// Generated columns only accept IMMUTABLE expressions; array_to_string is
// STABLE, so the search vector must go through the immutable wrapper or
// CREATE TABLE posts fails on a fresh database.
func TestSearchVectorUsesImmutableWrapper(t *testing.T) {
	raw, err := migrationsFS.ReadFile("migrations/000001_init.up.sql")
	require.NoError(t, err)
	sql := string(raw)

	assert.Contains(t, sql, "CREATE OR REPLACE FUNCTION immutable_array_to_string")
	assert.Contains(t, sql, "IMMUTABLE")
	assert.Contains(t, sql, "immutable_array_to_string(tags, ' ')")

	// Every remaining array_to_string call must be inside the wrapper
	// definition, never bare in the generation expression.
	body := strings.ReplaceAll(sql, "SELECT array_to_string($1, $2)", "")
	body = strings.ReplaceAll(body, "immutable_array_to_string", "")
	assert.NotContains(t, body, "array_to_string")
}
