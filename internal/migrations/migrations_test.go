package migrations

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fileNameRe = regexp.MustCompile(`^\d{14}_[a-z0-9_]+\.sql$`)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(files, dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	versions := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		assert.Regexp(t, fileNameRe, name)

		version := name[:14]
		assert.False(t, versions[version], "duplicate version %s", version)
		versions[version] = true

		body, err := fs.ReadFile(files, dir+"/"+name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestSchemaCoversEveryTable(t *testing.T) {
	var schema strings.Builder
	entries, err := fs.ReadDir(files, dir)
	require.NoError(t, err)
	for _, e := range entries {
		body, err := fs.ReadFile(files, dir+"/"+e.Name())
		require.NoError(t, err)
		schema.Write(body)
	}

	for _, table := range []string{
		"users", "contacts", "addresses", "employees", "terminals",
		"biometric_data", "access_attempts", "recognition_results",
		"attendance_records", "payroll_records", "concepts", "pay_receipts",
		"reports", "system_config", "audit_logs", "auth_tokens", "outbox_events",
	} {
		assert.Contains(t, schema.String(), "CREATE TABLE "+table+" (", table)
	}
}
