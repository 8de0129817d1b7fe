// Package storetest opens throwaway sqlite stores with the CRM schema
// applied, for tests in other packages.
package storetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/qawafel/crm-backend/pkg/config"
	"github.com/qawafel/crm-backend/pkg/db"
	"github.com/qawafel/crm-backend/pkg/migrate"
)

// Open returns a migrated sqlite client in t's temp dir. It is closed when
// the test ends.
func Open(t testing.TB) *db.Client {
	t.Helper()
	client := OpenEmpty(t)
	if err := migrate.EnsureSchema(context.Background(), client); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return client
}

// OpenEmpty returns a sqlite client without any tables.
func OpenEmpty(t testing.TB) *db.Client {
	t.Helper()
	client, err := db.New(context.Background(), config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "crm.db"),
	}, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}
