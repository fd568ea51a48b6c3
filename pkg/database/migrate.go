package database

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
)

// SchemaPath is resolved relative to the working directory; the server
// binaries run from the repo root.
const SchemaPath = "docs/schema.sql"

// Migrate applies the app_state schema. Every statement in the schema
// file is idempotent (CREATE TABLE IF NOT EXISTS), so running this on
// every startup is safe.
func Migrate(db *sql.DB) error {
	b, err := os.ReadFile(SchemaPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", SchemaPath, err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return fmt.Errorf("schema %s is empty", SchemaPath)
	}

	if _, err := db.Exec(string(b)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
