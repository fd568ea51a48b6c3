package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"freshcart/pkg/models"
)

// snapshotName is the single persisted blob; pagination, filters, sort
// and cart all live in it, so a reset wipes everything at once.
const snapshotName = "app-storage"

// Persister is the serialize/deserialize boundary behind the store.
// Load returns nil, nil when no snapshot exists yet.
type Persister interface {
	Load() (*models.ClientState, error)
	Save(models.ClientState) error
	Reset() error
}

// SQLitePersister keeps the snapshot as a JSON blob in the app_state
// table.
type SQLitePersister struct {
	DB *sql.DB
}

func NewSQLitePersister(db *sql.DB) *SQLitePersister {
	return &SQLitePersister{DB: db}
}

func (p *SQLitePersister) Load() (*models.ClientState, error) {
	var data string
	err := p.DB.QueryRow(`
		SELECT data FROM app_state WHERE name = ?
	`, snapshotName).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var st models.ClientState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &st, nil
}

func (p *SQLitePersister) Save(st models.ClientState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = p.DB.Exec(`
		INSERT INTO app_state (name, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
		  data = excluded.data,
		  updated_at = CURRENT_TIMESTAMP
	`, snapshotName, string(b))
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (p *SQLitePersister) Reset() error {
	if _, err := p.DB.Exec(`DELETE FROM app_state WHERE name = ?`, snapshotName); err != nil {
		return fmt.Errorf("reset snapshot: %w", err)
	}
	return nil
}
