package storage

import (
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
    name    TEXT PRIMARY KEY,
    payload TEXT NOT NULL
);`

// Adapter persists named collections as JSON documents in SQLite. It is
// the sole channel between the in-memory state and durable storage.
type Adapter struct {
	db *sqlx.DB
}

// New applies the collections schema and returns an adapter bound to
// the given connection.
func New(db *sqlx.DB) (*Adapter, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "apply collections schema")
	}
	return &Adapter{db: db}, nil
}

// Load reads the named collection into out. A missing row leaves out
// untouched, and a payload that no longer unmarshals is discarded with
// a warning: stored garbage means an empty collection, never a fatal
// startup condition.
func (a *Adapter) Load(name string, out any) error {
	var payload string
	err := a.db.Get(&payload, `SELECT payload FROM collections WHERE name = ?`, name)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "load collection %q", name)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		log.WithField("collection", name).Warnf("discarding malformed payload: %v", err)
		return nil
	}
	return nil
}

// Save serializes v and upserts it under name, replacing the previous
// snapshot of the collection.
func (a *Adapter) Save(name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "marshal collection %q", name)
	}
	_, err = a.db.Exec(`
		INSERT INTO collections (name, payload) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		name, string(payload))
	return errors.Wrapf(err, "save collection %q", name)
}
