// Package storage is the durable client-local snapshot store backing
// the cart and purchase managers: an embedded key-value file holding
// whole-state JSON snapshots, written synchronously on every mutation.
package storage

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const (
	CartKey      = "cart"
	PurchasesKey = "purchases"
)

const schemaVersion = 1

var bucketName = []byte("state")

// ErrMalformed is returned when a stored snapshot cannot be decoded or
// carries an unknown schema version. Callers reset to their empty
// default; a bad snapshot must never be fatal.
var ErrMalformed = fmt.Errorf("malformed state snapshot")

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

type Store struct {
	db *bolt.DB
}

// Open creates or opens the snapshot file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening state file %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save serializes v under key. The write has committed to disk when
// Save returns.
func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling snapshot for %s: %w", key, err)
	}

	env, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("marshaling envelope for %s: %w", key, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), env)
	})
	if err != nil {
		return fmt.Errorf("saving snapshot %s: %w", key, err)
	}
	return nil
}

// Load reads the snapshot stored under key into v. It reports false
// when no snapshot exists and ErrMalformed when one exists but cannot
// be decoded.
func (s *Store) Load(key string, v any) (bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bucketName).Get([]byte(key)); b != nil {
			raw = append(raw, b...)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("loading snapshot %s: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	if env.Version != schemaVersion {
		return false, fmt.Errorf("%w: %s: unknown version %d", ErrMalformed, key, env.Version)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}

	return true, nil
}
