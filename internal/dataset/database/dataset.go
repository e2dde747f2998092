package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robotomize/plinko/internal/database"
	"github.com/robotomize/plinko/internal/dataset"
	bolt "go.etcd.io/bbolt"
)

const (
	datasetKeys = "dataset:keys:"
	prefix      = "dataset:"
)

var ErrNotFound = errors.New("dataset not found")

// Entry is a named dataset as it is kept in the store.
type Entry struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Records   dataset.Dataset `json:"records"`
	CreatedAt time.Time       `json:"createdAt"`
}

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

type DB struct {
	sDB *database.DB
}

func (db *DB) extractKey(key string) string {
	return strings.TrimPrefix(key, prefix)
}

func (db *DB) Keys() ([]string, error) {
	var bucketKeys []string
	err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(datasetKeys))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			bucketKeys = append(bucketKeys, db.extractKey(string(k)))
		}
		return nil
	})

	return bucketKeys, err
}

// Store saves records under name. A dataset stored under the same name earlier is replaced.
func (db *DB) Store(_ context.Context, name string, records dataset.Dataset) (Entry, error) {
	if name == "" {
		return Entry{}, fmt.Errorf("dataset name must not be empty")
	}
	entry := Entry{
		ID:        uuid.New(),
		Name:      name,
		Records:   records.Copy(),
		CreatedAt: time.Now().UTC(),
	}
	bytes, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, err
	}

	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(prefix+name)) != nil {
			if err := tx.DeleteBucket([]byte(prefix + name)); err != nil {
				return fmt.Errorf("delete bucket: %w", err)
			}
		}
		b, err := tx.CreateBucket([]byte(prefix + name))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		if err := b.Put([]byte(entry.ID.String()), bytes); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}
		keys, err := tx.CreateBucketIfNotExists([]byte(datasetKeys))
		if err != nil {
			return fmt.Errorf("unable create datasets bucket: %w", err)
		}
		if err := keys.Put([]byte(prefix+name), []byte{0x0}); err != nil {
			return fmt.Errorf("unable put to datasets bucket: %w", err)
		}
		return nil
	}); err != nil {
		return Entry{}, fmt.Errorf("update transaction error: %w", err)
	}

	return entry, nil
}

func (db *DB) Find(_ context.Context, name string) (Entry, error) {
	var (
		entry Entry
		found bool
	)
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefix + name))
		if b == nil {
			return nil
		}
		_, v := b.Cursor().First()
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &entry); err != nil {
			return fmt.Errorf("json unmarshal error, %w", err)
		}
		found = true
		return nil
	}); err != nil {
		return Entry{}, fmt.Errorf("view transaction error: %w", err)
	}
	if !found {
		return Entry{}, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	return entry, nil
}

func (db *DB) Delete(_ context.Context, name string) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(prefix+name)) == nil {
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		if err := tx.DeleteBucket([]byte(prefix + name)); err != nil {
			return fmt.Errorf("unable delete: %w", err)
		}
		if keys := tx.Bucket([]byte(datasetKeys)); keys != nil {
			return keys.Delete([]byte(prefix + name))
		}
		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}
