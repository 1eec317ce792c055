package database

import (
	"context"

	"github.com/hashicorp/go-memdb"
)

const memTable = "kv"

type memEntry struct {
	Key   string
	Value []byte
}

// MemoryBackend keeps values in process memory. Nothing survives a restart.
type MemoryBackend struct {
	db *memdb.MemDB
}

func NewMemoryBackend() (*MemoryBackend, error) {
	db, err := memdb.NewMemDB(&memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memTable: {
				Name: memTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return &MemoryBackend{db: db}, nil
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	txn := b.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memTable, "id", key)
	if err != nil {
		return nil, false, err
	}
	if raw == nil {
		return nil, false, nil
	}
	entry := raw.(*memEntry)
	return append([]byte(nil), entry.Value...), true, nil
}

func (b *MemoryBackend) Put(_ context.Context, key string, value []byte) error {
	txn := b.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(memTable, &memEntry{Key: key, Value: append([]byte(nil), value...)}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
