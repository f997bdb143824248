package catalog

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

// OpenDB opens catalog storage. Empty path keeps catalog in memory.
func OpenDB(path string) (db *badger.DB, err error) {
	options := badger.DefaultOptions(path).
		WithLogger(NewBadgerLogger()).
		WithMemTableSize(64 << 17) // ~8MB
	if lo.IsEmpty(path) {
		options = options.WithInMemory(true)
	}

	if db, err = badger.Open(options); err != nil {
		return db, fmt.Errorf("OpenDB: %w", err)
	}

	return db, nil
}
