package catalog

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/errs"
)

const (
	shortKeyPrefix = "short:"
)

type Service struct {
	db *badger.DB

	validate *validator.Validate
}

func NewService(db *badger.DB) *Service {
	return &Service{
		db: db,

		validate: validator.New(),
	}
}

// Seed stores shorts, replacing existing entries with the same id.
func (s *Service) Seed(shorts entities.CareerShorts) (err error) {
	for _, short := range shorts {
		if err = s.validate.Struct(short); err != nil {
			return fmt.Errorf("Seed: short %q: %w", short.ID, err)
		}
	}

	if err = s.db.Update(func(txn *badger.Txn) error {
		for _, short := range shorts {
			data, err := json.Marshal(short)
			if err != nil {
				return fmt.Errorf("marshal short %q: %w", short.ID, err)
			}

			if err = txn.Set(shortKey(short.ID), data); err != nil {
				return fmt.Errorf("set short %q: %w", short.ID, err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("Seed: %w", err)
	}

	log.Info().
		Int("count", len(shorts)).
		Msg("Seed: career shorts stored")

	return nil
}

// Get returns short by id.
func (s *Service) Get(id string) (short entities.CareerShort, err error) {
	if err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(shortKey(id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &short)
		})
	}); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return short, fmt.Errorf("Get: %w: %s", errs.ErrShortNotFound, id)
		}

		return short, fmt.Errorf("Get: %w", err)
	}

	return short, nil
}

// List returns all shorts ordered by id, numeric ids compare as numbers.
func (s *Service) List() (shorts entities.CareerShorts, err error) {
	if err = s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(shortKeyPrefix)

		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var short entities.CareerShort
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &short)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}

			shorts = append(shorts, short)
		}

		return nil
	}); err != nil {
		return shorts, fmt.Errorf("List: %w", err)
	}

	slices.SortFunc(shorts, func(a, b entities.CareerShort) int {
		return compareIDs(a.ID, b.ID)
	})

	return shorts, nil
}

func compareIDs(a, b string) int {
	aNum, aErr := strconv.ParseUint(a, 10, 64)
	bNum, bErr := strconv.ParseUint(b, 10, 64)

	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(aNum, bNum)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}

	return cmp.Compare(a, b)
}

func shortKey(id string) []byte {
	return []byte(shortKeyPrefix + id)
}
