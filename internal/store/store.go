// Package store implements the optional embedded key-value persistence
// adapter for the id index: resting orders are value-serialised with
// encoding/gob into an embedded Badger database, and the side index is
// reconstructed on load by iterating persisted orders in key order.
package store

import (
	"bytes"
	"encoding/gob"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"matchbook/internal/common"
	"matchbook/internal/order"
	"matchbook/internal/orderbook"
	"matchbook/internal/types"
)

// dbCorruptMsg matches the diagnostic the specification requires on a
// deserialisation failure during load.
const dbCorruptMsg = "store: could not deserialize persisted order; " +
	"database is possibly corrupt, restore from a previous snapshot"

// Store persists the id index of a single orderbook to an embedded
// key-value database.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a Badger database rooted at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// record is the gob-serialisable shadow of a resting LimitOrder.
type record struct {
	Side       int
	LimitPrice string
	PostOnly   bool
	Quantity   string
	Filled     string
	Status     int
}

func keyFor(id common.OrderID) []byte {
	b := id // uuid.UUID is [16]byte
	return b[:]
}

// Put persists a single resting order, keyed by its id.
func (s *Store) Put(l *order.LimitOrder) error {
	rec := record{
		Side:       int(l.Side()),
		LimitPrice: l.LimitPrice().String(),
		PostOnly:   l.PostOnly(),
		Quantity:   l.Quantity().String(),
		Filled:     l.Filled().String(),
		Status:     int(l.Status()),
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return fmt.Errorf("store: encode order %s: %w", l.ID(), err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyFor(l.ID()), buf.Bytes())
	})
}

// Delete removes a persisted order by id.
func (s *Store) Delete(id common.OrderID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(keyFor(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}

// Load reconstructs a full Orderbook by iterating every persisted order in
// key order and inserting each under (side, limit_price). A
// deserialisation failure aborts the load entirely: a partially rebuilt
// book is worse than no book.
func (s *Store) Load() (*orderbook.Orderbook, error) {
	ob := orderbook.New()

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()

			var id common.OrderID
			copy(id[:], item.Key())

			var rec record
			if err := item.Value(func(val []byte) error {
				return gob.NewDecoder(bytes.NewReader(val)).Decode(&rec)
			}); err != nil {
				log.Error().Err(err).Stringer("id", id).Msg(dbCorruptMsg)
				return fmt.Errorf("%s: %w", dbCorruptMsg, err)
			}

			limitOrder, err := restore(id, rec)
			if err != nil {
				log.Error().Err(err).Stringer("id", id).Msg(dbCorruptMsg)
				return fmt.Errorf("%s: %w", dbCorruptMsg, err)
			}

			ob.Insert(limitOrder)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ob, nil
}

func restore(id common.OrderID, rec record) (*order.LimitOrder, error) {
	price, err := types.ParsePrice(rec.LimitPrice)
	if err != nil {
		return nil, err
	}
	quantity, err := types.ParseQuantity(rec.Quantity)
	if err != nil {
		return nil, err
	}
	filled, err := types.ParseQuantity(rec.Filled)
	if err != nil {
		return nil, err
	}

	return order.Restore(id, common.Side(rec.Side), price, rec.PostOnly, quantity, filled, common.Status(rec.Status)), nil
}

