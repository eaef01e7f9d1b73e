package epsg

import (
	"bytes"
	"os"

	"github.com/dgraph-io/badger"
	"github.com/jmhodges/levigo"
	"github.com/pkg/errors"
)

var NotFound = errors.New("not found")

const (
	StoreBadger  = "badger"
	StoreLevelDB = "leveldb"
)

// store keeps the serialized definitions by CRS code.
type store interface {
	Put(key, value []byte) error
	Get(key []byte) ([]byte, error)
	// Keys returns all keys with prefix in sorted order.
	Keys(prefix []byte) ([][]byte, error)
	Close() error
}

func openStore(backend, dir string) (store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	switch backend {
	case "", StoreBadger:
		return openBadgerStore(dir)
	case StoreLevelDB:
		return openLevelStore(dir)
	default:
		return nil, errors.Errorf("unknown store %q", backend)
	}
}

type badgerStore struct {
	db *badger.DB
}

// badgerLogger forwards badger messages to our logger, info and debug are
// dropped.
type badgerLogger struct{}

func (badgerLogger) Errorf(msg string, args ...interface{})   { log.Errorf("badger: "+msg, args...) }
func (badgerLogger) Warningf(msg string, args ...interface{}) { log.Warnf("badger: "+msg, args...) }
func (badgerLogger) Infof(msg string, args ...interface{})    {}
func (badgerLogger) Debugf(msg string, args ...interface{})   {}

func openBadgerStore(dir string) (*badgerStore, error) {
	opts := badger.DefaultOptions
	opts.Dir = dir
	opts.ValueDir = dir
	opts.Logger = badgerLogger{}
	opts.SyncWrites = false
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening badger store")
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Put(key, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (s *badgerStore) Get(key []byte) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return NotFound
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	return data, err
}

func (s *badgerStore) Keys(prefix []byte) ([][]byte, error) {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys, err
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}

type levelStore struct {
	db   *levigo.DB
	opts *levigo.Options
	wo   *levigo.WriteOptions
	ro   *levigo.ReadOptions
}

func openLevelStore(dir string) (*levelStore, error) {
	opts := levigo.NewOptions()
	opts.SetCreateIfMissing(true)
	db, err := levigo.Open(dir, opts)
	if err != nil {
		opts.Close()
		return nil, errors.Wrap(err, "opening leveldb store")
	}
	return &levelStore{
		db:   db,
		opts: opts,
		wo:   levigo.NewWriteOptions(),
		ro:   levigo.NewReadOptions(),
	}, nil
}

func (s *levelStore) Put(key, value []byte) error {
	return s.db.Put(s.wo, key, value)
}

func (s *levelStore) Get(key []byte) ([]byte, error) {
	data, err := s.db.Get(s.ro, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, NotFound
	}
	return data, nil
}

func (s *levelStore) Keys(prefix []byte) ([][]byte, error) {
	ro := levigo.NewReadOptions()
	ro.SetFillCache(false)
	defer ro.Close()
	it := s.db.NewIterator(ro)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.Valid(); it.Next() {
		if !bytes.HasPrefix(it.Key(), prefix) {
			break
		}
		keys = append(keys, it.Key())
	}
	return keys, it.GetError()
}

func (s *levelStore) Close() error {
	s.ro.Close()
	s.wo.Close()
	s.db.Close()
	s.opts.Close()
	return nil
}
