package store

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record names of the three persisted stores. Each record holds the full
// serialized state of its store; payloads are versionless, unknown fields are
// ignored on load and a missing record means an empty store.
const (
	RecordCart     = "cart"
	RecordWishlist = "wishlist"
	RecordOrders   = "orders"
)

var bucketName = []byte("storefront")

// Storage is the durable local store backing the state containers: a single
// bbolt file with one bucket of named json records.
type Storage struct {
	db *bolt.DB
}

// Open opens (creating if needed) the storage file and its bucket.
func Open(path string) (*Storage, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open storage")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init storage bucket")
	}
	return &Storage{db: db}, nil
}

// Save serializes v and writes it under the named record, synchronously.
func (s *Storage) Save(record string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode record %s", record)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(record), data)
	})
	return errors.Wrapf(err, "write record %s", record)
}

// Load decodes the named record into v. The second return is false when the
// record does not exist, which is not an error.
func (s *Storage) Load(record string, v interface{}) (bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(record))
		if raw != nil {
			data = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "read record %s", record)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(err, "decode record %s", record)
	}
	return true, nil
}

// Delete removes the named record if present.
func (s *Storage) Delete(record string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(record))
	})
	return errors.Wrapf(err, "delete record %s", record)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
