package store

import (
	"encoding/json"

	"github.com/zhubert/navigator/internal/errors"
	"github.com/zhubert/navigator/internal/logger"
)

// LoadJSON decodes the value stored under key into a T.
//
// A missing key yields fallback with no error. A corrupt entry is logged,
// removed and reported as KindPersistenceRead alongside fallback; it is
// never retried. Callers may ignore the error.
func LoadJSON[T any](s Store, key string, fallback T) (T, error) {
	log := logger.WithComponent("store")

	raw, ok, err := s.Get(key)
	if err != nil {
		log.Error("read failed", "key", key, "error", err)
		return fallback, errors.PersistenceRead(key, err)
	}
	if !ok {
		return fallback, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Warn("corrupt entry cleared", "key", key, "error", err)
		if rmErr := s.Remove(key); rmErr != nil {
			log.Error("failed to clear corrupt entry", "key", key, "error", rmErr)
		}
		return fallback, errors.PersistenceRead(key, err)
	}
	return v, nil
}

// SaveJSON encodes v and writes it under key. Failures are logged and
// returned as KindPersistenceWrite; in-memory state is unaffected.
func SaveJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		logger.WithComponent("store").Error("encode failed", "key", key, "error", err)
		return errors.PersistenceWrite(key, err)
	}
	return SaveString(s, key, string(data))
}

// SaveString writes a raw value under key with the same failure policy as
// SaveJSON.
func SaveString(s Store, key, value string) error {
	if err := s.Set(key, value); err != nil {
		logger.WithComponent("store").Error("write failed", "key", key, "error", err)
		return errors.PersistenceWrite(key, err)
	}
	return nil
}

// Delete removes key with the same failure policy as SaveJSON.
func Delete(s Store, key string) error {
	if err := s.Remove(key); err != nil {
		logger.WithComponent("store").Error("remove failed", "key", key, "error", err)
		return errors.PersistenceWrite(key, err)
	}
	return nil
}

// LoadString returns the raw value under key, or "" when absent or
// unreadable.
func LoadString(s Store, key string) (string, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		logger.WithComponent("store").Error("read failed", "key", key, "error", err)
		return "", errors.PersistenceRead(key, err)
	}
	if !ok {
		return "", nil
	}
	return raw, nil
}
