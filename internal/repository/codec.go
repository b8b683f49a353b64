package repository

import (
	"context"
	"encoding/json"

	"alcyxob/fitness-tracker/internal/storage"

	"github.com/sirupsen/logrus"
)

// loadList reads the JSON array stored under key. An absent key and a value that
// does not parse both yield an empty list; only a failed read is an error.
// null items are skipped.
func loadList[T any](ctx context.Context, kv storage.KV, key string) ([]T, error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return nil, &StorageError{Op: "get", Key: key, Err: err}
	}
	if !found {
		return []T{}, nil
	}

	var items []*T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err,
		}).Warn("stored value is not a valid list, treating as empty")
		return []T{}, nil
	}

	// null entries carry no record; they are dropped and vanish on the next write.
	list := make([]T, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		list = append(list, *item)
	}
	if dropped := len(items) - len(list); dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"key":     key,
			"dropped": dropped,
		}).Warn("stored list has null entries, skipping them")
	}
	return list, nil
}

// saveList writes the whole list back under key.
func saveList[T any](ctx context.Context, kv storage.KV, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := kv.Set(ctx, key, string(raw)); err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}
