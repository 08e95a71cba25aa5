package store

import (
	"context"
	"time"
)

// NullStore never stores anything. Used when persistence is disabled.
type NullStore struct{}

var _ Store = NullStore{}

func (NullStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NullStore) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NullStore) Delete(context.Context, string) error {
	return nil
}

func (NullStore) Close() error {
	return nil
}
