// Package store defines the record collection used by the repositories.
// Backends live in subpackages: jsonfile, redisstore and pgstore.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

type Record interface {
	RecordID() string
}

// Collection is an append-only, ordered set of records.
type Collection[T Record] interface {
	ListAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (T, error)
	Append(ctx context.Context, rec T) error
}
