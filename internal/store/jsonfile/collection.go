package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store"
)

// Collection keeps all records of one kind as a JSON array in a single file.
// A missing or empty file reads as an empty collection.
type Collection[T store.Record] struct {
	path string

	// mu serializes Append so concurrent writers never drop each other's records.
	mu sync.Mutex
}

func New[T store.Record](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

func (c *Collection[T]) Path() string {
	return c.path
}

func (c *Collection[T]) ListAll(_ context.Context) ([]T, error) {
	return c.read()
}

func (c *Collection[T]) FindByID(_ context.Context, id string) (T, error) {
	var zero T

	records, err := c.read()
	if err != nil {
		return zero, err
	}

	for _, rec := range records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}

	return zero, store.ErrNotFound
}

func (c *Collection[T]) Append(_ context.Context, rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return err
	}

	return c.write(append(records, rec))
}

func (c *Collection[T]) read() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return []T{}, nil
	}

	var records []T
	if err = json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	if records == nil {
		records = []T{}
	}

	return records, nil
}

// write replaces the file through a temp file and rename, so readers never see a partial array.
func (c *Collection[T]) write(records []T) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	dir := filepath.Dir(c.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("replace %s: %w", c.path, err)
	}

	return nil
}
