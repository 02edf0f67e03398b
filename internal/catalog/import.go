// Package catalog loads destination seed files into a catalog collection.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store"
)

type Result struct {
	Imported int
	Skipped  int
}

// Import appends every destination from r whose id is not yet in the collection.
// Existing entries are never modified.
func Import(ctx context.Context, dst store.Collection[domain.Destination], r io.Reader) (Result, error) {
	var seed []domain.Destination
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return Result{}, fmt.Errorf("decode seed: %w", err)
	}

	var res Result
	for i, d := range seed {
		if d.ID == "" {
			return res, fmt.Errorf("seed entry %d: %w: id is empty", i, domain.ErrValidation)
		}

		_, err := dst.FindByID(ctx, d.RecordID())
		switch {
		case err == nil:
			res.Skipped++
			continue
		case !errors.Is(err, store.ErrNotFound):
			return res, fmt.Errorf("lookup %s: %w", d.ID, err)
		}

		if err = dst.Append(ctx, d); err != nil {
			return res, fmt.Errorf("append %s: %w", d.ID, err)
		}
		res.Imported++
	}

	return res, nil
}
