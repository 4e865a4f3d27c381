package factsRepo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no fact matches the exact user, date and
// category filter. "No data for that date" is a valid outcome, distinct
// from a store failure.
var ErrNotFound = errors.New("no matching health fact")

// Repository is the black-box fact lookup keyed by user, date and data
// category. An empty category broadens the search to all categories.
type Repository interface {
	Query(ctx context.Context, userID, date, category string) (string, error)
}
