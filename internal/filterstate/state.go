package filterstate

import (
	"context"

	"tripfinder/internal/listing"
)

// FilterState is everything the user picked on one listing page.
type FilterState struct {
	listing.Criteria
	Page int `json:"page"`
}

// Default is the state of a page opened for the first time.
func Default() FilterState {
	return FilterState{
		Criteria: listing.DefaultCriteria(),
		Page:     1,
	}
}

// PersistenceAdapter stores one tab's state for one listing page.
type PersistenceAdapter interface {
	Load(ctx context.Context) (FilterState, error)
	Save(ctx context.Context, state FilterState) error
	Clear(ctx context.Context) error
}

// Opener binds a store to one tab and one listing page.
type Opener func(sessionID string, profile listing.Profile) PersistenceAdapter
