package filterstate

import (
	"context"
	"sync"

	"tripfinder/pkg/logger"
)

// NavigateFunc is called after a page change, e.g. to scroll the grid to the top.
type NavigateFunc func(page int)

// Session is the live filter state of one listing page in one tab. Every
// selector change resets the page to 1 and is written through to the store.
type Session struct {
	mu       sync.Mutex
	store    PersistenceAdapter
	state    FilterState
	navigate NavigateFunc
	log      logger.Logger
}

func NewSession(store PersistenceAdapter, navigate NavigateFunc, log logger.Logger) *Session {
	if navigate == nil {
		navigate = func(int) {}
	}
	return &Session{
		store:    store,
		state:    Default(),
		navigate: navigate,
		log:      log,
	}
}

// Hydrate reads back whatever the store has. A failing store counts as empty.
func (s *Session) Hydrate(ctx context.Context) FilterState {
	loaded, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn("failed to load filter state", logger.Field{Key: "err", Value: err})
		loaded = Default()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = loaded
	return s.state
}

func (s *Session) State() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SetQuery(ctx context.Context, v string) error {
	return s.update(ctx, func(st *FilterState) { st.Query = v })
}

func (s *Session) SetCategory(ctx context.Context, v string) error {
	return s.update(ctx, func(st *FilterState) { st.Category = v })
}

func (s *Session) SetPrice(ctx context.Context, v string) error {
	return s.update(ctx, func(st *FilterState) { st.Price = v })
}

func (s *Session) SetDuration(ctx context.Context, v string) error {
	return s.update(ctx, func(st *FilterState) { st.Duration = v })
}

func (s *Session) SetRating(ctx context.Context, v string) error {
	return s.update(ctx, func(st *FilterState) { st.Rating = v })
}

func (s *Session) SetSort(ctx context.Context, v string) error {
	return s.update(ctx, func(st *FilterState) { st.Sort = v })
}

func (s *Session) update(ctx context.Context, change func(*FilterState)) error {
	s.mu.Lock()
	change(&s.state)
	s.state.Page = 1
	snapshot := s.state
	s.mu.Unlock()

	return s.store.Save(ctx, snapshot)
}

// GoToPage moves to page without touching the selectors and calls the
// navigate hook when the page actually changed. Out of range pages are
// clamped later by the paginator.
func (s *Session) GoToPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	if s.state.Page == page {
		s.mu.Unlock()
		return nil
	}
	s.state.Page = page
	snapshot := s.state
	s.mu.Unlock()

	s.navigate(page)
	return s.store.Save(ctx, snapshot)
}

// Reset restores the defaults and deletes every stored key, so the next
// Hydrate cannot bring the old selections back.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.state = Default()
	s.mu.Unlock()

	return s.store.Clear(ctx)
}
