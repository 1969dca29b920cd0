package suggest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"tripfinder/pkg/logger"
)

// DefaultDebounce is the quiet period after the last keystroke.
const DefaultDebounce = 300 * time.Millisecond

type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateLoading State = "loading"
	StateSettled State = "settled"
)

type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
)

// Lookup resolves a query to suggestions. *Service implements it.
type Lookup interface {
	Suggest(ctx context.Context, q string) (*Response, error)
}

// Snapshot is the dropdown as it should be drawn right now.
type Snapshot struct {
	State       State        `json:"state"`
	Query       string       `json:"query"`
	Results     []Suggestion `json:"results"`
	Highlighted int          `json:"highlighted"`
	Error       string       `json:"error,omitempty"`
	Retryable   bool         `json:"retryable,omitempty"`
	Selected    *Suggestion  `json:"selected,omitempty"`
}

type ControllerOption func(*Controller)

func WithClock(c clock.Clock) ControllerOption {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithDebounce(d time.Duration) ControllerOption {
	return func(ctl *Controller) { ctl.debounce = d }
}

// WithOnChange registers the snapshot sink. It is called with the controller
// lock held and must not call back into the Controller.
func WithOnChange(fn func(Snapshot)) ControllerOption {
	return func(ctl *Controller) { ctl.onChange = fn }
}

// Controller debounces keystrokes into lookups for one search box. At most
// one timer is pending, and a lookup result is applied only if no keystroke
// or close happened since it was issued.
type Controller struct {
	mu       sync.Mutex
	ctx      context.Context
	lookup   Lookup
	clock    clock.Clock
	debounce time.Duration
	onChange func(Snapshot)
	logger   logger.Logger

	text        string
	state       State
	timer       *clock.Timer
	generation  uint64
	results     []Suggestion
	highlighted int
	err         error
}

// NewController binds lookups to ctx; cancel it when the search box goes away.
func NewController(ctx context.Context, lookup Lookup, log logger.Logger, opts ...ControllerOption) *Controller {
	c := &Controller{
		ctx:         ctx,
		lookup:      lookup,
		clock:       clock.New(),
		debounce:    DefaultDebounce,
		onChange:    func(Snapshot) {},
		logger:      log,
		state:       StateIdle,
		highlighted: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Input records the new text and restarts the quiet period.
func (c *Controller) Input(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = text
	c.stopTimer()
	c.generation++
	c.highlighted = -1

	if strings.TrimSpace(text) == "" {
		c.state = StateIdle
		c.results = nil
		c.err = nil
		c.emit(nil)
		return
	}

	gen := c.generation
	c.timer = c.clock.AfterFunc(c.debounce, func() { c.fire(gen) })
	c.state = StatePending
	c.emit(nil)
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.state = StateLoading
	query := c.text
	c.emit(nil)
	c.mu.Unlock()

	resp, err := c.lookup.Suggest(c.ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("stale suggestions discarded", logger.Field{Key: "query", Value: query})
		return
	}

	c.state = StateSettled
	c.highlighted = -1
	if err != nil {
		c.results = nil
		c.err = err
	} else {
		c.results = resp.Suggestions
		c.err = nil
	}
	c.emit(nil)
}

// Close hides the dropdown (blur, navigation, Escape). The text is kept.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.close(nil)
}

func (c *Controller) close(selected *Suggestion) {
	c.stopTimer()
	c.generation++
	c.state = StateIdle
	c.highlighted = -1
	c.emit(selected)
}

// Key handles dropdown navigation. Enter on a highlighted row returns it and
// closes the dropdown. Arrows and Enter do nothing while the dropdown is closed.
func (c *Controller) Key(k Key) (Suggestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if k != KeyEscape && !c.open() {
		return Suggestion{}, false
	}

	switch k {
	case KeyArrowDown:
		c.highlighted = min(c.highlighted+1, len(c.results)-1)
		c.emit(nil)
	case KeyArrowUp:
		c.highlighted = max(c.highlighted-1, -1)
		c.emit(nil)
	case KeyEnter:
		if c.highlighted >= 0 && c.highlighted < len(c.results) {
			selected := c.results[c.highlighted]
			c.close(&selected)
			return selected, true
		}
	case KeyEscape:
		c.close(nil)
	}
	return Suggestion{}, false
}

func (c *Controller) open() bool {
	return c.state == StateSettled && len(c.results) > 0
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot(nil)
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) snapshot(selected *Suggestion) Snapshot {
	s := Snapshot{
		State:       c.state,
		Query:       c.text,
		Results:     append([]Suggestion(nil), c.results...),
		Highlighted: c.highlighted,
		Selected:    selected,
	}
	if c.err != nil && c.state == StateSettled {
		s.Error = c.err.Error()
		var fetchErr *FetchError
		s.Retryable = errors.As(c.err, &fetchErr)
	}
	return s
}

func (c *Controller) emit(selected *Suggestion) {
	c.onChange(c.snapshot(selected))
}
