// Package search runs the storefront's interactive search loop: debounce the
// keystrokes, fetch once the input goes quiet, keep a bounded result preview,
// and make sure a stale fetch can never clobber a newer one.
package search

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/i-iangurazov/roksosh/models"
)

// Fetcher is the slice of the catalog coordinator the session needs.
type Fetcher interface {
	Fetch(ctx context.Context, q models.FilterQuery) (products []models.Product, current bool)
	CancelCurrent()
}

// State of the session. Settled covers both "results" and "no matches" —
// they differ only by whether Results is empty.
type State int

const (
	Idle State = iota
	Pending
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Settled:
		return "settled"
	}
	return "unknown"
}

const (
	// DefaultDebounce is how long the input must stay quiet before a fetch
	// is issued.
	DefaultDebounce = 250 * time.Millisecond

	// DefaultPreviewLimit bounds the settled result preview.
	DefaultPreviewLimit = 5
)

// Session is re-entrant on every keystroke: each SetQuery invalidates the
// previous debounce timer and bumps a keystroke generation, so only the last
// keystroke of a burst reaches the network and only the newest settlement
// becomes visible.
type Session struct {
	fetcher  Fetcher
	clock    Clock
	debounce time.Duration
	limit    int
	onChange func(State, []models.Product)

	mu      sync.Mutex
	state   State
	text    string
	timer   Timer
	gen     uint64
	results []models.Product
}

type Option func(*Session)

func WithClock(clock Clock) Option {
	return func(s *Session) { s.clock = clock }
}

func WithDebounce(d time.Duration) Option {
	return func(s *Session) { s.debounce = d }
}

func WithPreviewLimit(n int) Option {
	return func(s *Session) { s.limit = n }
}

// WithOnChange registers a callback fired after every visible transition,
// outside the session lock.
func WithOnChange(fn func(State, []models.Product)) Option {
	return func(s *Session) { s.onChange = fn }
}

func NewSession(fetcher Fetcher, opts ...Option) *Session {
	s := &Session{
		fetcher:  fetcher,
		clock:    SystemClock(),
		debounce: DefaultDebounce,
		limit:    DefaultPreviewLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetQuery feeds the next keystroke. Non-empty input (after trimming) arms
// the debounce timer; empty input drops the session back to Idle, cancelling
// the timer and any in-flight fetch and clearing the results.
func (s *Session) SetQuery(text string) {
	trimmed := strings.TrimSpace(text)

	s.mu.Lock()
	s.text = text
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if trimmed == "" {
		s.state = Idle
		s.results = nil
		s.mu.Unlock()

		s.fetcher.CancelCurrent()
		s.notify()
		return
	}

	s.state = Pending
	s.timer = s.clock.AfterFunc(s.debounce, func() {
		s.fire(gen, trimmed)
	})
	s.mu.Unlock()

	s.notify()
}

// fire runs when the debounce timer elapses for keystroke generation gen.
func (s *Session) fire(gen uint64, term string) {
	s.mu.Lock()
	if gen != s.gen {
		// a newer keystroke superseded this timer before it could be stopped
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	products, current := s.fetcher.Fetch(context.Background(), models.FilterQuery{SearchTerm: term})

	s.mu.Lock()
	if !current || gen != s.gen {
		s.mu.Unlock()
		return
	}
	if len(products) > s.limit {
		products = products[:s.limit]
	}
	s.results = products
	s.state = Settled
	s.timer = nil
	s.mu.Unlock()

	s.notify()
}

// State reports the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Query returns the raw query text as last typed.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Results returns a copy of the visible result preview.
func (s *Session) Results() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.results))
	copy(out, s.results)
	return out
}

// SubmitURL is the explicit "go to full results" navigation target. It uses
// the current raw text, trimmed, independent of the debounce state.
func (s *Session) SubmitURL() string {
	s.mu.Lock()
	trimmed := strings.TrimSpace(s.text)
	s.mu.Unlock()

	if trimmed == "" {
		return "/search"
	}
	return "/search?q=" + url.QueryEscape(trimmed)
}

func (s *Session) notify() {
	if s.onChange == nil {
		return
	}
	s.mu.Lock()
	state := s.state
	results := make([]models.Product, len(s.results))
	copy(results, s.results)
	s.mu.Unlock()
	s.onChange(state, results)
}
