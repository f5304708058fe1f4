package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-iangurazov/roksosh/models"
)

// manualClock collects scheduled timers and fires them on demand.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.stopped = true
	return !t.fired
}

func (c *manualClock) AfterFunc(_ time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// fire runs every armed timer that has not been stopped, simulating the
// debounce delay elapsing.
func (c *manualClock) fire() {
	c.mu.Lock()
	pending := make([]*manualTimer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			pending = append(pending, t)
		}
	}
	c.mu.Unlock()
	for _, t := range pending {
		t.fn()
	}
}

func (c *manualClock) scheduled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// fakeFetcher records issued queries and answers from a canned result map.
type fakeFetcher struct {
	mu      sync.Mutex
	queries []models.FilterQuery
	results map[string][]models.Product
	stale   bool // next Fetch reports not-current
}

func (f *fakeFetcher) Fetch(_ context.Context, q models.FilterQuery) ([]models.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.stale {
		return nil, false
	}
	return f.results[q.SearchTerm], true
}

func (f *fakeFetcher) CancelCurrent() {}

func (f *fakeFetcher) issued() []models.FilterQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.FilterQuery, len(f.queries))
	copy(out, f.queries)
	return out
}

func someProducts(n int) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		out[i] = models.Product{ID: "p" + string(rune('0'+i))}
	}
	return out
}

func TestSession_DebounceBurstIssuesOneFetch(t *testing.T) {
	clock := &manualClock{}
	fetcher := &fakeFetcher{results: map[string][]models.Product{
		"shoe": someProducts(2),
	}}
	session := NewSession(fetcher, WithClock(clock))

	for _, text := range []string{"s", "sh", "sho", "shoe"} {
		session.SetQuery(text)
		assert.Equal(t, Pending, session.State())
	}

	clock.fire()

	issued := fetcher.issued()
	require.Len(t, issued, 1, "only the last keystroke of the burst may fetch")
	assert.Equal(t, "shoe", issued[0].SearchTerm)
	assert.Equal(t, Settled, session.State())
	assert.Len(t, session.Results(), 2)
	assert.Equal(t, 4, clock.scheduled(), "every keystroke re-arms the timer")
}

func TestSession_EmptyQueryReturnsToIdle(t *testing.T) {
	clock := &manualClock{}
	fetcher := &fakeFetcher{results: map[string][]models.Product{
		"shoe": someProducts(3),
	}}
	session := NewSession(fetcher, WithClock(clock))

	session.SetQuery("shoe")
	clock.fire()
	require.Equal(t, Settled, session.State())
	require.NotEmpty(t, session.Results())

	session.SetQuery("")

	assert.Equal(t, Idle, session.State())
	assert.Empty(t, session.Results())
	assert.Empty(t, fetcher.issued()[1:], "clearing must not fetch")
}

func TestSession_WhitespaceOnlyIsIdle(t *testing.T) {
	clock := &manualClock{}
	session := NewSession(&fakeFetcher{}, WithClock(clock))

	session.SetQuery("   ")

	assert.Equal(t, Idle, session.State())
	assert.Zero(t, clock.scheduled())
}

func TestSession_ResultsTruncatedToPreviewLimit(t *testing.T) {
	clock := &manualClock{}
	fetcher := &fakeFetcher{results: map[string][]models.Product{
		"shoe": someProducts(9),
	}}
	session := NewSession(fetcher, WithClock(clock))

	session.SetQuery("shoe")
	clock.fire()

	assert.Len(t, session.Results(), DefaultPreviewLimit)
}

func TestSession_EmptySettledResultIsNoMatches(t *testing.T) {
	clock := &manualClock{}
	fetcher := &fakeFetcher{results: map[string][]models.Product{}}
	session := NewSession(fetcher, WithClock(clock))

	session.SetQuery("nothing-matches")
	clock.fire()

	assert.Equal(t, Settled, session.State(), "no matches is a settled substate")
	assert.Empty(t, session.Results())
}

func TestSession_StaleTimerCannotFire(t *testing.T) {
	clock := &manualClock{}
	fetcher := &fakeFetcher{results: map[string][]models.Product{
		"old": someProducts(1),
		"new": someProducts(2),
	}}
	session := NewSession(fetcher, WithClock(clock))

	session.SetQuery("old")
	oldTimer := clock.timers[0]
	session.SetQuery("new")
	clock.fire()

	// even if the old timer's callback somehow still ran, it must be a no-op
	oldTimer.fn()

	issued := fetcher.issued()
	require.Len(t, issued, 1)
	assert.Equal(t, "new", issued[0].SearchTerm)
	assert.Len(t, session.Results(), 2)
}

func TestSession_StaleFetchDoesNotMutateResults(t *testing.T) {
	clock := &manualClock{}
	fetcher := &fakeFetcher{
		results: map[string][]models.Product{"shoe": someProducts(3)},
		stale:   true,
	}
	session := NewSession(fetcher, WithClock(clock))

	session.SetQuery("shoe")
	clock.fire()

	assert.Equal(t, Pending, session.State(), "a stale settlement leaves the session untouched")
	assert.Empty(t, session.Results())
}

func TestSession_FetchSettlingAfterIdleIsDiscarded(t *testing.T) {
	clock := &manualClock{}
	fetcher := &fakeFetcher{results: map[string][]models.Product{
		"shoe": someProducts(3),
	}}
	session := NewSession(fetcher, WithClock(clock))

	session.SetQuery("shoe")
	timer := clock.timers[0]
	session.SetQuery("") // back to Idle; timer was stopped

	timer.fn() // simulate the stopped timer's callback racing in anyway

	assert.Equal(t, Idle, session.State())
	assert.Empty(t, session.Results())
	assert.Empty(t, fetcher.issued())
}

func TestSession_SubmitURL(t *testing.T) {
	session := NewSession(&fakeFetcher{}, WithClock(&manualClock{}))

	assert.Equal(t, "/search", session.SubmitURL())

	session.SetQuery("  red shoe ")
	assert.Equal(t, "/search?q=red+shoe", session.SubmitURL(), "submit uses the trimmed raw text, debounce state is irrelevant")

	session.SetQuery("")
	assert.Equal(t, "/search", session.SubmitURL())
}

func TestSession_OnChangeSeesTransitions(t *testing.T) {
	clock := &manualClock{}
	fetcher := &fakeFetcher{results: map[string][]models.Product{
		"shoe": someProducts(1),
	}}

	var states []State
	session := NewSession(fetcher,
		WithClock(clock),
		WithOnChange(func(state State, _ []models.Product) {
			states = append(states, state)
		}),
	)

	session.SetQuery("shoe")
	clock.fire()
	session.SetQuery("")

	assert.Equal(t, []State{Pending, Settled, Idle}, states)
}
