package client

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle state of a Browser.
type State int

const (
	// StateIdle means no fetch has started yet.
	StateIdle State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateLoaded means the last fetch succeeded and a page is held.
	StateLoaded
	// StateErrored means the last fetch failed.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// ErrPageOutOfRange is returned when a requested page falls outside the
// known [1, totalPages] range.
var ErrPageOutOfRange = errors.New("page out of range")

// TrackLister fetches track pages. *API satisfies it.
type TrackLister interface {
	ListTracks(ctx context.Context, page, limit int) (*TrackPage, error)
}

// Browser is a stateful, paginated view over the track catalog. It holds at
// most one page at a time and replaces it wholesale on navigation.
//
// Navigation calls may overlap: each fetch is tagged with a sequence number
// and a response is applied only if no newer fetch has started since, so a
// slow page-2 response can never clobber a later page-3 result.
type Browser struct {
	api   TrackLister
	limit int

	mu          sync.Mutex
	seq         uint64
	state       State
	page        *TrackPage
	currentPage int
	err         error
}

// NewBrowser creates a Browser fetching pages of the given size through api.
// A non-positive limit falls back to the server default.
func NewBrowser(api TrackLister, limit int) *Browser {
	return &Browser{
		api:         api,
		limit:       limit,
		state:       StateIdle,
		currentPage: 1,
	}
}

// State returns the current lifecycle state.
func (b *Browser) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Page returns the currently held page, or nil before the first load.
func (b *Browser) Page() *TrackPage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

// CurrentPage returns the 1-based page number the browser points at.
func (b *Browser) CurrentPage() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentPage
}

// Err returns the error from the last failed fetch, or nil.
func (b *Browser) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Load fetches the first page. Call it once before navigating.
func (b *Browser) Load(ctx context.Context) error {
	return b.fetch(ctx, 1)
}

// Goto navigates to the given 1-based page. Once a page is held, requests
// outside [1, totalPages] are rejected without a fetch; an empty catalog
// only accepts page 1.
func (b *Browser) Goto(ctx context.Context, page int) error {
	if page < 1 {
		return ErrPageOutOfRange
	}

	b.mu.Lock()
	if b.page != nil {
		max := b.page.TotalPages
		if max < 1 {
			max = 1
		}
		if page > max {
			b.mu.Unlock()
			return ErrPageOutOfRange
		}
	}
	b.mu.Unlock()

	return b.fetch(ctx, page)
}

// Next navigates to the following page.
func (b *Browser) Next(ctx context.Context) error {
	b.mu.Lock()
	page := b.currentPage + 1
	b.mu.Unlock()
	return b.Goto(ctx, page)
}

// Prev navigates to the preceding page.
func (b *Browser) Prev(ctx context.Context) error {
	b.mu.Lock()
	page := b.currentPage - 1
	b.mu.Unlock()
	return b.Goto(ctx, page)
}

// Refresh re-fetches the current page.
func (b *Browser) Refresh(ctx context.Context) error {
	b.mu.Lock()
	page := b.currentPage
	b.mu.Unlock()
	return b.fetch(ctx, page)
}

// fetch performs the tagged fetch. The lock is released for the duration of
// the HTTP call so navigation stays responsive.
func (b *Browser) fetch(ctx context.Context, page int) error {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	b.state = StateLoading
	b.mu.Unlock()

	envelope, err := b.api.ListTracks(ctx, page, b.limit)

	b.mu.Lock()
	defer b.mu.Unlock()

	// A newer fetch has started; discard this response.
	if seq != b.seq {
		if err != nil {
			return err
		}
		return nil
	}

	if err != nil {
		b.state = StateErrored
		b.err = err
		return err
	}

	b.state = StateLoaded
	b.err = nil
	b.page = envelope
	b.currentPage = envelope.CurrentPage
	return nil
}
