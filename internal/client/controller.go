// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/models"
)

// Listing defaults used by the controller.
const (
	PageSize    = 24
	DefaultSort = "-rating"
)

// GenericLoadError is shown for failures without a server message.
const GenericLoadError = "Failed to load movies. Please try again."

// Lister fetches listing pages. Implemented by *Client.
type Lister interface {
	ListMovies(ctx context.Context, params url.Values) (*Page, error)
}

// State is a snapshot of the controller.
type State struct {
	Items   []models.Movie
	Cursor  int
	Loading bool
	HasMore bool
	Total   int64
	Err     string
}

// Controller drives incremental loading of the movie list. At most one
// request is in flight; a reset fetch cancels it and responses of
// superseded requests are never applied. Methods are safe for concurrent
// use.
type Controller struct {
	lister  Lister
	filters *FilterState

	mu       sync.Mutex
	items    []models.Movie
	cursor   int
	inFlight bool
	hasMore  bool
	total    int64
	errMsg   string
	cancel   context.CancelFunc
	gen      uint64
	closed   bool
	onUpdate func(State)

	wg sync.WaitGroup
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithOnUpdate calls fn with a snapshot after every applied state change.
// fn runs while the controller is locked and must not call back into it.
func WithOnUpdate(fn func(State)) ControllerOption {
	return func(c *Controller) { c.onUpdate = fn }
}

// NewController returns a controller listing through lister with the
// selection held by filters.
func NewController(lister Lister, filters *FilterState, opts ...ControllerOption) *Controller {
	c := &Controller{
		lister:  lister,
		filters: filters,
		cursor:  1,
		hasMore: true,
		items:   []models.Movie{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot. Items is a copy.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		Items:   append([]models.Movie(nil), c.items...),
		Cursor:  c.cursor,
		Loading: c.inFlight,
		HasMore: c.hasMore,
		Total:   c.total,
		Err:     c.errMsg,
	}
}

// CanLoadMore reports whether a proximity signal would start a fetch.
func (c *Controller) CanLoadMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed && !c.inFlight && c.hasMore
}

func (c *Controller) params(cursor int) url.Values {
	q := c.filters.Current().Params()
	q.Set("page", strconv.Itoa(cursor))
	q.Set("limit", strconv.Itoa(PageSize))
	q.Set("sortBy", DefaultSort)
	return q
}

// FetchPage loads the next page, or the first page again when reset is set.
// It blocks until the request finishes or is superseded.
//
// A non-reset fetch is a no-op while another request is in flight or when no
// pages remain. A reset clears the list and cancels any in-flight request.
func (c *Controller) FetchPage(ctx context.Context, reset bool) {
	c.mu.Lock()
	if c.closed || (!reset && (c.inFlight || !c.hasMore)) {
		c.mu.Unlock()
		return
	}
	if reset {
		if c.cancel != nil {
			c.cancel()
		}
		c.items = []models.Movie{}
		c.cursor = 1
		c.hasMore = true
		c.total = 0
	}
	c.errMsg = ""
	c.gen++
	gen := c.gen
	cursor := c.cursor
	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.inFlight = true
	params := c.params(cursor)
	c.notifyLocked()
	c.mu.Unlock()

	page, err := c.lister.ListMovies(reqCtx, params)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		logging.Debug().Int("page", cursor).Msg("Discarded superseded page")
		return
	}
	c.inFlight = false
	c.cancel = nil

	if err != nil {
		if isCanceled(err) {
			c.notifyLocked()
			return
		}
		c.errMsg = LoadErrorMessage(err)
		c.notifyLocked()
		return
	}

	items := page.Items
	if items == nil {
		items = []models.Movie{}
	}
	if reset {
		c.items = items
	} else {
		c.items = append(c.items, items...)
	}

	if page.Meta != nil {
		c.total = page.Meta.Total
		c.hasMore = page.Meta.HasMore
		c.cursor = page.Meta.Page + 1
	} else {
		c.total = int64(len(c.items))
		c.hasMore = len(items) > 0
		c.cursor = cursor + 1
	}
	c.notifyLocked()
}

func (c *Controller) notifyLocked() {
	if c.onUpdate != nil {
		c.onUpdate(c.stateLocked())
	}
}

func isCanceled(err error) bool {
	return errors.Is(err, ErrRequestCanceled) || errors.Is(err, context.Canceled)
}

// LoadErrorMessage renders a fetch failure for display.
func LoadErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return fmt.Sprintf("API Endpoint not found (404). Checked: %s", apiErr.URL)
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return GenericLoadError
}

// Run loads the first page, then resets on every filter change and loads
// the next page on each proximity signal that arrives while the controller
// is idle with pages remaining. It returns when ctx is done, after the
// in-flight request has been canceled.
func (c *Controller) Run(ctx context.Context, proximity <-chan struct{}) error {
	unsubscribe := c.filters.Subscribe(func(Filters) { c.spawn(ctx, true) })

	c.spawn(ctx, true)

	for {
		select {
		case <-ctx.Done():
			unsubscribe()
			c.Close()
			return ctx.Err()
		case _, ok := <-proximity:
			if !ok {
				proximity = nil
				continue
			}
			if c.CanLoadMore() {
				c.spawn(ctx, false)
			}
		}
	}
}

func (c *Controller) spawn(ctx context.Context, reset bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.FetchPage(ctx, reset)
	}()
}

// Close cancels in-flight work and waits for fetches started by Run.
// Later fetches are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.inFlight = false
	c.mu.Unlock()

	c.filters.Stop()
	c.wg.Wait()
}
