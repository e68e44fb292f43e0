package adminclient

import (
	"context"
	"sync"
	"time"
)

// ListState is where a listing screen currently is.
type ListState int

const (
	ListIdle ListState = iota
	ListLoading
	ListLoaded
	ListErrored
)

const defaultDebounce = 500 * time.Millisecond

// ListController drives one paginated listing: fetch on parameter change,
// debounced search, confirm-then-delete. A generation counter ties each
// response to the fetch that asked for it, so a slow superseded request
// cannot overwrite newer state.
type ListController[T any] struct {
	mu  sync.Mutex
	res *Resource[T]

	state      ListState
	items      []T
	pagination Pagination
	message    string

	page     int
	pageSize int

	searchInput string
	search      string
	debounce    time.Duration
	timer       *time.Timer

	gen uint64

	deleteCandidate *int64
}

type ListOption[T any] func(*ListController[T])

// WithDebounce overrides the search debounce window.
func WithDebounce[T any](d time.Duration) ListOption[T] {
	return func(l *ListController[T]) { l.debounce = d }
}

// WithPageSize sets the initial page size.
func WithPageSize[T any](size int) ListOption[T] {
	return func(l *ListController[T]) { l.pageSize = size }
}

func NewListController[T any](res *Resource[T], opts ...ListOption[T]) *ListController[T] {
	l := &ListController[T]{
		res:      res,
		state:    ListIdle,
		page:     1,
		pageSize: 10,
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Mount runs the initial fetch.
func (l *ListController[T]) Mount(ctx context.Context) {
	l.mu.Lock()
	l.fetchLocked(ctx)
}

// SetPage moves to the given page, clamped to [1, total_pages].
func (l *ListController[T]) SetPage(ctx context.Context, page int) {
	l.mu.Lock()
	if page < 1 {
		page = 1
	}
	if l.pagination.TotalPages > 0 && page > l.pagination.TotalPages {
		page = l.pagination.TotalPages
	}
	if page == l.page {
		l.mu.Unlock()
		return
	}
	l.page = page
	l.fetchLocked(ctx)
}

// SetPageSize changes the page size and resets to the first page.
func (l *ListController[T]) SetPageSize(ctx context.Context, size int) {
	l.mu.Lock()
	if size < 1 || size == l.pageSize {
		l.mu.Unlock()
		return
	}
	l.pageSize = size
	l.page = 1
	l.fetchLocked(ctx)
}

// SetSearch records a keystroke. The value only reaches the server after
// the debounce window passes with no further input, and then resets the
// page to 1.
func (l *ListController[T]) SetSearch(ctx context.Context, input string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.searchInput = input
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.debounce, func() {
		l.mu.Lock()
		if l.searchInput == l.search {
			l.mu.Unlock()
			return
		}
		l.search = l.searchInput
		l.page = 1
		l.fetchLocked(ctx)
	})
}

// RequestDelete opens the confirmation step for the given record.
func (l *ListController[T]) RequestDelete(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deleteCandidate = &id
}

// CancelDelete drops the pending candidate without touching the list.
func (l *ListController[T]) CancelDelete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deleteCandidate = nil
}

// ConfirmDelete deletes the pending candidate. Success refetches the
// current page; failure keeps the list as-is and surfaces the message.
func (l *ListController[T]) ConfirmDelete(ctx context.Context) {
	l.mu.Lock()
	if l.deleteCandidate == nil {
		l.mu.Unlock()
		return
	}
	id := *l.deleteCandidate
	l.deleteCandidate = nil
	l.mu.Unlock()

	result, err := l.res.Delete(ctx, id)
	if err != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.message = err.Error()
		return
	}
	if f := result.Failure(); f != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.message = f.Message
		return
	}

	l.mu.Lock()
	l.fetchLocked(ctx)
}

// fetchLocked issues the list request for the current parameters. The lock
// is held on entry and released before the network call; the generation
// check on return discards responses a later fetch has superseded.
func (l *ListController[T]) fetchLocked(ctx context.Context) {
	l.gen++
	gen := l.gen
	l.state = ListLoading
	page, pageSize, search := l.page, l.pageSize, l.search
	l.mu.Unlock()

	result, err := l.res.List(ctx, page, pageSize, search)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}

	if err != nil {
		l.state = ListErrored
		l.message = err.Error()
		return
	}
	if f := result.Failure(); f != nil {
		l.state = ListErrored
		l.message = f.Message
		return
	}

	fetched, _ := result.Ok()
	l.state = ListLoaded
	l.items = fetched.Items
	l.pagination = fetched.Pagination
	l.message = ""
}

func (l *ListController[T]) State() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *ListController[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items
}

func (l *ListController[T]) Pagination() Pagination {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pagination
}

func (l *ListController[T]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

func (l *ListController[T]) Message() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.message
}

// PendingDelete reports the record awaiting confirmation, if any.
func (l *ListController[T]) PendingDelete() (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deleteCandidate == nil {
		return 0, false
	}
	return *l.deleteCandidate, true
}
