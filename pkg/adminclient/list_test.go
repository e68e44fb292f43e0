package adminclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listServer struct {
	mu       sync.Mutex
	requests []map[string]string
	deletes  int
	deleteOK bool
}

func (s *listServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			s.mu.Lock()
			s.deletes++
			ok := s.deleteOK
			s.mu.Unlock()
			if ok {
				respond(w, http.StatusOK, map[string]any{"ok": true})
			} else {
				respond(w, http.StatusNotFound, map[string]any{"ok": false, "message": "already removed"})
			}
			return
		}

		q := r.URL.Query()
		s.mu.Lock()
		s.requests = append(s.requests, map[string]string{
			"page":      q.Get("page"),
			"page_size": q.Get("page_size"),
			"search":    q.Get("search"),
		})
		s.mu.Unlock()

		respond(w, http.StatusOK, map[string]any{
			"ok":   true,
			"data": []testRecord{{ID: 1, Name: "one"}},
			"pagination": Pagination{
				TotalCount: 50, PageSize: 10, CurrentPage: 1, TotalPages: 5,
			},
		})
	})
}

func (s *listServer) listRequests() []map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]string, len(s.requests))
	copy(out, s.requests)
	return out
}

func newListController(t *testing.T, backend *listServer, opts ...ListOption[testRecord]) *ListController[testRecord] {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	res := NewResource[testRecord](New(srv.URL), "/things", EncodingJSON)
	return NewListController[testRecord](res, opts...)
}

func TestListMountLoads(t *testing.T) {
	backend := &listServer{}
	l := newListController(t, backend)

	assert.Equal(t, ListIdle, l.State())
	l.Mount(context.Background())

	assert.Equal(t, ListLoaded, l.State())
	assert.Len(t, l.Items(), 1)
	assert.Equal(t, 5, l.Pagination().TotalPages)
}

func TestDebounceCoalescesToFinalValue(t *testing.T) {
	backend := &listServer{}
	l := newListController(t, backend, WithDebounce[testRecord](30*time.Millisecond))
	ctx := context.Background()

	l.Mount(ctx)
	l.SetSearch(ctx, "m")
	l.SetSearch(ctx, "me")
	l.SetSearch(ctx, "meh")
	l.SetSearch(ctx, "mehr")

	time.Sleep(200 * time.Millisecond)

	reqs := backend.listRequests()
	require.Len(t, reqs, 2, "rapid keystrokes must fire exactly one extra request")
	assert.Equal(t, "mehr", reqs[1]["search"])
	assert.Equal(t, "1", reqs[1]["page"], "debounced search resets to page 1")
}

func TestDebounceSkipsUnchangedValue(t *testing.T) {
	backend := &listServer{}
	l := newListController(t, backend, WithDebounce[testRecord](20*time.Millisecond))
	ctx := context.Background()

	l.Mount(ctx)
	l.SetSearch(ctx, "x")
	time.Sleep(100 * time.Millisecond)
	l.SetSearch(ctx, "x")
	time.Sleep(100 * time.Millisecond)

	assert.Len(t, backend.listRequests(), 2)
}

func TestPageSizeChangeResetsPage(t *testing.T) {
	backend := &listServer{}
	l := newListController(t, backend)
	ctx := context.Background()

	l.Mount(ctx)
	l.SetPage(ctx, 3)
	require.Equal(t, 3, l.Page())

	l.SetPageSize(ctx, 50)
	assert.Equal(t, 1, l.Page())

	reqs := backend.listRequests()
	last := reqs[len(reqs)-1]
	assert.Equal(t, "1", last["page"])
	assert.Equal(t, "50", last["page_size"])
}

func TestPageClampedToRange(t *testing.T) {
	backend := &listServer{}
	l := newListController(t, backend)
	ctx := context.Background()

	l.Mount(ctx)
	l.SetPage(ctx, 99)
	assert.Equal(t, 5, l.Page())

	l.SetPage(ctx, -1)
	assert.Equal(t, 1, l.Page())
}

func TestStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	var once sync.Once
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if page == "1" {
			once.Do(func() { close(started) })
			<-release
			respond(w, http.StatusOK, map[string]any{
				"ok":         true,
				"data":       []testRecord{{ID: 1, Name: "stale"}},
				"pagination": Pagination{TotalCount: 20, PageSize: 10, CurrentPage: 1, TotalPages: 2},
			})
			return
		}
		respond(w, http.StatusOK, map[string]any{
			"ok":         true,
			"data":       []testRecord{{ID: 2, Name: "fresh"}},
			"pagination": Pagination{TotalCount: 20, PageSize: 10, CurrentPage: 2, TotalPages: 2},
		})
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL), "/things", EncodingJSON)
	l := NewListController[testRecord](res)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		l.Mount(ctx)
		close(done)
	}()
	<-started

	l.SetPage(ctx, 2)
	close(release)
	<-done

	require.Equal(t, ListLoaded, l.State())
	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].Name, "slow first response must not overwrite the newer page")
}

func TestDeleteConfirmFlow(t *testing.T) {
	backend := &listServer{deleteOK: true}
	l := newListController(t, backend)
	ctx := context.Background()

	l.Mount(ctx)
	before := len(backend.listRequests())

	l.RequestDelete(7)
	id, pending := l.PendingDelete()
	require.True(t, pending)
	assert.Equal(t, int64(7), id)

	l.CancelDelete()
	_, pending = l.PendingDelete()
	assert.False(t, pending)
	assert.Equal(t, before, len(backend.listRequests()), "cancel leaves the list untouched")

	l.RequestDelete(7)
	l.ConfirmDelete(ctx)
	assert.Equal(t, 1, backend.deletes)
	assert.Equal(t, before+1, len(backend.listRequests()), "successful delete refetches")
}

func TestDeleteFailureSurfacesMessage(t *testing.T) {
	backend := &listServer{deleteOK: false}
	l := newListController(t, backend)
	ctx := context.Background()

	l.Mount(ctx)
	before := len(backend.listRequests())

	l.RequestDelete(7)
	l.ConfirmDelete(ctx)

	assert.Equal(t, "already removed", l.Message())
	assert.Equal(t, before, len(backend.listRequests()), "failed delete must not refetch")
	assert.Equal(t, ListLoaded, l.State())
}

func TestListErrorState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL), "/things", EncodingJSON)
	l := NewListController[testRecord](res)
	l.Mount(context.Background())

	assert.Equal(t, ListErrored, l.State())
	assert.NotEmpty(t, l.Message())
}
