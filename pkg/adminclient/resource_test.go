package adminclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestResourceGetNotFoundIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusNotFound, map[string]any{"ok": false, "message": "record not found"})
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL), "/things", EncodingJSON)
	result, err := res.Get(context.Background(), 99)
	require.NoError(t, err)

	_, ok := result.Ok()
	assert.False(t, ok)
	require.NotNil(t, result.Failure())
	assert.Equal(t, ReasonNotFound, result.Failure().Reason)
	assert.Equal(t, "record not found", result.Message())
}

func TestResourceServerErrorIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL), "/things", EncodingJSON)
	_, err := res.Get(context.Background(), 1)
	assert.Error(t, err)
}

func TestResourceCreateRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.NotContains(t, in, "id")

		respond(w, http.StatusCreated, map[string]any{
			"ok":   true,
			"data": testRecord{ID: 42, Name: in["name"].(string)},
		})
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL), "/things", EncodingJSON)
	result, err := res.Create(context.Background(), map[string]any{"name": "alpha"}, nil)
	require.NoError(t, err)

	created, ok := result.Ok()
	require.True(t, ok)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "alpha", created.Name)
}

func TestResourceListQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		respond(w, http.StatusOK, map[string]any{
			"ok":   true,
			"data": []testRecord{{ID: 1}, {ID: 2}},
			"pagination": Pagination{
				TotalCount: 7, PageSize: 2, CurrentPage: 2, TotalPages: 4,
			},
		})
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL), "/things", EncodingJSON)
	result, err := res.List(context.Background(), 2, 2, "mehr")
	require.NoError(t, err)

	page, ok := result.Ok()
	require.True(t, ok)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 4, page.Pagination.TotalPages)

	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"2"}, gotQuery["page_size"])
	assert.Equal(t, []string{"mehr"}, gotQuery["search"])
}

func TestResourceListOmitsEmptySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("search"))
		respond(w, http.StatusOK, map[string]any{"ok": true, "data": []testRecord{}})
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL), "/things", EncodingJSON)
	_, err := res.List(context.Background(), 1, 10, "")
	require.NoError(t, err)
}

func TestResourceDeleteAlreadyGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusNotFound, map[string]any{"ok": false, "message": "thing not found"})
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL), "/things", EncodingJSON)
	result, err := res.Delete(context.Background(), 5)
	require.NoError(t, err)

	_, ok := result.Ok()
	assert.False(t, ok)
	assert.Equal(t, "thing not found", result.Message())
}

func TestMultipartOnlySendsNewAttachments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "beta", r.FormValue("name"))

		_, _, err := r.FormFile("logo")
		assert.NoError(t, err)

		_, _, err = r.FormFile("licenseFile")
		assert.Error(t, err, "existing attachment must not be re-sent")

		respond(w, http.StatusCreated, map[string]any{"ok": true, "data": testRecord{ID: 9}})
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL), "/centers", EncodingMultipart)
	result, err := res.Create(context.Background(), map[string]any{"name": "beta"}, map[string]Attachment{
		"logo":        NewAttachment{Name: "logo.png", Data: []byte{1, 2, 3}},
		"licenseFile": ExistingAttachment{URL: "/media/old.pdf"},
	})
	require.NoError(t, err)

	_, ok := result.Ok()
	assert.True(t, ok)
}

func TestClientSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		respond(w, http.StatusOK, map[string]any{"ok": true, "data": testRecord{ID: 1}})
	}))
	defer srv.Close()

	res := NewResource[testRecord](New(srv.URL, WithToken("tok-123")), "/things", EncodingJSON)
	_, err := res.Get(context.Background(), 1)
	require.NoError(t, err)
}
