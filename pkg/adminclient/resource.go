package adminclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Encoding selects how create and update bodies go over the wire. Center
// and organization resources always post multipart, person resources JSON.
type Encoding int

const (
	EncodingJSON Encoding = iota
	EncodingMultipart
)

// Resource is the typed client for one collection endpoint.
type Resource[T any] struct {
	client   *Client
	path     string
	encoding Encoding
}

func NewResource[T any](client *Client, path string, encoding Encoding) *Resource[T] {
	return &Resource[T]{client: client, path: path, encoding: encoding}
}

// List fetches one page. An empty search is omitted from the query.
func (r *Resource[T]) List(ctx context.Context, page, pageSize int, search string) (Result[Page[T]], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	if search != "" {
		query.Set("search", search)
	}

	env, status, err := r.client.do(ctx, http.MethodGet, r.path, query, nil, "")
	if err != nil {
		return Result[Page[T]]{}, err
	}
	if !env.OK {
		return Fail[Page[T]](reasonFor(status), env.Message), nil
	}

	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return Result[Page[T]]{}, fmt.Errorf("decode list: %w", err)
		}
	}
	p := Page[T]{Items: items}
	if env.Pagination != nil {
		p.Pagination = *env.Pagination
	}
	return Ok(p), nil
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (Result[T], error) {
	env, status, err := r.client.do(ctx, http.MethodGet, r.itemPath(id), nil, nil, "")
	if err != nil {
		return Result[T]{}, err
	}
	return r.decode(env, status)
}

// Create posts a new record. The identifier is assigned server-side and
// must not appear in the payload.
func (r *Resource[T]) Create(ctx context.Context, payload any, files map[string]Attachment) (Result[T], error) {
	body, contentType, err := r.encode(payload, files)
	if err != nil {
		return Result[T]{}, err
	}
	env, status, err := r.client.do(ctx, http.MethodPost, r.path, nil, body, contentType)
	if err != nil {
		return Result[T]{}, err
	}
	return r.decode(env, status)
}

// Update patches a record; only the keys present in payload change.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any, files map[string]Attachment) (Result[T], error) {
	body, contentType, err := r.encode(payload, files)
	if err != nil {
		return Result[T]{}, err
	}
	env, status, err := r.client.do(ctx, http.MethodPatch, r.itemPath(id), nil, body, contentType)
	if err != nil {
		return Result[T]{}, err
	}
	return r.decode(env, status)
}

// Delete removes a record. Deleting an id that is already gone comes back
// as a Failure with the server's message, never a panic or thrown error.
func (r *Resource[T]) Delete(ctx context.Context, id int64) (Result[struct{}], error) {
	env, status, err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, "")
	if err != nil {
		return Result[struct{}]{}, err
	}
	if !env.OK {
		return Fail[struct{}](reasonFor(status), env.Message), nil
	}
	return Ok(struct{}{}), nil
}

func (r *Resource[T]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

func (r *Resource[T]) encode(payload any, files map[string]Attachment) (io.Reader, string, error) {
	if r.encoding == EncodingMultipart {
		return encodeMultipart(payload, files)
	}
	return encodeJSON(payload)
}

func (r *Resource[T]) decode(env *envelope, status int) (Result[T], error) {
	if !env.OK {
		return Fail[T](reasonFor(status), env.Message), nil
	}
	var value T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &value); err != nil {
			return Result[T]{}, fmt.Errorf("decode record: %w", err)
		}
	}
	return Ok(value), nil
}

func reasonFor(status int) Reason {
	if status == http.StatusNotFound {
		return ReasonNotFound
	}
	return ReasonRejected
}
