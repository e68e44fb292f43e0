package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Pagination mirrors the server's page envelope metadata.
type Pagination struct {
	TotalCount  int `json:"total_count"`
	PageSize    int `json:"page_size"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// Page is one fetched page of a listing.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// Client talks to the admin API. It holds the base URL and the bearer
// token; per-entity typed access goes through Resource.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken swaps the bearer token, typically after sign-in or refresh.
func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope struct {
	OK         bool            `json:"ok"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Pagination *Pagination     `json:"pagination"`
}

// do runs one request and decodes the envelope. Network problems and 5xx
// responses come back as errors; any decoded ok:false is the caller's
// business failure to classify.
func (c *Client) do(ctx context.Context, method, path string, query url.Values,
	body io.Reader, contentType string) (*envelope, int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, 0, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, resp.StatusCode, fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return &env, resp.StatusCode, nil
}

// encodeJSON marshals a payload for application/json requests.
func encodeJSON(payload any) (io.Reader, string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(b), "application/json", nil
}

// encodeMultipart flattens the payload's fields into form values and writes
// any newly picked files. ExistingAttachment values are never re-sent.
func encodeMultipart(payload any, files map[string]Attachment) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if payload != nil {
		fields, err := formFields(payload)
		if err != nil {
			return nil, "", err
		}
		for name, value := range fields {
			if err := w.WriteField(name, value); err != nil {
				return nil, "", err
			}
		}
	}

	for field, att := range files {
		picked, ok := att.(NewAttachment)
		if !ok {
			continue
		}
		fw, err := w.CreateFormFile(field, picked.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := fw.Write(picked.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// formFields renders the payload's non-nil fields as form values. Names come
// from the `form` tag, the same tag the server binds multipart bodies with,
// falling back to `json` for payloads that only carry the latter.
func formFields(payload any) (map[string]string, error) {
	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return map[string]string{}, nil
		}
		v = v.Elem()
	}
	fields := make(map[string]string)
	switch v.Kind() {
	case reflect.Struct:
		if err := collectFormFields(v, fields); err != nil {
			return nil, err
		}
	case reflect.Map:
		for _, key := range v.MapKeys() {
			if key.Kind() != reflect.String {
				return nil, fmt.Errorf("multipart payload map needs string keys, got %s", key.Kind())
			}
			mv := v.MapIndex(key)
			skip := false
			for mv.Kind() == reflect.Interface || mv.Kind() == reflect.Pointer {
				if mv.IsNil() {
					skip = true
					break
				}
				mv = mv.Elem()
			}
			if skip {
				continue
			}
			value, err := formFieldValue(mv)
			if err != nil {
				return nil, err
			}
			fields[key.String()] = value
		}
	default:
		return nil, fmt.Errorf("multipart payload must be a struct or map, got %T", payload)
	}
	return fields, nil
}

func collectFormFields(v reflect.Value, out map[string]string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		fv := v.Field(i)
		if f.Anonymous && fv.Kind() == reflect.Struct {
			if err := collectFormFields(fv, out); err != nil {
				return err
			}
			continue
		}

		name := formFieldName(f)
		if name == "" {
			continue
		}
		skip := false
		for fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				skip = true
				break
			}
			fv = fv.Elem()
		}
		if skip {
			continue
		}

		value, err := formFieldValue(fv)
		if err != nil {
			return err
		}
		out[name] = value
	}
	return nil
}

func formFieldName(f reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		tag, ok := f.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func formFieldValue(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	default:
		nested, err := json.Marshal(v.Interface())
		if err != nil {
			return "", err
		}
		return string(nested), nil
	}
}
