/**
 * @description
 * This package provides the client for the remote job service, the source of
 * truth for jobs, applications, ratings, subscriptions and users. It owns the
 * wire-level concerns: the `{success, data, message}` response envelope, bearer
 * token propagation from the request context, per-call correlation ids, and the
 * legacy API's habit of shipping numeric fields as JSON strings — everything is
 * canonicalized to integers before it leaves this package.
 *
 * @dependencies
 * - bytes, context, encoding/json, fmt, net/http, strconv, strings, time: Standard Go libraries.
 * - github.com/google/uuid: For X-Request-ID correlation ids.
 */

package marketclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrRatingNotFound is returned by GetRating when no rating exists for the pair.
var ErrRatingNotFound = errors.New("rating not found")

// Client is a client for the remote job service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new job service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type tokenContextKey struct{}

// WithToken returns a context carrying the session's bearer token. The session
// collaborator owns token storage; this package only forwards it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext extracts the bearer token placed by WithToken, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}

// APIError is a service-level failure: a non-2xx response, or a 2xx envelope
// with success=false. Message carries the server's explanation when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("job service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("job service error (status %d)", e.StatusCode)
}

// NetworkError wraps a request that never completed (DNS, refused connection,
// timeout). Distinct from APIError so callers can tell "the service said no"
// from "the service was never reached".
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("job service unreachable during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// envelope is the remote service's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// FlexInt decodes a JSON number or a numeric string to an int64. Several legacy
// call sites transmit ids, salaries, ratings and token counts as strings.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Some call sites emit "5.0" style values.
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("cannot decode %q as integer: %w", s, err)
		}
		n = int64(fv)
	}
	*f = FlexInt(n)
	return nil
}

// Int64 returns the canonical integer value.
func (f FlexInt) Int64() int64 { return int64(f) }

// do executes one request against the remote service, decoding the envelope and
// unmarshalling its data into out when non-nil. The empty-data case (rating
// existence checks) is signalled by returning errNoData.
var errNoData = errors.New("envelope carried no data")

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	op := method + " " + path

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request for %s: %w", op, err)
		}
		body = bytes.NewBuffer(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	var env envelope
	if len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, &env); err != nil {
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				log.Printf("level=warn component=market_client op=%q status=%d msg=\"non-2xx response (unparsable body)\"", op, resp.StatusCode)
				return &APIError{StatusCode: resp.StatusCode}
			}
			return fmt.Errorf("failed to decode response for %s: %w", op, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("level=warn component=market_client op=%q status=%d message=%q", op, resp.StatusCode, env.Message)
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if !env.Success {
		log.Printf("level=warn component=market_client op=%q status=%d msg=\"envelope reported failure\" message=%q", op, resp.StatusCode, env.Message)
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return errNoData
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode data for %s: %w", op, err)
	}
	return nil
}
