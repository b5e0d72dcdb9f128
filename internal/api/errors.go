package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

// ErrNotFound matches a *StatusError carrying 404.
var ErrNotFound = errors.New("not found")

const maxErrorBody = 512

// StatusError is a non-2xx response from the API.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func newStatusError(resp *resty.Response) *StatusError {
	body := resp.String()
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	e := &StatusError{StatusCode: resp.StatusCode(), Body: body}
	if resp.Request != nil {
		e.Method = resp.Request.Method
		if raw := resp.Request.RawRequest; raw != nil {
			e.Path = raw.URL.Path
		}
	}
	return e
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if detail := e.Detail(); detail != "" {
		msg += ": " + detail
	}
	return msg
}

// Is lets errors.Is(err, ErrNotFound) match 404s.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Detail extracts the server's message from a JSON error body, falling back
// to the raw body.
func (e *StatusError) Detail() string {
	var payload struct {
		Detail  any    `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := sonic.UnmarshalString(e.Body, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Error != "":
			return payload.Error
		case payload.Detail != nil:
			if s, ok := payload.Detail.(string); ok {
				return s
			}
			return fmt.Sprint(payload.Detail)
		}
	}
	return e.Body
}

// IsUnauthorized reports whether err is a 401 from the API, meaning the
// session could not be renewed.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized
}
