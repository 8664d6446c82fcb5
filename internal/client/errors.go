package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// APIError is a non-2xx backend response. It unwraps to one of the
// sentinels above when the status or message identifies a known case,
// so callers can branch with errors.Is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	if isStockMessage(e.Message) {
		return ErrInsufficientStock
	}
	return nil
}

// The backend reports stock failures in prose, in both an English and
// a French spelling.
func isStockMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "stock") || strings.Contains(lower, "disponible")
}

func (c *Client) apiError(resp *resty.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(resp.Body(), &body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = resp.Status()
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		c.resetSession()
	}

	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}
