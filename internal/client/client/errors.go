package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/geeksadmin/internal/common"
)

// StatusError is a non-2xx response. It unwraps to ErrUnauthorized,
// ErrUnavailable or ErrRequestFailed depending on Code.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusUnauthorized, e.Code == http.StatusForbidden:
		return common.ErrUnauthorized
	case e.Code >= 500:
		return common.ErrUnavailable
	default:
		return common.ErrRequestFailed
	}
}

func newStatusError(code int, body []byte) *StatusError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	if msg = strings.TrimSpace(msg); msg == "" {
		msg = strings.ToLower(http.StatusText(code))
	}
	return &StatusError{Code: code, Message: msg}
}
