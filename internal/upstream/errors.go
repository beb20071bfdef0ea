package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthorized maps a 401 from the upstream API: the forwarded bearer
// token was rejected.
var ErrUnauthorized = errors.New("upstream: unauthorized")

// ValidationError maps a 400 from the upstream API. Messages are extracted
// from the response body's "message" field, which may be a string or an
// array of strings.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "upstream: validation failed"
	}
	return "upstream: " + strings.Join(e.Messages, "; ")
}

// RequestError maps any other non-2xx status or a 5xx failure.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("upstream: %s (status %d)", e.Message, e.Status)
}

// messageText tolerates the upstream's two "message" encodings.
type messageText []string

func (m *messageText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = []string{s}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*m = arr
		return nil
	}
	// Unknown shape — leave empty, callers fall back to a generic message.
	return nil
}

type errorBody struct {
	Message messageText `json:"message"`
}

// parseMessage extracts the human-readable message(s) from an error body.
func parseMessage(data []byte) []string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil
	}
	return body.Message
}
