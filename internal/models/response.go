package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingStatus is returned when a response body carries no status code.
var ErrMissingStatus = errors.New("response has no status")

// Response is a canned API response: an HTTP status plus a free-form body.
// It marshals to a single flat JSON object with "status" alongside the body
// fields, matching the shape the drills assert against.
type Response struct {
	Status int
	Body   map[string]any
}

// Has reports whether the body carries key.
func (r Response) Has(key string) bool {
	_, ok := r.Body[key]
	return ok
}

// String returns the body value for key when it is a string.
func (r Response) String(key string) string {
	s, _ := r.Body[key].(string)
	return s
}

// Int returns the body value for key as an int. It accepts the integer
// types YAML decodes to and whole-number float64 values from JSON, and
// returns 0 for anything else.
func (r Response) Int(key string) int {
	v, ok := r.Body[key]
	if !ok {
		return 0
	}
	n, err := toInt(v)
	if err != nil {
		return 0
	}
	return n
}

// MarshalJSON flattens Status into the body object.
func (r Response) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Body)+1)
	for k, v := range r.Body {
		out[k] = v
	}
	out["status"] = r.Status
	return json.Marshal(out)
}

// UnmarshalJSON splits "status" out of a flat object.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	resp, err := ResponseFromMap(raw)
	if err != nil {
		return err
	}
	*r = resp
	return nil
}

// ResponseFromMap builds a Response from a decoded JSON or YAML object.
func ResponseFromMap(m map[string]any) (Response, error) {
	raw, ok := m["status"]
	if !ok {
		return Response{}, ErrMissingStatus
	}
	status, err := toInt(raw)
	if err != nil {
		return Response{}, fmt.Errorf("status: %w", err)
	}
	body := make(map[string]any, len(m))
	for k, v := range m {
		if k != "status" {
			body[k] = v
		}
	}
	return Response{Status: status, Body: body}, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("non-integer value %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
