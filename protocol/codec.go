package protocol

import (
	"encoding/json"
	"fmt"
)

type tagged struct {
	Type string `json:"type"`
}

// Peek extracts the type tag without decoding the full message. ok is false
// for non-JSON payloads and for objects with no type field; callers drop
// those silently.
func Peek(b []byte) (string, bool) {
	if len(b) == 0 {
		return "", false
	}
	var t tagged
	if err := json.Unmarshal(b, &t); err != nil {
		return "", false
	}
	if t.Type == "" {
		return "", false
	}
	return t.Type, true
}

// Encode marshals an outbound message. Message structs carry their own type
// tag in the Type field.
func Encode(msg any) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("trying to encode nil message")
	}
	return json.Marshal(msg)
}

// Decode unmarshals an inbound message into the given payload type.
func Decode[T any](b []byte) (T, error) {
	var out T
	if len(b) == 0 {
		return out, fmt.Errorf("empty message")
	}
	err := json.Unmarshal(b, &out)
	return out, err
}
