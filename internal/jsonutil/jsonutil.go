// Package jsonutil provides shared utilities for JSON parsing patterns:
// error handling and defaulting of optional collections.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// NonNil returns s, or an empty non-nil slice when s is nil.
// Absent or null JSON arrays decode to nil; callers that range, index or
// re-encode the result want an empty collection instead.
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// FirstNonZero returns v unless it is the zero value, in which case it returns def.
// Mirrors the `value || default` idiom used by JSON producers for optional fields.
func FirstNonZero[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
