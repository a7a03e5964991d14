// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Nullable distinguishes an absent JSON field from an explicit null and from
// a value:
//
//	{}                 -> Set == false
//	{"dueDate": null}  -> Set == true, Null == true
//	{"dueDate": "..."} -> Set == true, Value holds the decoded value
type Nullable[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// NullableOf returns a Nullable holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Set: true}
}

// NullValue returns an explicitly null Nullable.
func NullValue[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// HasValue reports whether a non-null value was provided.
func (n Nullable[T]) HasValue() bool {
	return n.Set && !n.Null
}

// IsZero lets the omitzero tag option drop absent fields.
func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Null = true
		return nil
	}

	return json.Unmarshal(b, &n.Value)
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}

	return json.Marshal(n.Value)
}
