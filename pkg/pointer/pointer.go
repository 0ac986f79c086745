// Copyright (c) 2026 Manara. All rights reserved.

// Package pointer holds small generic helpers for optional values.
//
// Partial-update payloads model "field not sent" as a nil pointer, so the
// handlers and services constantly move between values and pointers. These
// helpers keep that plumbing out of the application logic.
package pointer

// To returns a pointer to value. Handy for literals in struct fields that
// distinguish present from absent.
func To[T any](value T) *T {
	return &value
}

// Val dereferences ptr, substituting the type's zero value when ptr is nil.
func Val[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

// Fallback dereferences ptr, substituting fallback when ptr is nil. It is the
// merge primitive for partial updates: the stored value survives unless the
// caller sent a replacement.
func Fallback[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
