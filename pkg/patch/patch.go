// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package patch merges partial update requests onto stored entities.

Update request DTOs carry every field as a pointer: nil means "not sent" and
keeps the stored value, anything else replaces it.
*/
package patch

// Set marks a field as sent with value v.
func Set[T any](v T) *T {
	return &v
}

// Value returns the sent value, or current when the field was omitted.
func Value[T any](sent *T, current T) T {
	if sent == nil {
		return current
	}
	return *sent
}

// Optional is [Value] for nullable columns: current stays as is, nil included,
// unless a value was sent.
func Optional[T any](sent, current *T) *T {
	if sent == nil {
		return current
	}
	return sent
}
