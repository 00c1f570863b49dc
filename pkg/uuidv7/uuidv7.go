// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// The API stamps every request with one so log lines sort by arrival time.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// If the time-ordered generator fails it falls back to a random UUIDv4, so
// callers always receive a usable identifier.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
