// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm canonicalizes user-supplied text before it is validated
// and stored.
//
// # Usage
//
// Names and titles typed on different platforms arrive in different Unicode
// forms ("é" precomposed or as e + combining acute). Normalizing to NFC keeps
// length limits and equality checks stable.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Line normalizes a single-line value such as a name, title or ISBN.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC.
// 2. Turns tabs and line breaks into spaces.
// 3. Drops the remaining control characters.
// 4. Collapses runs of whitespace into one space and trims both ends.
func Line(s string) string {
	t := transform.Chain(
		norm.NFC,
		runes.Map(spaceOut),
		runes.Remove(runes.Predicate(unicode.IsControl)),
	)
	result, _, _ := transform.String(t, s)

	return strings.Join(strings.Fields(result), " ")
}

// Text normalizes a free-form, possibly multi-line value such as a biography.
// Line breaks and tabs are kept; other control characters are dropped.
func Text(s string) string {
	t := transform.Chain(norm.NFC, runes.Remove(runes.Predicate(isStrayControl)))
	result, _, _ := transform.String(t, s)

	return strings.TrimSpace(result)
}

// LinePtr applies [Line] to an optional value.
func LinePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Line(*s)
	return &v
}

// TextPtr applies [Text] to an optional value.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	return &v
}

// isStrayControl reports whether r is a control character other than
// newline, carriage return or tab.
func isStrayControl(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	}
	return unicode.IsControl(r)
}

// spaceOut maps whitespace control characters to a plain space.
func spaceOut(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
}
