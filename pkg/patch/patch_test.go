// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookstore/pkg/patch"
)

/*
TestValue keeps the stored value unless one was sent.
*/
func TestValue(t *testing.T) {
	assert.Equal(t, "Le Guin", patch.Value(nil, "Le Guin"))
	assert.Equal(t, "", patch.Value(patch.Set(""), "Le Guin"))
}

/*
TestOptional never clears a nullable column by omission.
*/
func TestOptional(t *testing.T) {
	stored := patch.Set(1968)

	assert.Same(t, stored, patch.Optional(nil, stored))
	assert.Nil(t, patch.Optional[int](nil, nil))

	sent := patch.Set(1969)
	assert.Same(t, sent, patch.Optional(sent, stored))
}
