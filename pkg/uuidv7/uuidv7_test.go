// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuidv7_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/pkg/uuidv7"
)

/*
TestNew checks the version and time ordering of generated IDs.
*/
func TestNew(t *testing.T) {
	first, err := uuid.Parse(uuidv7.New())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), first.Version())

	second, err := uuid.Parse(uuidv7.New())
	require.NoError(t, err)
	assert.LessOrEqual(t, first.String()[:13], second.String()[:13])
}
