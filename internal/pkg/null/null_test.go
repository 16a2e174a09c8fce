// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package null_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"mediatype/internal/pkg/null"
)

func TestNull_Ptr(t *testing.T) {
	t.Parallel()

	n := null.Null[int]{Set: true, Value: 1}
	require.Equal(t, 1, *n.Ptr())

	n = null.Null[int]{Set: false, Value: 1}
	require.Nil(t, n.Ptr())
}

func TestNull_Default(t *testing.T) {
	t.Parallel()

	n := null.Null[int]{Set: true, Value: 1}
	require.Equal(t, 1, n.Default(10))

	n = null.Null[int]{Set: false, Value: 1}
	require.Equal(t, 10, n.Default(10))
}

func TestNull_Interface(t *testing.T) {
	t.Parallel()

	n := null.Null[int]{Set: true, Value: 1}
	require.EqualValues(t, 1, n.Interface())

	n = null.Null[int]{Set: false, Value: 1}
	require.EqualValues(t, nil, n.Interface())
}

func TestNull_New(t *testing.T) {
	t.Parallel()

	n := null.New(uint16(9))
	require.True(t, n.Set)
	require.EqualValues(t, 9, n.Value)

	v := 3
	require.True(t, null.NewFromPtr(&v).Set)
	require.False(t, null.NewFromPtr[int](nil).Set)
}

func TestNull_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var n null.Null[int]
	require.NoError(t, json.Unmarshal([]byte("10"), &n))
	require.EqualValues(t, 10, n.Value)

	n = null.Null[int]{}
	require.NoError(t, json.Unmarshal([]byte(" null "), &n))
	require.False(t, n.Set)
}

func TestNull_MarshalJSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(null.New(10))
	require.NoError(t, err)
	require.Equal(t, "10", string(raw))

	raw, err = json.Marshal(null.Null[int]{})
	require.NoError(t, err)
	require.Equal(t, "null", string(raw))
}
