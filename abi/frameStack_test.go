package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStack(t *testing.T) {
	t.Parallel()

	fs := newFrameStack(2)
	assert.Equal(t, 0, fs.base())
	assert.Equal(t, 0, fs.depth())

	require.Nil(t, fs.push(64))
	require.Nil(t, fs.push(128))
	assert.Equal(t, 128, fs.base())
	assert.Equal(t, 2, fs.depth())

	err := fs.push(256)
	assert.ErrorIs(t, err, ErrDecoding)
	assert.Equal(t, 2, fs.depth())

	fs.pop()
	assert.Equal(t, 64, fs.base())
	fs.pop()
	fs.pop()
	assert.Equal(t, 0, fs.base())
	assert.Equal(t, 0, fs.depth())
}

func TestDecodeWordAsInt(t *testing.T) {
	t.Parallel()

	value, err := decodeWordAsInt(encodeWord(1234))
	require.Nil(t, err)
	assert.Equal(t, 1234, value)

	word := encodeWord(1)
	word[0] = 1
	_, err = decodeWordAsInt(word)
	assert.ErrorIs(t, err, ErrDecoding)

	word = encodeWord(1 << 63)
	_, err = decodeWordAsInt(word)
	assert.ErrorIs(t, err, ErrDecoding)
}

func TestToSequence(t *testing.T) {
	t.Parallel()

	items, err := toSequence([]string{"a", "b"}, 2)
	require.Nil(t, err)
	assert.Equal(t, []any{"a", "b"}, items)

	items, err = toSequence([3]int{1, 2, 3}, -1)
	require.Nil(t, err)
	assert.Equal(t, []any{1, 2, 3}, items)

	_, err = toSequence([]any{1}, 2)
	assert.ErrorIs(t, err, ErrEncoding)

	_, err = toSequence("ab", -1)
	assert.ErrorIs(t, err, ErrEncoding)

	_, err = toSequence(nil, -1)
	assert.ErrorIs(t, err, ErrEncoding)
}
