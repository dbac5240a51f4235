package leafCodecs

import (
	"testing"

	"github.com/multiversx/mx-chain-abi-go/abi"
	"github.com/multiversx/mx-chain-abi-go/abi/types"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.False(t, check.IfNil(r))
	// 32 unsigned + 32 signed + 32 fixed bytes + address, bool, bytes, string
	assert.Equal(t, 100, r.Len())
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	t.Run("nil base should error", func(t *testing.T) {
		t.Parallel()

		leaf, err := r.Get(nil)
		assert.ErrorIs(t, err, abi.ErrNilDescriptor)
		assert.Nil(t, leaf)
	})
	t.Run("known kinds should work", func(t *testing.T) {
		t.Parallel()

		for _, base := range []*types.Base{
			types.NewBase(types.NameUint, 8),
			types.NewBase(types.NameUint, 256),
			types.NewBase(types.NameInt, 128),
			types.NewBase(types.NameBytes, 1),
			types.NewBase(types.NameBytes, 32),
			types.NewBase(types.NameBytes, 0),
			types.NewBase(types.NameAddress, 0),
			types.NewBase(types.NameBool, 0),
			types.NewBase(types.NameString, 0),
		} {
			leaf, err := r.Get(base)
			assert.Nil(t, err, base.String())
			assert.False(t, check.IfNil(leaf), base.String())
		}
	})
	t.Run("unknown kinds should error", func(t *testing.T) {
		t.Parallel()

		for _, base := range []*types.Base{
			types.NewBase(types.NameUint, 7),
			types.NewBase(types.NameUint, 264),
			types.NewBase(types.NameBytes, 33),
			types.NewBase("fixed", 128),
			types.NewBase("function", 0),
		} {
			leaf, err := r.Get(base)
			assert.ErrorIs(t, err, abi.ErrUnsupportedType, base.String())
			assert.Nil(t, leaf)
		}
	})
}
