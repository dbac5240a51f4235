package leafCodecs

import (
	"fmt"

	"github.com/multiversx/mx-chain-abi-go/abi"
	"github.com/multiversx/mx-chain-abi-go/abi/types"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("abi/leafCodecs")

const (
	minIntegerBits  = 8
	maxIntegerBits  = 256
	integerBitsStep = 8
	maxFixedBytes   = 32
)

// registry is an immutable lookup table from canonical base names to leaf codecs
type registry struct {
	codecs map[string]abi.LeafCodec
}

// NewRegistry builds the lookup table of every supported base kind. The returned registry is read-only and can be
// shared between codecs and goroutines.
func NewRegistry() *registry {
	codecs := make(map[string]abi.LeafCodec)
	for bits := minIntegerBits; bits <= maxIntegerBits; bits += integerBitsStep {
		codecs[types.NewBase(types.NameUint, bits).String()] = newUnsignedCodec(bits)
		codecs[types.NewBase(types.NameInt, bits).String()] = newSignedCodec(bits)
	}
	for size := 1; size <= maxFixedBytes; size++ {
		codecs[types.NewBase(types.NameBytes, size).String()] = newFixedBytesCodec(size)
	}

	codecs[types.NameAddress] = &addressCodec{}
	codecs[types.NameBool] = &boolCodec{}
	codecs[types.NameBytes] = &bytesCodec{}
	codecs[types.NameString] = &stringCodec{}

	log.Debug("leaf codec registry built", "num codecs", len(codecs))

	return &registry{
		codecs: codecs,
	}
}

// Get returns the leaf codec of the provided base kind
func (r *registry) Get(base *types.Base) (abi.LeafCodec, error) {
	if base == nil {
		return nil, abi.ErrNilDescriptor
	}

	leaf, ok := r.codecs[base.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", abi.ErrUnsupportedType, base.String())
	}

	return leaf, nil
}

// Len returns the number of registered base kinds
func (r *registry) Len() int {
	return len(r.codecs)
}

// IsInterfaceNil returns true if there is no value under the interface
func (r *registry) IsInterfaceNil() bool {
	return r == nil
}
