package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/multiversx/mx-chain-abi-go/abi"
	"github.com/multiversx/mx-chain-abi-go/abi/types"
)

const (
	defaultIntegerBits = 256
	maxIntegerBits     = 256
	maxFixedBytes      = 32
)

// ArgsTypeParser holds the arguments needed to create a new type parser
type ArgsTypeParser struct {
	MaxNestingDepth int
	MaxArrayLength  int
}

// typeParser turns human-readable type strings such as "(uint256,string)[]" into type descriptors
type typeParser struct {
	maxNestingDepth int
	maxArrayLength  int
	maxHeadSize     int
}

// NewTypeParser creates a new type parser
func NewTypeParser(args ArgsTypeParser) (*typeParser, error) {
	if args.MaxNestingDepth < 1 {
		return nil, fmt.Errorf("%w: %d", abi.ErrInvalidMaxNestingDepth, args.MaxNestingDepth)
	}
	if args.MaxArrayLength < 1 {
		return nil, fmt.Errorf("%w: %d", abi.ErrInvalidMaxArrayLength, args.MaxArrayLength)
	}

	return &typeParser{
		maxNestingDepth: args.MaxNestingDepth,
		maxArrayLength:  args.MaxArrayLength,
		maxHeadSize:     computeMaxHeadSize(args.MaxArrayLength),
	}, nil
}

// computeMaxHeadSize bounds the head of any frame to MaxArrayLength words
func computeMaxHeadSize(maxArrayLength int) int {
	maxWords := (types.MaxHeadSize - 1) / types.WordSize
	if maxArrayLength < maxWords {
		maxWords = maxArrayLength
	}

	return maxWords * types.WordSize
}

// Parse returns the descriptor of the provided type string
func (tp *typeParser) Parse(typeString string) (types.Descriptor, error) {
	state := &parseState{
		input:  strings.TrimSpace(typeString),
		parser: tp,
	}

	descriptor, err := state.parseType(1)
	if err != nil {
		return nil, err
	}
	if !state.done() {
		return nil, state.errorf("unexpected character %q", state.peek())
	}

	return descriptor, nil
}

// ParseAll parses every type string, in order
func (tp *typeParser) ParseAll(typeStrings []string) ([]types.Descriptor, error) {
	descriptors := make([]types.Descriptor, 0, len(typeStrings))
	for i, typeString := range typeStrings {
		descriptor, err := tp.Parse(typeString)
		if err != nil {
			return nil, fmt.Errorf("type %d: %w", i, err)
		}

		descriptors = append(descriptors, descriptor)
	}

	headLength := types.HeadLength(descriptors)
	if headLength > tp.maxHeadSize {
		return nil, fmt.Errorf("%w: the arguments head of %d bytes exceeds the maximum of %d",
			abi.ErrParsing, headLength, tp.maxHeadSize)
	}

	return descriptors, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (tp *typeParser) IsInterfaceNil() bool {
	return tp == nil
}

type parseState struct {
	input  string
	pos    int
	parser *typeParser
}

func (ps *parseState) parseType(depth int) (types.Descriptor, error) {
	if depth > ps.parser.maxNestingDepth {
		return nil, ps.errorf("maximum nesting depth of %d exceeded", ps.parser.maxNestingDepth)
	}

	var descriptor types.Descriptor
	var err error
	if ps.peek() == '(' {
		descriptor, err = ps.parseTuple(depth)
	} else {
		descriptor, err = ps.parseBase()
	}
	if err != nil {
		return nil, err
	}

	for ps.peek() == '[' {
		depth++
		if depth > ps.parser.maxNestingDepth {
			return nil, ps.errorf("maximum nesting depth of %d exceeded", ps.parser.maxNestingDepth)
		}

		descriptor, err = ps.parseArraySuffix(descriptor)
		if err != nil {
			return nil, err
		}
	}

	return descriptor, nil
}

func (ps *parseState) parseTuple(depth int) (types.Descriptor, error) {
	ps.pos++

	elems := make([]types.Descriptor, 0)
	if ps.peek() == ')' {
		ps.pos++
		return types.NewTuple(elems...), nil
	}

	for {
		elem, err := ps.parseType(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		switch ps.peek() {
		case ',':
			ps.pos++
		case ')':
			ps.pos++
			err = ps.checkHeadLength(types.HeadLength(elems))
			if err != nil {
				return nil, err
			}

			return types.NewTuple(elems...), nil
		default:
			return nil, ps.errorf("expected ',' or ')'")
		}
	}
}

func (ps *parseState) parseArraySuffix(elem types.Descriptor) (types.Descriptor, error) {
	ps.pos++
	start := ps.pos
	for isDigit(ps.peek()) {
		ps.pos++
	}
	digits := ps.input[start:ps.pos]

	if ps.peek() != ']' {
		return nil, ps.errorf("expected ']'")
	}
	ps.pos++

	if len(digits) == 0 {
		return types.NewDynamicArray(elem), nil
	}

	length, err := strconv.Atoi(digits)
	if err != nil || length > ps.parser.maxArrayLength {
		return nil, ps.errorf("array length %s exceeds the maximum of %d", digits, ps.parser.maxArrayLength)
	}

	err = ps.checkHeadLength(types.RepeatedHeadLength(elem, length))
	if err != nil {
		return nil, err
	}

	return types.NewFixedArray(elem, length), nil
}

// checkHeadLength rejects the structures whose head, inlined or in their own frame, exceeds the maximum head size
func (ps *parseState) checkHeadLength(headLength int) error {
	if headLength > ps.parser.maxHeadSize {
		return ps.errorf("head size of %d bytes exceeds the maximum of %d", headLength, ps.parser.maxHeadSize)
	}

	return nil
}

func (ps *parseState) parseBase() (types.Descriptor, error) {
	start := ps.pos
	for isLower(ps.peek()) {
		ps.pos++
	}
	name := ps.input[start:ps.pos]
	if len(name) == 0 {
		return nil, ps.errorf("expected a type name")
	}

	digitsStart := ps.pos
	for isDigit(ps.peek()) {
		ps.pos++
	}
	digits := ps.input[digitsStart:ps.pos]

	width := 0
	if len(digits) > 0 {
		if digits[0] == '0' {
			return nil, ps.errorf("invalid width %s for %s", digits, name)
		}

		var err error
		width, err = strconv.Atoi(digits)
		if err != nil {
			return nil, ps.errorf("invalid width %s for %s", digits, name)
		}
	}

	err := ps.checkBase(name, width, len(digits) > 0)
	if err != nil {
		return nil, err
	}

	if (name == types.NameUint || name == types.NameInt) && width == 0 {
		width = defaultIntegerBits
	}

	return types.NewBase(name, width), nil
}

// checkBase validates the widths of the known kinds. Unknown names are let through and rejected later by the
// leaf codec registry.
func (ps *parseState) checkBase(name string, width int, hasWidth bool) error {
	switch name {
	case types.NameUint, types.NameInt:
		if hasWidth && (width%8 != 0 || width > maxIntegerBits) {
			return ps.errorf("invalid width %d for %s", width, name)
		}
	case types.NameBytes:
		if hasWidth && width > maxFixedBytes {
			return ps.errorf("invalid width %d for %s", width, name)
		}
	case types.NameAddress, types.NameBool, types.NameString:
		if hasWidth {
			return ps.errorf("%s does not take a width", name)
		}
	}

	return nil
}

func (ps *parseState) peek() byte {
	if ps.done() {
		return 0
	}

	return ps.input[ps.pos]
}

func (ps *parseState) done() bool {
	return ps.pos >= len(ps.input)
}

func (ps *parseState) errorf(format string, args ...any) error {
	return fmt.Errorf("%w %q at position %d: %s", abi.ErrParsing, ps.input, ps.pos, fmt.Sprintf(format, args...))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
