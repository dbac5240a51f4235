package types

import (
	"math"
	"strconv"
	"strings"
)

// WordSize is the width, in bytes, of every head slot and every scalar encoding
const WordSize = 32

// MaxHeadSize is the largest head size a descriptor reports. Larger static sizes saturate to it.
const MaxHeadSize = math.MaxInt32

const (
	// NameUint is the base name of the unsigned integer kinds
	NameUint = "uint"
	// NameInt is the base name of the signed integer kinds
	NameInt = "int"
	// NameAddress is the base name of the address kind
	NameAddress = "address"
	// NameBool is the base name of the boolean kind
	NameBool = "bool"
	// NameBytes is the base name of both the fixed-size (width > 0) and the dynamic (width == 0) byte kinds
	NameBytes = "bytes"
	// NameString is the base name of the string kind
	NameString = "string"
)

// Descriptor is the structural representation of an encodable type. The set of implementations is closed:
// *Base, *FixedArray, *DynamicArray and *Tuple.
type Descriptor interface {
	// String returns the canonical type string
	String() string
	// IsDynamic returns true if the encoded size depends on the value
	IsDynamic() bool
	// HeadSize returns the number of bytes the descriptor occupies in the head of its enclosing frame
	HeadSize() int
	// Depth returns the structural nesting depth, 1 for base kinds
	Depth() int
	isDescriptor()
}

// Base describes a primitive kind such as uint256, bytes32 or string
type Base struct {
	name      string
	width     int
	canonical string
	dynamic   bool
}

// NewBase creates a new base descriptor. The width holds the bit size for integers and the byte size for
// fixed-size byte blocks, otherwise it should be 0.
func NewBase(name string, width int) *Base {
	canonical := name
	if width > 0 {
		canonical += strconv.Itoa(width)
	}

	return &Base{
		name:      name,
		width:     width,
		canonical: canonical,
		dynamic:   name == NameString || (name == NameBytes && width == 0),
	}
}

// Name returns the base name, without the width suffix
func (b *Base) Name() string {
	return b.name
}

// Width returns the width suffix of the base kind
func (b *Base) Width() int {
	return b.width
}

// String returns the canonical type string
func (b *Base) String() string {
	return b.canonical
}

// IsDynamic returns true for dynamic bytes and strings
func (b *Base) IsDynamic() bool {
	return b.dynamic
}

// HeadSize returns the size of one word
func (b *Base) HeadSize() int {
	return WordSize
}

// Depth returns 1
func (b *Base) Depth() int {
	return 1
}

func (b *Base) isDescriptor() {}

// FixedArray describes T[k]
type FixedArray struct {
	elem      Descriptor
	length    int
	canonical string
	dynamic   bool
	headSize  int
	depth     int
}

// NewFixedArray creates a new fixed-length array descriptor
func NewFixedArray(elem Descriptor, length int) *FixedArray {
	fa := &FixedArray{
		elem:      elem,
		length:    length,
		canonical: elem.String() + "[" + strconv.Itoa(length) + "]",
		dynamic:   elem.IsDynamic() && length > 0,
		depth:     elem.Depth() + 1,
	}

	fa.headSize = WordSize
	if !fa.dynamic {
		fa.headSize = RepeatedHeadLength(elem, length)
	}

	return fa
}

// Elem returns the element descriptor
func (fa *FixedArray) Elem() Descriptor {
	return fa.elem
}

// Length returns the declared number of elements
func (fa *FixedArray) Length() int {
	return fa.length
}

// String returns the canonical type string
func (fa *FixedArray) String() string {
	return fa.canonical
}

// IsDynamic returns true if the element type is dynamic
func (fa *FixedArray) IsDynamic() bool {
	return fa.dynamic
}

// HeadSize returns the inline size for static arrays, one word otherwise
func (fa *FixedArray) HeadSize() int {
	return fa.headSize
}

// Depth returns the nesting depth
func (fa *FixedArray) Depth() int {
	return fa.depth
}

func (fa *FixedArray) isDescriptor() {}

// DynamicArray describes T[]
type DynamicArray struct {
	elem      Descriptor
	canonical string
	depth     int
}

// NewDynamicArray creates a new variable-length array descriptor
func NewDynamicArray(elem Descriptor) *DynamicArray {
	return &DynamicArray{
		elem:      elem,
		canonical: elem.String() + "[]",
		depth:     elem.Depth() + 1,
	}
}

// Elem returns the element descriptor
func (da *DynamicArray) Elem() Descriptor {
	return da.elem
}

// String returns the canonical type string
func (da *DynamicArray) String() string {
	return da.canonical
}

// IsDynamic returns true
func (da *DynamicArray) IsDynamic() bool {
	return true
}

// HeadSize returns the size of one word
func (da *DynamicArray) HeadSize() int {
	return WordSize
}

// Depth returns the nesting depth
func (da *DynamicArray) Depth() int {
	return da.depth
}

func (da *DynamicArray) isDescriptor() {}

// Tuple describes (T1,T2,...)
type Tuple struct {
	elems     []Descriptor
	canonical string
	dynamic   bool
	headSize  int
	depth     int
}

// NewTuple creates a new tuple descriptor. The provided slice is copied.
func NewTuple(elems ...Descriptor) *Tuple {
	t := &Tuple{
		elems: make([]Descriptor, len(elems)),
	}
	copy(t.elems, elems)

	names := make([]string, 0, len(elems))
	maxDepth := 0
	for _, elem := range elems {
		names = append(names, elem.String())
		t.dynamic = t.dynamic || elem.IsDynamic()
		if elem.Depth() > maxDepth {
			maxDepth = elem.Depth()
		}
	}

	t.canonical = "(" + strings.Join(names, ",") + ")"
	t.depth = maxDepth + 1
	t.headSize = WordSize
	if !t.dynamic {
		t.headSize = HeadLength(elems)
	}

	return t
}

// Len returns the number of components
func (t *Tuple) Len() int {
	return len(t.elems)
}

// Elem returns the component at the provided index
func (t *Tuple) Elem(index int) Descriptor {
	return t.elems[index]
}

// Elems returns a copy of the components
func (t *Tuple) Elems() []Descriptor {
	elems := make([]Descriptor, len(t.elems))
	copy(elems, t.elems)

	return elems
}

// String returns the canonical type string
func (t *Tuple) String() string {
	return t.canonical
}

// IsDynamic returns true if any component is dynamic
func (t *Tuple) IsDynamic() bool {
	return t.dynamic
}

// HeadSize returns the inline size for static tuples, one word otherwise
func (t *Tuple) HeadSize() int {
	return t.headSize
}

// Depth returns the nesting depth
func (t *Tuple) Depth() int {
	return t.depth
}

func (t *Tuple) isDescriptor() {}

// HeadLength returns the head size of a frame holding the provided elements, saturated to MaxHeadSize
func HeadLength(elems []Descriptor) int {
	total := 0
	for _, elem := range elems {
		size := elem.HeadSize()
		if size > MaxHeadSize-total {
			return MaxHeadSize
		}
		total += size
	}

	return total
}

// RepeatedHeadLength returns the head size of a frame holding count elements of the same descriptor, saturated
// to MaxHeadSize
func RepeatedHeadLength(elem Descriptor, count int) int {
	size := elem.HeadSize()
	if count <= 0 || size <= 0 {
		return 0
	}
	if count > MaxHeadSize/size {
		return MaxHeadSize
	}

	return count * size
}
