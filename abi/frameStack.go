package abi

import "fmt"

// frameStack holds the base positions of the structures currently being decoded. Offsets read from a head are
// always resolved against the innermost base.
type frameStack struct {
	bases    []int
	maxDepth int
}

func newFrameStack(maxDepth int) *frameStack {
	return &frameStack{
		bases:    make([]int, 0, 8),
		maxDepth: maxDepth,
	}
}

func (fs *frameStack) push(base int) error {
	if len(fs.bases) >= fs.maxDepth {
		return fmt.Errorf("%w: maximum nesting depth of %d exceeded at position %d", ErrDecoding, fs.maxDepth, base)
	}

	fs.bases = append(fs.bases, base)
	log.Trace("frameStack.push", "base", base, "depth", len(fs.bases))

	return nil
}

func (fs *frameStack) pop() {
	if len(fs.bases) == 0 {
		return
	}

	fs.bases = fs.bases[:len(fs.bases)-1]
}

// base returns the start of the innermost frame, 0 when no frame is open
func (fs *frameStack) base() int {
	if len(fs.bases) == 0 {
		return 0
	}

	return fs.bases[len(fs.bases)-1]
}

func (fs *frameStack) depth() int {
	return len(fs.bases)
}
