package tensor

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// OffsetFunc maps a logical (outer, channel, inner) position to a physical index.
type OffsetFunc func(outer, channel, inner int) int

// Layout describes where each logical element of a tensor lives in its backing slice.
//
// Implementations must be safe for concurrent use: kernels call Offset from
// several goroutines at once.
type Layout interface {
	// Extents returns the logical (outer, channels, inner) triple.
	Extents() Extents
	// Offset returns the physical index of (outer, channel, inner).
	Offset(outer, channel, inner int) int
	// Span returns the minimum length of a backing slice.
	Span() int
	// Contiguous reports whether Offset is the row-major identity
	// (outer*channels + channel)*inner + inner_index.
	Contiguous() bool
}

// Contiguous is the plain row-major layout of an (outer, channels, inner) tensor.
type Contiguous struct {
	ext Extents
}

// NewContiguous creates a row-major layout.
func NewContiguous(ext Extents) (*Contiguous, error) {
	if err := ext.Validate(); err != nil {
		return nil, err
	}
	return &Contiguous{ext: ext}, nil
}

// Extents returns the logical extents.
func (l *Contiguous) Extents() Extents { return l.ext }

// Offset returns (outer*channels + channel)*inner + in.
func (l *Contiguous) Offset(outer, channel, in int) int {
	return (outer*l.ext.Channels+channel)*l.ext.Inner + in
}

// Span returns outer*channels*inner.
func (l *Contiguous) Span() int { return l.ext.NumElements() }

// Contiguous always returns true.
func (l *Contiguous) Contiguous() bool { return true }

// Strided addresses an arbitrary-rank tensor through explicit per-dimension strides,
// e.g. a transposed or sliced view. The dimensions before the axis are flattened
// into outer and those after it into inner, both in row-major order.
type Strided struct {
	ext           Extents
	outerDims     []int
	outerStrides  []int
	innerDims     []int
	innerStrides  []int
	channelStride int
	span          int
	rowMajor      bool
}

// NewStrided creates a strided layout for shape with the given element strides,
// normalized around axis (negative axis counts from the end). Strides that map
// two logical positions onto one element are rejected with ErrInvalidLayout.
func NewStrided(shape Shape, strides []int, axis int) (*Strided, error) {
	ext, err := shape.Extents(axis)
	if err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("%w: %d strides for rank %d", ErrInvalidLayout, len(strides), len(shape))
	}
	axis, _ = shape.NormalizeAxis(axis)

	span := 1
	for i, st := range strides {
		if st < 0 {
			return nil, fmt.Errorf("%w: negative stride %d at dimension %d", ErrInvalidLayout, st, i)
		}
		span += (shape[i] - 1) * st
	}
	if overlapping(shape, strides) {
		return nil, fmt.Errorf("%w: strides %v alias elements of shape %v", ErrInvalidLayout, strides, shape)
	}

	rowMajor := true
	for i, st := range shape.ComputeStrides() {
		if strides[i] != st && shape[i] != 1 {
			rowMajor = false
			break
		}
	}

	return &Strided{
		ext:           ext,
		outerDims:     shape[:axis].Clone(),
		outerStrides:  append([]int(nil), strides[:axis]...),
		innerDims:     shape[axis+1:].Clone(),
		innerStrides:  append([]int(nil), strides[axis+1:]...),
		channelStride: strides[axis],
		span:          span,
		rowMajor:      rowMajor,
	}, nil
}

// Extents returns the logical extents.
func (l *Strided) Extents() Extents { return l.ext }

// Offset decomposes outer and inner into per-dimension coordinates.
func (l *Strided) Offset(outer, channel, in int) int {
	return decompose(outer, l.outerDims, l.outerStrides) +
		channel*l.channelStride +
		decompose(in, l.innerDims, l.innerStrides)
}

// Span returns the index one past the furthest addressable element.
func (l *Strided) Span() int { return l.span }

// Contiguous reports whether the strides are the row-major strides of the shape.
func (l *Strided) Contiguous() bool { return l.rowMajor }

// overlapping reports whether two logical positions can share a physical index.
// Dimensions of extent 1 never move the offset and are ignored. The rest, taken
// in increasing stride order, must each step past everything the smaller ones
// can reach.
func overlapping(shape Shape, strides []int) bool {
	dims := lo.Filter(lo.Range(len(shape)), func(i, _ int) bool { return shape[i] > 1 })
	slices.SortFunc(dims, func(a, b int) int { return cmp.Compare(strides[a], strides[b]) })

	reach := 0
	for _, i := range dims {
		if strides[i] <= reach {
			return true
		}
		reach += strides[i] * (shape[i] - 1)
	}
	return false
}

// decompose turns a flat row-major index over dims into a strided offset.
func decompose(flat int, dims, strides []int) int {
	off := 0
	for i := len(dims) - 1; i >= 0; i-- {
		coord := flat % dims[i]
		flat /= dims[i]
		off += coord * strides[i]
	}
	return off
}

// Blocked is a channel-blocked layout: channels are grouped into blocks of
// Block elements that sit innermost in memory, and the last block is zero-padded
// up to the block size.
//
//	offset = ((outer*ceil(C/Block) + c/Block)*inner + in)*Block + c%Block
type Blocked struct {
	ext    Extents
	block  int
	blocks int
}

// NewBlocked creates a channel-blocked layout with the given block size.
func NewBlocked(ext Extents, block int) (*Blocked, error) {
	if err := ext.Validate(); err != nil {
		return nil, err
	}
	if block < 1 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidLayout, block)
	}
	return &Blocked{
		ext:    ext,
		block:  block,
		blocks: (ext.Channels + block - 1) / block,
	}, nil
}

// Extents returns the logical extents.
func (l *Blocked) Extents() Extents { return l.ext }

// Block returns the channel block size.
func (l *Blocked) Block() int { return l.block }

// Offset returns the blocked physical index.
func (l *Blocked) Offset(outer, channel, in int) int {
	return ((outer*l.blocks+channel/l.block)*l.ext.Inner+in)*l.block + channel%l.block
}

// Span includes the channel padding of the last block.
func (l *Blocked) Span() int {
	return l.ext.Outer * l.blocks * l.ext.Inner * l.block
}

// Contiguous is true only for a block size of one.
func (l *Blocked) Contiguous() bool { return l.block == 1 }

// FuncLayout wraps an externally supplied offset function.
type FuncLayout struct {
	ext    Extents
	offset OffsetFunc
	span   int
}

// NewFuncLayout creates a layout from an arbitrary offset function. span is the
// minimum backing slice length the function can address.
func NewFuncLayout(ext Extents, offset OffsetFunc, span int) (*FuncLayout, error) {
	if err := ext.Validate(); err != nil {
		return nil, err
	}
	if offset == nil {
		return nil, fmt.Errorf("%w: nil offset function", ErrInvalidLayout)
	}
	if span < 0 {
		return nil, fmt.Errorf("%w: negative span %d", ErrInvalidLayout, span)
	}
	return &FuncLayout{ext: ext, offset: offset, span: span}, nil
}

// Extents returns the logical extents.
func (l *FuncLayout) Extents() Extents { return l.ext }

// Offset calls the wrapped function.
func (l *FuncLayout) Offset(outer, channel, in int) int { return l.offset(outer, channel, in) }

// Span returns the span given at construction.
func (l *FuncLayout) Span() int { return l.span }

// Contiguous is always false: nothing is assumed about the wrapped function.
func (l *FuncLayout) Contiguous() bool { return false }
