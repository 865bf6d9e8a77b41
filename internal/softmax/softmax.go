// Package softmax implements the softmax forward and backward kernels.
//
// A descriptor (Forward or Backward) is created once per tensor layout. Creation
// validates the layout, resolves the math backend and picks the execution path:
//
//   - dense: the layout is row-major and nothing trails the softmax axis, so each
//     outer index is one contiguous row;
//   - generic: any other layout, addressed element by element through
//     tensor.Layout.Offset.
//
// Execute borrows the caller's buffers for one call and keeps no reference to
// them afterwards. Descriptors hold no mutable state and may be shared between
// goroutines, as long as concurrent calls use distinct output and scratch buffers.
package softmax

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/softmax/internal/backend"
	"github.com/born-ml/softmax/internal/parallel"
	"github.com/born-ml/softmax/internal/tensor"
)

// Forward is a configured softmax forward primitive.
type Forward[T tensor.Float] struct {
	layout tensor.Layout
	ext    tensor.Extents
	dense  bool
	math   backend.Math[T]
	mapper parallel.Mapper
	slots  int
}

// NewForward creates a forward descriptor for tensors addressed by layout.
//
// Example:
//
//	ext, _ := tensor.Shape{8, 10}.Extents(-1)
//	layout, _ := tensor.NewContiguous(ext)
//	fwd, err := softmax.NewForward[float32](layout, softmax.WithBackend(softmax.BackendAuto))
//	if err != nil { ... }
//	err = fwd.Execute(logits, probs, nil)
func NewForward[T tensor.Float](layout tensor.Layout, opts ...Option) (*Forward[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ext, err := checkLayout("forward", layout)
	if err != nil {
		return nil, err
	}
	m, err := resolveMath[T](&o)
	if err != nil {
		return nil, fmt.Errorf("softmax: forward: %w", err)
	}

	slots := o.parallelism
	if slots <= 0 {
		slots = parallel.Concurrency(o.mapper)
	}

	f := &Forward[T]{
		layout: layout,
		ext:    ext,
		dense:  layout.Contiguous() && ext.Dense(),
		math:   m,
		mapper: o.mapper,
		slots:  max(min(slots, ext.Outer), 1),
	}

	o.logger.Debug("softmax forward configured",
		"dtype", tensor.DataTypeOf[T](),
		"extents", extentsValue(ext),
		"path", pathName(f.dense),
		"math", m.Name(),
		"scratch", f.ScratchSize(),
	)
	return f, nil
}

// Dense reports whether the contiguous fast path was selected.
func (f *Forward[T]) Dense() bool { return f.dense }

// Extents returns the logical extents of the layout.
func (f *Forward[T]) Extents() tensor.Extents { return f.ext }

// Math returns the name of the selected math backend.
func (f *Forward[T]) Math() string { return f.math.Name() }

// ScratchSize returns the scratch length that lets the generic path run every
// configured slot in parallel. The dense path needs none. The generic path
// accepts any length of at least MinScratchSize and uses one private region of
// 2*inner elements per concurrent task.
func (f *Forward[T]) ScratchSize() int {
	if f.dense {
		return 0
	}
	return 2 * f.ext.Inner * f.slots
}

// MinScratchSize returns the smallest scratch length Execute accepts. With
// exactly this many elements the generic path runs serially over outer.
func (f *Forward[T]) MinScratchSize() int {
	if f.dense || f.ext.Inner == 1 {
		return 0
	}
	return 2 * f.ext.Inner
}

// Execute writes softmax(src) into dst. src and dst must hold at least
// Layout.Span() elements; scratch must hold at least MinScratchSize elements.
// src and dst may be the same slice.
func (f *Forward[T]) Execute(src, dst, scratch []T) error {
	span := f.layout.Span()
	if len(src) < span {
		return fmt.Errorf("softmax: forward: src: %w: %d < %d", ErrBufferTooSmall, len(src), span)
	}
	if len(dst) < span {
		return fmt.Errorf("softmax: forward: dst: %w: %d < %d", ErrBufferTooSmall, len(dst), span)
	}

	if f.dense {
		forwardDense(f.math, f.mapper, f.ext.Outer, f.ext.Channels, src, dst)
		return nil
	}

	region := 2 * f.ext.Inner
	slots := f.slots
	switch {
	case len(scratch) >= region:
		slots = min(slots, len(scratch)/region)
	case f.ext.Inner == 1:
		scratch = nil
	default:
		return fmt.Errorf("softmax: forward: %w: %d < %d", ErrScratchTooSmall, len(scratch), region)
	}

	forwardGeneric(f.mapper, f.layout, src, dst, scratch, slots)
	return nil
}

// Backward is a configured softmax backward primitive.
type Backward[T tensor.Float] struct {
	dataLayout tensor.Layout
	diffLayout tensor.Layout
	ext        tensor.Extents
	dense      bool
	mapper     parallel.Mapper
}

// NewBackward creates a backward descriptor. dataLayout addresses the forward
// output; diffLayout addresses both the output gradient and the input gradient.
func NewBackward[T tensor.Float](dataLayout, diffLayout tensor.Layout, opts ...Option) (*Backward[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ext, err := checkLayout("backward: data", dataLayout)
	if err != nil {
		return nil, err
	}
	diffExt, err := checkLayout("backward: diff", diffLayout)
	if err != nil {
		return nil, err
	}
	if ext != diffExt {
		return nil, fmt.Errorf("softmax: backward: %w: data %v, diff %v", ErrShapeMismatch, ext, diffExt)
	}

	b := &Backward[T]{
		dataLayout: dataLayout,
		diffLayout: diffLayout,
		ext:        ext,
		dense:      ext.Dense() && dataLayout.Contiguous() && diffLayout.Contiguous(),
		mapper:     o.mapper,
	}

	o.logger.Debug("softmax backward configured",
		"dtype", tensor.DataTypeOf[T](),
		"extents", extentsValue(ext),
		"path", pathName(b.dense),
	)
	return b, nil
}

// Dense reports whether the contiguous fast path was selected.
func (b *Backward[T]) Dense() bool { return b.dense }

// Extents returns the logical extents of the layouts.
func (b *Backward[T]) Extents() tensor.Extents { return b.ext }

// Execute writes the input gradient into diffSrc given the forward output data
// and the output gradient diffDst.
func (b *Backward[T]) Execute(data, diffDst, diffSrc []T) error {
	if span := b.dataLayout.Span(); len(data) < span {
		return fmt.Errorf("softmax: backward: data: %w: %d < %d", ErrBufferTooSmall, len(data), span)
	}
	span := b.diffLayout.Span()
	if len(diffDst) < span {
		return fmt.Errorf("softmax: backward: diff_dst: %w: %d < %d", ErrBufferTooSmall, len(diffDst), span)
	}
	if len(diffSrc) < span {
		return fmt.Errorf("softmax: backward: diff_src: %w: %d < %d", ErrBufferTooSmall, len(diffSrc), span)
	}

	if b.dense {
		backwardDense(b.mapper, b.ext.Outer, b.ext.Channels, data, diffDst, diffSrc)
		return nil
	}
	backwardGeneric(b.mapper, b.dataLayout, b.diffLayout, data, diffDst, diffSrc)
	return nil
}

func checkLayout(op string, layout tensor.Layout) (tensor.Extents, error) {
	if layout == nil {
		return tensor.Extents{}, fmt.Errorf("softmax: %s: %w", op, ErrNilLayout)
	}
	ext := layout.Extents()
	if ext.Channels < 1 {
		return tensor.Extents{}, fmt.Errorf("softmax: %s: %w", op, ErrZeroChannels)
	}
	if err := ext.Validate(); err != nil {
		return tensor.Extents{}, fmt.Errorf("softmax: %s: %w", op, err)
	}
	return ext, nil
}

func pathName(dense bool) string {
	if dense {
		return "dense"
	}
	return "generic"
}

// extentsValue renders extents as a log group.
type extentsValue tensor.Extents

func (e extentsValue) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("outer", e.Outer),
		slog.Int("channels", e.Channels),
		slog.Int("inner", e.Inner),
	)
}
