package softmax

import (
	"log/slog"

	"github.com/born-ml/softmax/internal/backend"
	"github.com/born-ml/softmax/internal/parallel"
	"github.com/born-ml/softmax/internal/tensor"
)

// Option configures a Forward or Backward descriptor.
type Option func(*options)

type options struct {
	backendName string
	math        any // backend.Math[T] for the descriptor's T
	mapper      parallel.Mapper
	parallelism int
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		backendName: BackendLoop,
		mapper:      parallel.DefaultConfig(),
		logger:      slog.New(slog.DiscardHandler),
	}
}

// WithBackend selects a math backend by name: BackendLoop, BackendBLAS or BackendAuto.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backendName = name
		o.math = nil
	}
}

// WithMath injects a math implementation directly. T must match the
// descriptor's element type.
func WithMath[T tensor.Float](m backend.Math[T]) Option {
	return func(o *options) {
		o.math = m
	}
}

// WithMapper sets the parallel-map capability.
func WithMapper(m parallel.Mapper) Option {
	return func(o *options) {
		if m != nil {
			o.mapper = m
		}
	}
}

// WithParallelism sets how many private scratch regions the generic forward
// path may use at once. Zero means the mapper's concurrency.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithLogger sets the logger used when a descriptor is created.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
