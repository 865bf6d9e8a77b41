// Package tensor provides element types, shapes and memory layouts for the softmax kernels.
package tensor

import "unsafe"

// Float is the closed set of element types the kernels are instantiated for.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for a kernel instantiation.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the DataType of T.
func DataTypeOf[T Float]() DataType {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return Float32
	}
	return Float64
}
