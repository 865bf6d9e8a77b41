package softmax

import (
	"fmt"
	"runtime"

	xcpu "golang.org/x/sys/cpu"

	"github.com/born-ml/softmax/internal/backend"
	"github.com/born-ml/softmax/internal/backend/blas"
	"github.com/born-ml/softmax/internal/backend/cpu"
	"github.com/born-ml/softmax/internal/tensor"
)

// Math backend names accepted by WithBackend.
const (
	BackendLoop = "loop"
	BackendBLAS = "blas"
	BackendAuto = "auto"
)

// SelectMath resolves a backend name to an implementation for T.
// BackendAuto picks BLAS when the host has the vector units gonum's kernels use.
func SelectMath[T tensor.Float](name string) (backend.Math[T], error) {
	switch name {
	case "", BackendLoop:
		return cpu.Loop[T]{}, nil
	case BackendBLAS:
		return blas.New[T](), nil
	case BackendAuto:
		if hasVectorUnits() {
			return blas.New[T](), nil
		}
		return cpu.Loop[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

func hasVectorUnits() bool {
	switch runtime.GOARCH {
	case "amd64":
		return xcpu.X86.HasAVX
	case "arm64":
		return xcpu.ARM64.HasASIMD
	default:
		return false
	}
}

// resolveMath returns the injected implementation or the named one.
func resolveMath[T tensor.Float](o *options) (backend.Math[T], error) {
	if o.math != nil {
		m, ok := o.math.(backend.Math[T])
		if !ok {
			return nil, fmt.Errorf("%w: got %T for %s", ErrMathType, o.math, tensor.DataTypeOf[T]())
		}
		return m, nil
	}
	return SelectMath[T](o.backendName)
}
