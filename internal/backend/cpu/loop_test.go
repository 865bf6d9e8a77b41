package cpu

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func TestLoop_IndexOfMax(t *testing.T) {
	tests := []struct {
		name  string
		input []float32
		want  int
	}{
		{name: "single", input: []float32{-7}, want: 0},
		{name: "ascending", input: []float32{1, 2, 3}, want: 2},
		{name: "first of ties", input: []float32{5, 1, 5}, want: 0},
		{name: "negative", input: []float32{-1000, -3, -2000}, want: 1},
		{name: "neg infinity", input: []float32{float32(math.Inf(-1)), -1}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Loop[float32]{}).IndexOfMax(tt.input); got != tt.want {
				t.Errorf("IndexOfMax(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoop_Exp(t *testing.T) {
	input := []float64{-3, -1, 0, 0.5, 2}
	output := make([]float64, len(input))
	Loop[float64]{}.Exp(output, input)

	for i, v := range input {
		if math.Abs(output[i]-math.Exp(v)) > epsilon {
			t.Errorf("exp(%f) = %f, expected %f", v, output[i], math.Exp(v))
		}
	}

	// In place.
	Loop[float64]{}.Exp(input, input)
	for i := range input {
		if input[i] != output[i] {
			t.Errorf("in-place exp differs at %d: %f vs %f", i, input[i], output[i])
		}
	}
}

func TestLoop_SumAndScale(t *testing.T) {
	m := Loop[float32]{}
	x := []float32{1, 2, 3, 4}

	if got := m.Sum(x); got != 10 {
		t.Errorf("Sum = %f, expected 10", got)
	}
	if got := m.Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %f, expected 0", got)
	}

	m.Scale(0.5, x)
	want := []float32{0.5, 1, 1.5, 2}
	for i := range x {
		if x[i] != want[i] {
			t.Errorf("Scale: x[%d] = %f, expected %f", i, x[i], want[i])
		}
	}
}

func TestLoop_Name(t *testing.T) {
	if got := (Loop[float32]{}).Name(); got != "loop" {
		t.Errorf("Name() = %q", got)
	}
}
