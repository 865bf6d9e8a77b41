package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/softmax/internal/parallel"
	"github.com/born-ml/softmax/internal/softmax"
	"github.com/born-ml/softmax/internal/tensor"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var (
		shapeFlag string
		axis      int
		grad      string
	)

	cmd := &cobra.Command{
		Use:   "run [values...]",
		Short: "Compute softmax of the given values",
		Long: `Compute softmax of a row-major tensor given on the command line.
With --grad, also print the input gradient for that output gradient.`,
		Example: `  softmax run 1 2 3
  softmax run --shape 2,3 --axis 0 1 2 3 4 5 6
  softmax run --grad 1,0,0 1 2 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloats(args)
			if err != nil {
				return err
			}
			shape := tensor.Shape{len(x)}
			if shapeFlag != "" {
				if shape, err = parseShape(shapeFlag); err != nil {
					return err
				}
			}

			opts := []softmax.Option{
				softmax.WithBackend(flags.backend),
				softmax.WithMapper(parallel.NewGroup(flags.workers)),
				softmax.WithLogger(flags.logger()),
			}
			y, err := softmax.Softmax(x, shape, axis, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloats(y))

			if grad == "" {
				return nil
			}
			dy, err := parseFloats(strings.Split(grad, ","))
			if err != nil {
				return err
			}
			dx, err := softmax.SoftmaxBackward(y, dy, shape, axis, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloats(dx))
			return nil
		},
	}

	cmd.Flags().StringVar(&shapeFlag, "shape", "", "comma-separated tensor shape (default: one dimension)")
	cmd.Flags().IntVar(&axis, "axis", -1, "softmax axis; negative counts from the end")
	cmd.Flags().StringVar(&grad, "grad", "", "comma-separated output gradient")
	return cmd
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseShape(s string) (tensor.Shape, error) {
	var shape tensor.Shape
	for _, f := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		shape = append(shape, d)
	}
	return shape, shape.Validate()
}

func formatFloats(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}
	return strings.Join(parts, " ")
}
