package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/born-ml/softmax/internal/parallel"
	"github.com/born-ml/softmax/internal/softmax"
	"github.com/born-ml/softmax/internal/tensor"
)

func newBenchCmd(flags *globalFlags) *cobra.Command {
	var (
		ext        tensor.Extents
		iterations int
		block      int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the forward and backward kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				layout tensor.Layout
				err    error
			)
			if block > 1 {
				layout, err = tensor.NewBlocked(ext, block)
			} else {
				layout, err = tensor.NewContiguous(ext)
			}
			if err != nil {
				return err
			}

			pool := parallel.NewPool(flags.workers)
			defer pool.Close()
			opts := []softmax.Option{
				softmax.WithBackend(flags.backend),
				softmax.WithMapper(pool),
				softmax.WithLogger(flags.logger()),
			}

			fwd, err := softmax.NewForward[float32](layout, opts...)
			if err != nil {
				return err
			}
			bwd, err := softmax.NewBackward[float32](layout, layout, opts...)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(1))
			src := make([]float32, layout.Span())
			for i := range src {
				src[i] = float32(rng.NormFloat64())
			}
			dst := make([]float32, len(src))
			diff := make([]float32, len(src))
			scratch := make([]float32, fwd.ScratchSize())

			start := time.Now()
			for range iterations {
				if err := fwd.Execute(src, dst, scratch); err != nil {
					return err
				}
			}
			fwdTime := time.Since(start)

			start = time.Now()
			for range iterations {
				if err := bwd.Execute(dst, src, diff); err != nil {
					return err
				}
			}
			bwdTime := time.Since(start)

			path := "generic"
			if fwd.Dense() {
				path = "dense"
			}
			bytes := layout.Span() * tensor.DataTypeOf[float32]().Size()
			fmt.Fprintf(cmd.OutOrStdout(), "extents %v path=%s math=%s workers=%d bytes=%d\n", ext, path, fwd.Math(), pool.Workers(), bytes)
			fmt.Fprintf(cmd.OutOrStdout(), "forward  %v/op\n", fwdTime/time.Duration(max(iterations, 1)))
			fmt.Fprintf(cmd.OutOrStdout(), "backward %v/op\n", bwdTime/time.Duration(max(iterations, 1)))
			return nil
		},
	}

	cmd.Flags().IntVar(&ext.Outer, "outer", 64, "outer size")
	cmd.Flags().IntVar(&ext.Channels, "channels", 1000, "softmax axis length")
	cmd.Flags().IntVar(&ext.Inner, "inner", 1, "inner size")
	cmd.Flags().IntVar(&block, "block", 0, "channel block size (0 or 1 = row-major)")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 100, "iterations per kernel")
	return cmd
}
