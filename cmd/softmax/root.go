package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	backend string
	workers int
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "softmax",
		Short:         "Numerically stable softmax kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.backend, "backend", "auto", "math backend: loop, blas or auto")
	root.PersistentFlags().IntVar(&flags.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log descriptor configuration")

	root.AddCommand(
		newVersionCmd(),
		newRunCmd(flags),
		newBenchCmd(flags),
	)
	return root
}

func (f *globalFlags) logger() *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "softmax %s\n", version)
		},
	}
}
