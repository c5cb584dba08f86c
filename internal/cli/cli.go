// Package cli implements the lizard command line interface: thin file
// plumbing around the codec in the root package.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// New returns the root command with both subcommands attached.
func New() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "lizard",
		Short:        "Compress and decompress files with an LZ77 + Huffman codec",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newCompressCmd(&verbose), newDecompressCmd(&verbose))
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := New().Execute(); err != nil {
		return 1
	}
	return 0
}

// newLogger builds the command logger. Debug lines appear only with
// --verbose.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
