package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lizardpack/lizard"
)

func newDecompressCmd(verbose *bool) *cobra.Command {
	var (
		overwrite    bool
		maxWindowMem uint64
	)
	cmd := &cobra.Command{
		Use:   "decompress <input> [output]",
		Short: "Decompress a file",
		Long: `Decompress a file. Without an explicit output, the input's extension
is swapped for .txt.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runDecompress(log, args[0], deriveOutput(args, plainExt), overwrite, maxWindowMem)
		},
	}
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "replace the output file if it exists")
	cmd.Flags().Uint64Var(&maxWindowMem, "max-window-mem", lizard.DefaultMaxWindowMem,
		"largest decode window a header may request, in bytes")
	return cmd
}

func runDecompress(log *zap.SugaredLogger, input, output string, overwrite bool, maxWindowMem uint64) error {
	if err := distinctPaths(input, output); err != nil {
		return err
	}
	src, err := openInput(input)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := createOutput(output, overwrite)
	if err != nil {
		return err
	}
	opts := &lizard.DecompressOptions{MaxWindowMem: maxWindowMem}
	if err := lizard.Decompress(dst, src, opts); err != nil {
		dst.Close()
		os.Remove(output)
		return errors.Wrapf(err, "decompress %s", input)
	}
	if err := dst.Close(); err != nil {
		os.Remove(output)
		return errors.Wrapf(err, "decompress %s", input)
	}

	report(log, "decompressed", input, output)
	return nil
}
