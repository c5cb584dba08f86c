package cli

import (
	"io"
	"os"

	"github.com/pierrec/xxHash/xxHash32"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lizardpack/lizard"
)

func newCompressCmd(verbose *bool) *cobra.Command {
	var (
		window    int
		pending   int
		minMatch  int
		overwrite bool
		debug     bool
		verify    bool
	)
	cmd := &cobra.Command{
		Use:   "compress <input> [output]",
		Short: "Compress a file",
		Long: `Compress a file. Without an explicit output, the input's extension
is swapped for .lizard.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runCompress(log, compressConfig{
				input:  args[0],
				output: deriveOutput(args, compressedExt),
				opts: &lizard.CompressOptions{
					MaxLookback: window,
					MaxPending:  pending,
					MinMatch:    minMatch,
				},
				overwrite: overwrite,
				debug:     debug,
				verify:    verify,
			})
		},
	}
	cmd.Flags().IntVarP(&window, "window", "w", lizard.DefaultMaxLookback, "lookback window size in bytes")
	cmd.Flags().IntVar(&pending, "pending", lizard.DefaultMaxPending, "lookahead size in bytes")
	cmd.Flags().IntVar(&minMatch, "min-match", lizard.DefaultMinMatch, "shortest repetition encoded as a copy")
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "replace the output file if it exists")
	cmd.Flags().BoolVar(&debug, "debug", false, "write a .dblzd transcript next to the input")
	cmd.Flags().BoolVar(&verify, "verify", false, "decompress the result and check it against the input")
	return cmd
}

type compressConfig struct {
	input, output string
	opts          *lizard.CompressOptions
	overwrite     bool
	debug         bool
	verify        bool
}

func runCompress(log *zap.SugaredLogger, cfg compressConfig) error {
	if err := distinctPaths(cfg.input, cfg.output); err != nil {
		return err
	}
	src, err := openInput(cfg.input)
	if err != nil {
		return err
	}
	defer src.Close()

	if cfg.debug {
		name := swapExt(cfg.input, transcriptExt)
		tf, err := createOutput(name, cfg.overwrite)
		if err != nil {
			return err
		}
		defer tf.Close()
		cfg.opts.Transcript = lizard.NewTranscript(tf)
		log.Debugw("writing transcript", "path", name)
	}

	dst, err := createOutput(cfg.output, cfg.overwrite)
	if err != nil {
		return err
	}
	if err := lizard.Compress(dst, src, cfg.opts); err != nil {
		dst.Close()
		os.Remove(cfg.output)
		return errors.Wrapf(err, "compress %s", cfg.input)
	}
	if err := dst.Close(); err != nil {
		os.Remove(cfg.output)
		return errors.Wrapf(err, "compress %s", cfg.input)
	}

	if cfg.verify {
		if err := verifyRoundTrip(cfg.input, cfg.output); err != nil {
			os.Remove(cfg.output)
			return err
		}
		log.Debugw("round trip verified", "path", cfg.output)
	}

	report(log, "compressed", cfg.input, cfg.output)
	return nil
}

// verifyRoundTrip decompresses the freshly written file and compares
// digests with the input it came from.
func verifyRoundTrip(input, output string) error {
	comp, err := os.Open(output)
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	defer comp.Close()
	got := xxHash32.New(0)
	if err := lizard.Decompress(got, comp, nil); err != nil {
		return errors.Wrapf(err, "verify %s", output)
	}

	src, err := os.Open(input)
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	defer src.Close()
	want := xxHash32.New(0)
	if _, err := io.Copy(want, src); err != nil {
		return errors.Wrap(err, "verify")
	}

	if got.Sum32() != want.Sum32() {
		return errors.Errorf("verify %s: round trip digest %08x does not match input digest %08x",
			output, got.Sum32(), want.Sum32())
	}
	return nil
}
