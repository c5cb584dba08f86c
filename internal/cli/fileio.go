package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Default extensions for derived file names.
const (
	compressedExt = ".lizard"
	transcriptExt = ".dblzd"
	plainExt      = ".txt"
)

// deriveOutput returns the explicit output argument when one was
// given, otherwise the input path with its extension swapped for ext.
func deriveOutput(args []string, ext string) string {
	if len(args) > 1 {
		return args[1]
	}
	return swapExt(args[0], ext)
}

// swapExt replaces path's extension with ext, or appends ext when the
// path has none.
func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// distinctPaths refuses an output that would clobber the input.
func distinctPaths(input, output string) error {
	in, err := filepath.Abs(input)
	if err != nil {
		return errors.Wrap(err, "resolve input path")
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return errors.Wrap(err, "resolve output path")
	}
	if in == out {
		return errors.Errorf("output %s would overwrite the input", output)
	}
	return nil
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

// createOutput creates path for writing, refusing to replace an
// existing file unless overwrite is set.
func createOutput(path string, overwrite bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, errors.Errorf("output %s exists, use --overwrite to replace it", path)
		}
		return nil, errors.Wrap(err, "create output")
	}
	return f, nil
}

// report logs one closing line with sizes and ratio.
func report(log *zap.SugaredLogger, verb, input, output string) {
	inInfo, inErr := os.Stat(input)
	outInfo, outErr := os.Stat(output)
	if inErr != nil || outErr != nil {
		log.Infow(verb, "input", input, "output", output)
		return
	}
	ratio := 0.0
	if inInfo.Size() > 0 {
		ratio = float64(outInfo.Size()) / float64(inInfo.Size())
	}
	log.Infow(verb,
		"input", input, "inBytes", inInfo.Size(),
		"output", output, "outBytes", outInfo.Size(),
		"ratio", fmt.Sprintf("%.3f", ratio),
	)
}
