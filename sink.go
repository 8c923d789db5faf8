package svg

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WithSink creates the file at path and calls fn with a buffered
// writer to it. The writer is flushed and the file closed whatever fn
// returns; the first error wins.
func WithSink(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return newError(FileAccessError, err, "creating %s", path)
	}
	bw := bufio.NewWriter(f)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = newError(FileAccessError, ferr, "writing %s", path)
		}
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError(FileAccessError, cerr, "closing %s", path)
		}
	}()
	return errors.WithStack(fn(bw))
}
