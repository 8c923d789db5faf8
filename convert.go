package svg

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// sinkError marks a failure to write the shared output, which no later
// task can recover from.
type sinkError struct {
	err error
}

func (e *sinkError) Error() string { return e.err.Error() }
func (e *sinkError) Unwrap() error { return e.err }

// Converter turns SVG documents into EAGLE script commands.
type Converter struct {
	conf   *Config
	logger hclog.Logger
}

// NewConverter returns a Converter writing preambles from conf. A nil
// conf means DefaultConfig and a nil logger discards all output.
func NewConverter(conf *Config, logger hclog.Logger) *Converter {
	if conf == nil {
		conf = DefaultConfig()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Converter{conf: conf, logger: logger}
}

// WritePreamble writes the settings every converted file starts with
func (c *Converter) WritePreamble(w io.Writer, layer string) error {
	_, err := fmt.Fprintf(w, "set wire_bend %d;\nset width %s;\nchange layer %s;\n",
		c.conf.WireBend, strconv.FormatFloat(c.conf.Width, 'f', -1, 64), layer)
	return err
}

// ConvertDocument writes one command line per path of svg:
//
//	<command> (x1 y1) (x2 y2) ... ;
//
// with coordinates flipped over the document's height.
func (c *Converter) ConvertDocument(w io.Writer, svg *Svg, command string) error {
	flip := svg.FlipY()
	for i := range svg.Paths {
		p := &svg.Paths[i]
		if _, err := io.WriteString(w, command+" "); err != nil {
			return err
		}
		points := 0
		err := p.Parse(flip, func(s Segment) error {
			points++
			_, err := io.WriteString(w, s.String())
			return err
		})
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, ";\n"); err != nil {
			return err
		}
		c.logger.Debug("converted path", "file", svg.Name, "id", p.ID, "points", points)
	}
	return nil
}

// Convert writes the preamble and commands for the document read from
// r. Nothing is written to w unless the whole document converts.
func (c *Converter) Convert(w io.Writer, task Task, r io.Reader) error {
	svg, err := ParseSvgFromReader(r, task.Path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.WritePreamble(&buf, task.Layer); err != nil {
		return err
	}
	if err := c.ConvertDocument(&buf, svg, task.Command); err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &sinkError{newError(FileAccessError, err, "writing output")}
	}

	c.logger.Info("converted", "file", task.Path, "layer", task.Layer, "command", task.Command, "paths", len(svg.Paths))
	return nil
}

// ConvertFile is Convert for the file named by task.Path
func (c *Converter) ConvertFile(w io.Writer, task Task) error {
	f, err := os.Open(task.Path)
	if err != nil {
		return newError(FileAccessError, err, "opening %s", task.Path)
	}
	defer f.Close()
	return c.Convert(w, task, f)
}

// Run converts tasks in order into w. A task that fails is logged and
// skipped; failing to write w stops the run. Run returns the number of
// skipped tasks.
func (c *Converter) Run(w io.Writer, tasks []Task) (int, error) {
	failed := 0
	for _, task := range tasks {
		err := c.ConvertFile(w, task)
		if err == nil {
			continue
		}
		var serr *sinkError
		if errors.As(err, &serr) {
			return failed, serr.err
		}
		failed++
		c.logger.Error("conversion failed", "file", task.Path, "kind", KindOf(err).String(), "error", err)
	}
	return failed, nil
}
