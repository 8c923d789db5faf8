// Command svg2scr converts SVG files into a single EAGLE script.
//
// Each argument must be named LAYER_COMMAND.svg, where LAYER is an
// EAGLE layer such as tPlace or top and COMMAND is a drawing command
// such as poly or wire. The SVG must use absolute path data made only
// of straight segments: in Inkscape, save with absolute path strings,
// convert objects and strokes to paths, flatten beziers, break apart
// and ungroup, then save as plain SVG.
//
// One SVG unit becomes one unit of whatever EAGLE is set to display.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	svg "github.com/vasalvit/svg2scr"
)

var (
	flagConf   = flag.String("c", "", "config file location")
	flagOutput = flag.String("o", "", "output script (default svg.scr)")
	flagLevel  = flag.String("v", "", "log level: trace, debug, info, warn, error")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] LAYER_COMMAND.svg...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	conf := svg.DefaultConfig()
	if *flagConf != "" {
		var err error
		conf, err = svg.LoadConfigFile(*flagConf)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if *flagOutput != "" {
		conf.Output = *flagOutput
	}
	if *flagLevel != "" {
		conf.LogLevel = *flagLevel
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "svg2scr",
		Level: hclog.LevelFromString(conf.LogLevel),
	})

	files, err := expandArgs(args)
	if err != nil {
		logger.Error("bad argument", "error", err)
		return 1
	}

	var tasks []svg.Task
	for _, f := range files {
		task, err := svg.ParseTaskName(f)
		if err != nil {
			logger.Error("skipping file", "file", f, "error", err)
			continue
		}
		tasks = append(tasks, task)
	}
	skipped := len(files) - len(tasks)

	c := svg.NewConverter(conf, logger)
	err = svg.WithSink(conf.Output, func(w io.Writer) error {
		failed, err := c.Run(w, tasks)
		skipped += failed
		return err
	})
	if err != nil {
		logger.Error("conversion aborted", "output", conf.Output, "error", err)
		return 1
	}
	logger.Info("wrote script", "output", conf.Output, "files", len(files)-skipped, "skipped", skipped)
	if skipped > 0 {
		return 2
	}
	return 0
}

// expandArgs expands arguments holding glob patterns, for shells that
// pass them through unexpanded.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[") {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", arg, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}
