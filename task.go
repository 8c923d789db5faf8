package svg

import (
	"path/filepath"
	"regexp"
)

var nameSeparators = regexp.MustCompile(`[_.]`)

// Task is one input file with the EAGLE layer and drawing command its
// paths are drawn with.
type Task struct {
	Layer   string
	Command string
	Path    string
}

// ParseTaskName builds a Task from a file named LAYER_COMMAND.ext, such
// as tPlace_wire.svg or top_poly.svg.
func ParseTaskName(path string) (Task, error) {
	base := filepath.Base(path)
	parts := nameSeparators.Split(base, -1)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Task{}, newError(NamingError, nil, "%s is not named LAYER_COMMAND.svg", base)
	}
	return Task{Layer: parts[0], Command: parts[1], Path: path}, nil
}
