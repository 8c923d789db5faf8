package svg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskName(t *testing.T) {
	task, err := ParseTaskName("top_poly.svg")
	require.NoError(t, err)
	assert.Equal(t, Task{Layer: "top", Command: "poly", Path: "top_poly.svg"}, task)

	p := filepath.Join("art_v2", "tPlace_wire.svg")
	task, err = ParseTaskName(p)
	require.NoError(t, err)
	assert.Equal(t, "tPlace", task.Layer)
	assert.Equal(t, "wire", task.Command)
	assert.Equal(t, p, task.Path)
}

func TestParseTaskNameErrors(t *testing.T) {
	for _, name := range []string{"logo.svg", "logo", "_poly.svg", "top_.svg"} {
		_, err := ParseTaskName(name)
		require.Error(t, err, name)
		assert.Equal(t, NamingError, KindOf(err), name)
	}
}
