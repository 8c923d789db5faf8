package main

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandArgs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"top_poly.svg", "tPlace_wire.svg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	files, err := expandArgs([]string{filepath.Join(dir, "*.svg"), "bottom_wire.svg"})
	require.NoError(t, err)
	require.Len(t, files, 3)
	globbed := files[:2]
	sort.Strings(globbed)
	require.Equal(t, []string{filepath.Join(dir, "tPlace_wire.svg"), filepath.Join(dir, "top_poly.svg")}, globbed)
	require.Equal(t, "bottom_wire.svg", files[2])
}
