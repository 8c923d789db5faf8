package svg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	c, err = LoadConfig(`
Output = "board.scr"
WireBend = 1
Width = 0.254
LogLevel = "debug"
`)
	require.NoError(t, err)
	assert.Equal(t, &Config{Output: "board.scr", WireBend: 1, Width: 0.254, LogLevel: "debug"}, c)
}

func TestLoadConfigErrors(t *testing.T) {
	for _, conf := range []string{
		`Colour = "red"`,
		`Output = ""`,
		`Width = 0.0`,
		`Width = "wide"`,
	} {
		_, err := LoadConfig(conf)
		assert.Error(t, err, conf)
	}
}

func TestLoadConfigFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "svg2scr.toml")
	require.NoError(t, os.WriteFile(name, []byte("Width = 0.2\n"), 0644))

	c, err := LoadConfigFile(name)
	require.NoError(t, err)
	assert.Equal(t, 0.2, c.Width)
	assert.Equal(t, "svg.scr", c.Output)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
