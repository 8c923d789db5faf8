package svg

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the settings of a conversion run
type Config struct {
	// Output is the script file all inputs are appended to
	Output string
	// WireBend and Width are written in every file's preamble
	WireBend int
	Width    float64
	LogLevel string
}

// DefaultConfig returns the settings used when no config file is given
func DefaultConfig() *Config {
	return &Config{
		Output:   "svg.scr",
		WireBend: 2,
		Width:    0.1,
		LogLevel: "INFO",
	}
}

// LoadConfigFile reads a TOML config file over the defaults
func LoadConfigFile(fileName string) (*Config, error) {
	return loadConfig(fileName, true)
}

// LoadConfig is like LoadConfigFile but loads the config from a string
func LoadConfig(conf string) (*Config, error) {
	return loadConfig(conf, false)
}

func loadConfig(conf string, isFileName bool) (*Config, error) {
	c := DefaultConfig()
	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, c)
	} else {
		md, err = toml.Decode(conf, c)
	}
	if err != nil {
		return c, errors.Wrap(err, "decoding config")
	}
	if len(md.Undecoded()) > 0 {
		return c, fmt.Errorf("undecoded fields in configuration: %v", md.Undecoded())
	}
	if c.Output == "" {
		return c, errors.New("Output must not be empty")
	}
	if c.Width <= 0 {
		return c, errors.Errorf("Width must be positive, got %v", c.Width)
	}
	return c, nil
}
