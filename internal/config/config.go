// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package config loads the synchk configuration file.
//
// The file format is chosen from the file extension: ".toml" files are
// decoded with BurntSushi/toml, ".yaml" and ".yml" files with yaml.v3.
//
//	[log]
//	level = "debug"
//	file = "/var/log/synchk.log"
//	trace = true
//
//	[report]
//	color = false
//	context = true
//
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the complete configuration.
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Report ReportConfig `toml:"report" yaml:"report"`
}

// LogConfig holds logging settings. Logs always go to stderr; if File is set,
// they are also written as JSON to a rotated log file.
type LogConfig struct {
	Level      string `toml:"level" yaml:"level"`
	File       string `toml:"file" yaml:"file"`
	MaxSize    int    `toml:"max_size" yaml:"max_size"` // megabytes
	MaxAge     int    `toml:"max_age" yaml:"max_age"`   // days
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	Compress   bool   `toml:"compress" yaml:"compress"`
	Trace      bool   `toml:"trace" yaml:"trace"` // log the parser derivation
}

// ReportConfig holds output settings.
type ReportConfig struct {
	Color   bool `toml:"color" yaml:"color"`
	Context bool `toml:"context" yaml:"context"`
}

// ErrFormat is returned by Load for unknown file extensions.
var ErrFormat = errors.New("unsupported config file format")

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxAge:     28,
			MaxBackups: 3,
		},
		Report: ReportConfig{
			Color: true,
		},
	}
}

// Load reads the configuration file at path. Settings missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "load config %s", path)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "load config")
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, errors.Wrapf(err, "load config %s", path)
		}
	default:
		return nil, errors.Wrap(ErrFormat, path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 || c.Log.MaxBackups < 0 {
		return errors.New("log rotation settings must not be negative")
	}
	return nil
}

// ZapLevel parses the log level.
func (c *LogConfig) ZapLevel() (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return l, errors.Wrapf(err, "log level %q", c.Level)
	}
	return l, nil
}
