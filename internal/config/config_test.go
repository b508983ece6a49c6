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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/db47h/synchk/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if !cfg.Report.Color || cfg.Report.Context || cfg.Log.Trace {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	data := []struct {
		name    string
		content string
	}{
		{"synchk.toml", `
[log]
level = "debug"
file = "check.log"
trace = true

[report]
context = true
`},
		{"synchk.yaml", `
log:
  level: debug
  file: check.log
  trace: true
report:
  context: true
`},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			cfg, err := config.Load(writeFile(t, d.name, d.content))
			if err != nil {
				t.Fatal(err)
			}
			if lvl, _ := cfg.Log.ZapLevel(); lvl != zapcore.DebugLevel {
				t.Errorf("got level %s", lvl)
			}
			if cfg.Log.File != "check.log" || !cfg.Log.Trace {
				t.Errorf("got log config %+v", cfg.Log)
			}
			if !cfg.Report.Context || !cfg.Report.Color {
				t.Errorf("got report config %+v", cfg.Report)
			}
			if cfg.Log.MaxBackups != 3 {
				t.Errorf("default not kept: %+v", cfg.Log)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := config.Load(writeFile(t, "synchk.ini", "")); errors.Cause(err) != config.ErrFormat {
		t.Errorf("got %v, want %v", err, config.ErrFormat)
	}
	if _, err := config.Load(writeFile(t, "bad.toml", "[log]\nlevel = \"loud\"\n")); err == nil {
		t.Error("expected an invalid level error")
	}
	if _, err := config.Load(writeFile(t, "bad.yaml", "log: [")); err == nil {
		t.Error("expected a yaml syntax error")
	}
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected a file not found error")
	}
	if _, err := config.Load(writeFile(t, "neg.toml", "[log]\nmax_age = -1\n")); err == nil {
		t.Error("expected a validation error")
	}
}
