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

package logging_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/synchk/internal/config"
	"github.com/db47h/synchk/internal/logging"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Log
	l, err := logging.New(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hidden")
	l.Info("shown")
	_ = l.Sync()
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "INFO\tshown") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNew_Trace(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Log
	cfg.Level = "warn"
	cfg.Trace = true
	l, err := logging.New(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("enter")
	if !strings.Contains(buf.String(), "DEBUG\tenter") {
		t.Errorf("trace not enabled: %q", buf.String())
	}
}

func TestNew_File(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Log
	cfg.File = filepath.Join(t.TempDir(), "synchk.log")
	l, err := logging.New(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	logging.Session(l, "prog.txt").Info("checked")
	_ = l.Sync()

	f, err := os.Open(cfg.File)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	if !s.Scan() {
		t.Fatal("empty log file")
	}
	var entry map[string]interface{}
	if err := json.Unmarshal(s.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["msg"] != "checked" || entry["file"] != "prog.txt" || entry["level"] != "INFO" {
		t.Errorf("unexpected entry %v", entry)
	}
	if id, _ := entry["session"].(string); len(id) != 36 {
		t.Errorf("bad session id %q", id)
	}
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "chatty"
	if _, err := logging.New(cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected an error")
	}
}
