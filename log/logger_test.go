// Copyright 2026 The go-md5 Authors
// This file is part of the go-md5 library.
//
// The go-md5 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-md5 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-md5 library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func BenchmarkTraceLogging(b *testing.B) {
	logger := New()
	logger.SetHandler(LvlFilterHandler(LvlInfo, StreamHandler(new(bytes.Buffer), TerminalFormat(true))))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Trace("a message", "v", i)
	}
}

type notimeHandler struct {
	next Handler
}

func (n notimeHandler) Log(r *Record) error {
	r.Time = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return n.next.Log(r)
}

func TestLoggingTerminal(t *testing.T) {
	out := new(bytes.Buffer)
	logger := New()
	logger.SetHandler(notimeHandler{StreamHandler(out, TerminalFormat(false))})
	logger.Trace("a message", "foo", "bar")

	have := out.String()
	want := "TRACE[01-01|00:00:00.000] a message " + strings.Repeat(" ", termMsgJust-len("a message")) + "foo=bar\n"
	if have != want {
		t.Errorf("\nhave: '%v'\nwant: '%v'\n", have, want)
	}
}

func TestLvlFilterHandler(t *testing.T) {
	out := new(bytes.Buffer)
	logger := New()
	logger.SetHandler(LvlFilterHandler(LvlInfo, StreamHandler(out, LogfmtFormat())))

	logger.Debug("hidden")
	logger.Trace("hidden")
	if out.Len() != 0 {
		t.Fatalf("filtered records were written: %q", out.String())
	}
	logger.Warn("shown")
	if !strings.Contains(out.String(), "msg=shown") {
		t.Fatalf("record missing: %q", out.String())
	}
}

func TestLoggerContext(t *testing.T) {
	out := new(bytes.Buffer)
	parent := New("hasher", "blocks")
	parent.SetHandler(StreamHandler(out, LogfmtFormat()))

	child := parent.New("chunk", 3)
	child.Info("Compressed block", "index", uint64(1234567))

	have := out.String()
	for _, want := range []string{"lvl=info", `msg="Compressed block"`, "hasher=blocks chunk=3 index=1,234,567"} {
		if !strings.Contains(have, want) {
			t.Errorf("output %q missing %q", have, want)
		}
	}
}

func TestLoggerSwapHandler(t *testing.T) {
	var first, second bytes.Buffer
	logger := New()
	logger.SetHandler(StreamHandler(&first, LogfmtFormat()))
	logger.Info("one")
	logger.SetHandler(StreamHandler(&second, LogfmtFormat()))
	logger.Info("two")

	if !strings.Contains(first.String(), "msg=one") || strings.Contains(first.String(), "msg=two") {
		t.Errorf("first handler output wrong: %q", first.String())
	}
	if !strings.Contains(second.String(), "msg=two") {
		t.Errorf("second handler output wrong: %q", second.String())
	}
}

func TestOddContextNormalized(t *testing.T) {
	out := new(bytes.Buffer)
	logger := New()
	logger.SetHandler(StreamHandler(out, LogfmtFormat()))
	logger.Error("odd", "key")

	if !strings.Contains(out.String(), "key=nil "+errorKey+"=") {
		t.Errorf("odd context not normalized: %q", out.String())
	}
}

func TestCtxMap(t *testing.T) {
	out := new(bytes.Buffer)
	logger := New()
	logger.SetHandler(StreamHandler(out, LogfmtFormat()))
	logger.Info("map", Ctx{"bytes": 44})

	if !strings.Contains(out.String(), "bytes=44") {
		t.Errorf("ctx map not expanded: %q", out.String())
	}
}

func TestRecordCallSite(t *testing.T) {
	var call string
	logger := New()
	logger.SetHandler(FuncHandler(func(r *Record) error {
		call = fmt.Sprintf("%v", r.Call)
		return nil
	}))
	logger.Info("where")

	if !strings.HasPrefix(call, "logger_test.go:") {
		t.Errorf("call site = %q, want logger_test.go:<line>", call)
	}
}

func TestLvlFromString(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Lvl
	}{
		{"trace", LvlTrace},
		{"trce", LvlTrace},
		{"debug", LvlDebug},
		{"info", LvlInfo},
		{"warn", LvlWarn},
		{"eror", LvlError},
		{"crit", LvlCrit},
	} {
		have, err := LvlFromString(tt.in)
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if have != tt.want {
			t.Errorf("%s: have %v, want %v", tt.in, have, tt.want)
		}
	}
	if _, err := LvlFromString("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestStderrHandler(t *testing.T) {
	logger := New()
	logger.SetHandler(LvlFilterHandler(LvlWarn, StderrHandler()))
	if err := logger.GetHandler().Log(&Record{Time: time.Now(), Lvl: LvlWarn, Msg: "stderr handler"}); err != nil {
		t.Fatal(err)
	}
}
