package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, s *session, input string) []string {
	t.Helper()
	out, quit := s.Execute(input)
	if quit {
		t.Fatalf("Execute(%q) requested quit", input)
	}
	return out
}

func TestSessionLoadAndRun(t *testing.T) {
	s := newSession(0)
	for _, line := range []string{
		"10 LET X = 2",
		"20 PRINT X * 21",
		"30 END",
	} {
		if out := execute(t, s, line); len(out) != 0 {
			t.Fatalf("loading %q produced output %q", line, out)
		}
	}

	out := execute(t, s, "RUN")
	if len(out) != 1 || out[0] != "42" {
		t.Fatalf("RUN output = %q, want [42]", out)
	}

	out = execute(t, s, "LIST")
	if len(out) != 3 || !strings.HasPrefix(out[0], "10 ") {
		t.Fatalf("LIST output = %q", out)
	}
}

func TestSessionCommandsAreCaseInsensitive(t *testing.T) {
	s := newSession(0)
	execute(t, s, "10 END")
	out := execute(t, s, "list")
	if len(out) != 1 || out[0] != "10 END" {
		t.Fatalf("list output = %q", out)
	}
}

func TestSessionQuitAliases(t *testing.T) {
	for _, cmd := range []string{"QUIT", "bye", "Exit"} {
		s := newSession(0)
		if _, quit := s.Execute(cmd); !quit {
			t.Fatalf("Execute(%q) did not quit", cmd)
		}
	}
}

func TestSessionNewClearsProgram(t *testing.T) {
	s := newSession(0)
	execute(t, s, "10 END")
	execute(t, s, "NEW")
	out := execute(t, s, "LIST")
	if len(out) != 1 || out[0] != "(No program)" {
		t.Fatalf("LIST after NEW = %q", out)
	}
}

func TestSessionRuntimeErrorReported(t *testing.T) {
	s := newSession(0)
	execute(t, s, "10 PRINT 1 / 0")
	out := execute(t, s, "RUN")
	if len(out) != 1 || !strings.Contains(out[0], "line 10") {
		t.Fatalf("RUN output = %q, want runtime error naming line 10", out)
	}
}

func TestSessionParseErrorRejectsLine(t *testing.T) {
	s := newSession(0)
	out := execute(t, s, "10 LET = 5")
	if len(out) != 1 || !strings.HasPrefix(out[0], "parse error:") {
		t.Fatalf("output = %q, want parse error", out)
	}
	out = execute(t, s, "LIST")
	if out[0] != "(No program)" {
		t.Fatalf("rejected line reached the store: %q", out)
	}
}

func TestSessionStepLimit(t *testing.T) {
	s := newSession(50)
	execute(t, s, "10 GOTO 10")
	out := execute(t, s, "RUN")
	if len(out) != 1 || !strings.Contains(out[0], "stopped") {
		t.Fatalf("RUN output = %q, want step-limit stop", out)
	}
}

func TestSessionSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.bas")

	s := newSession(0)
	execute(t, s, `10 PRINT "saved"`)
	execute(t, s, "20 END")
	out := execute(t, s, `SAVE "`+path+`"`)
	if len(out) != 1 || !strings.HasPrefix(out[0], "Saved 2 lines") {
		t.Fatalf("SAVE output = %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.Contains(string(data), `10 PRINT "saved"`) {
		t.Fatalf("saved file = %q", data)
	}

	fresh := newSession(0)
	out = execute(t, fresh, `LOAD "`+path+`"`)
	if len(out) != 1 || !strings.HasPrefix(out[0], "Loaded 2 lines") {
		t.Fatalf("LOAD output = %q", out)
	}
	out = execute(t, fresh, "RUN")
	if len(out) != 1 || out[0] != "saved" {
		t.Fatalf("RUN after LOAD = %q", out)
	}
}

func TestSessionDump(t *testing.T) {
	s := newSession(0)
	execute(t, s, "10 LET X = 1")
	out := execute(t, s, "DUMP 10")
	if len(out) == 0 {
		t.Fatal("DUMP produced no output")
	}
	out = execute(t, s, "DUMP 99")
	if len(out) != 1 || out[0] != "no line 99" {
		t.Fatalf("DUMP 99 = %q", out)
	}
}

func TestSessionStatsToggle(t *testing.T) {
	s := newSession(0)
	out := execute(t, s, "STATS")
	if len(out) != 1 || out[0] != "Run statistics on." {
		t.Fatalf("STATS output = %q", out)
	}
	execute(t, s, "10 END")
	out = execute(t, s, "RUN")
	if len(out) != 1 || !strings.HasPrefix(out[0], "CPU usage:") {
		t.Fatalf("RUN with stats = %q", out)
	}
}
