package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goforj/godump"

	truntime "github.com/davrell/tinybasic/runtime"
)

// session is one interpreter conversation, shared by the line-mode and
// TUI frontends: it owns the VM and turns each input line into output
// lines.
type session struct {
	vm      *truntime.VM
	stats   bool
	printed []string
}

func newSession(maxSteps int) *session {
	s := &session{vm: truntime.New()}
	s.vm.SetMaxSteps(maxSteps)
	s.vm.SetOutputHook(func(line string) {
		s.printed = append(s.printed, line)
	})
	return s
}

// Execute handles one input line: a direct command, or a numbered
// program line handed to the store. The returned lines are what the
// frontend should display; quit reports a QUIT/BYE/EXIT.
func (s *session) Execute(input string) (out []string, quit bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, false
	}

	if input[0] >= '0' && input[0] <= '9' {
		if err := s.vm.LoadLine(input); err != nil {
			return []string{"parse error: " + err.Error()}, false
		}
		return nil, false
	}

	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToUpper(cmd) {
	case "QUIT", "BYE", "EXIT":
		return []string{"Goodbye!"}, true
	case "RUN":
		return s.run(), false
	case "LIST":
		return s.list(), false
	case "NEW":
		s.vm.Clear()
		return []string{"Program cleared."}, false
	case "LOAD":
		return s.load(arg), false
	case "SAVE":
		return s.save(arg), false
	case "DUMP":
		return s.dump(arg), false
	case "STATS":
		s.stats = !s.stats
		if s.stats {
			return []string{"Run statistics on."}, false
		}
		return []string{"Run statistics off."}, false
	default:
		return []string{fmt.Sprintf("unknown command %q", cmd)}, false
	}
}

func (s *session) run() []string {
	if s.vm.LineCount() == 0 {
		return []string{"(No program to run)"}
	}
	s.printed = nil
	clock := startClock()
	halt, err := s.vm.Run()
	out := s.printed
	if err != nil {
		out = append(out, "runtime error: "+err.Error())
	} else if halt == truntime.HaltStepLimit {
		out = append(out, "stopped: "+halt.String())
	}
	if s.stats {
		out = append(out, clock.report())
	}
	return out
}

func (s *session) list() []string {
	if s.vm.LineCount() == 0 {
		return []string{"(No program)"}
	}
	var out []string
	for n, text := range s.vm.List() {
		out = append(out, fmt.Sprintf("%d %s", n, text))
	}
	return out
}

func (s *session) load(arg string) []string {
	path := strings.Trim(arg, `"`)
	if path == "" {
		return []string{`usage: LOAD "<path>"`}
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return []string{"load: " + err.Error()}
	}
	if err := s.vm.LoadProgram(string(src)); err != nil {
		return []string{"parse error: " + err.Error()}
	}
	return []string{fmt.Sprintf("Loaded %d lines from %s", s.vm.LineCount(), path)}
}

func (s *session) save(arg string) []string {
	path := strings.Trim(arg, `"`)
	if path == "" {
		return []string{`usage: SAVE "<path>"`}
	}
	if err := os.WriteFile(path, []byte(s.vm.Serialize()), 0o644); err != nil {
		return []string{"save: " + err.Error()}
	}
	return []string{fmt.Sprintf("Saved %d lines to %s", s.vm.LineCount(), path)}
}

func (s *session) dump(arg string) []string {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return []string{"usage: DUMP <line>"}
	}
	stmt, ok := s.vm.Statement(n)
	if !ok {
		return []string{fmt.Sprintf("no line %d", n)}
	}
	return strings.Split(strings.TrimRight(godump.DumpStr(stmt), "\n"), "\n")
}
