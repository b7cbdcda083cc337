package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	truntime "github.com/davrell/tinybasic/runtime"
)

func main() {
	plain := flag.Bool("plain", false, "line mode, no full-screen UI")
	runFile := flag.String("run", "", "load a program file, run it, and exit")
	steps := flag.Int("steps", 0, "maximum statements per RUN (0 = unlimited)")
	stats := flag.Bool("stats", false, "report CPU usage after each RUN")
	flag.Parse()

	sess := newSession(*steps)
	sess.stats = *stats

	if *runFile != "" {
		if err := runBatch(sess, *runFile); err != nil {
			fmt.Fprintf(os.Stderr, "tinybasic: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *plain || !term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runPlain(sess); err != nil {
			fmt.Fprintf(os.Stderr, "tinybasic: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(newModel(sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}

// runBatch loads one program file, runs it once and prints its output,
// for scripted use.
func runBatch(sess *session, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := sess.vm.LoadProgram(string(src)); err != nil {
		return err
	}
	sess.printed = nil
	halt, err := sess.vm.Run()
	for _, line := range sess.printed {
		fmt.Println(line)
	}
	if err != nil {
		return err
	}
	if halt == truntime.HaltStepLimit {
		return fmt.Errorf("stopped: %s", halt)
	}
	return nil
}
