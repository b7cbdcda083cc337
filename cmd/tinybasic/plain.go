package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/danswartzendruber/liner"
)

// runPlain is the line-mode frontend: a liner-backed prompt with
// history, printing session output straight to stdout.
func runPlain(sess *session) error {
	l := liner.NewLiner()
	defer l.Close()
	l.SetMultiLineMode(true)

	fmt.Println("Tiny BASIC Interpreter")
	fmt.Println("Commands: LOAD, SAVE, RUN, LIST, NEW, QUIT")
	fmt.Println()

	for {
		input, err := l.Prompt("> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		l.AppendHistory(input)

		out, quit := sess.Execute(input)
		for _, line := range out {
			fmt.Println(line)
		}
		if quit {
			return nil
		}
	}
}
