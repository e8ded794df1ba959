package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/agenthands/suco/pkg/compiler/lexer"
	"github.com/agenthands/suco/pkg/report"
)

const (
	historyFile = ".suco_history"
	prompt      = "suco> "
)

// prompter reads one line of input. *liner.State satisfies it.
type prompter interface {
	Prompt(string) (string, error)
	AppendHistory(string)
}

func runRepl(stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, "suco token REPL. Ctrl+D or :quit exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	return replLoop(ln, stdout, stderr)
}

// replLoop scans every input line on its own and prints its tokens.
func replLoop(p prompter, stdout, stderr io.Writer) int {
	for {
		line, err := p.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout)
			return exitOK
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error reading input: %v\n", err)
			return exitError
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit":
			return exitOK
		}
		p.AppendHistory(line)

		toks, err := lexer.Tokenize([]byte(line))
		if werr := report.Write(stdout, report.FormatText, toks, report.Options{Suggest: true}); werr != nil {
			fmt.Fprintf(stderr, "Error writing report: %v\n", werr)
			return exitError
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
		}
	}
}
