package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/agenthands/suco/pkg/compiler/lexer"
	"github.com/agenthands/suco/pkg/report"
)

const usage = "Usage: suco [lex|repl] ..."

const (
	exitOK = iota
	exitError
	exitDiagnostics
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, usage)
		return exitError
	}

	switch args[0] {
	case "lex":
		return runLex(args[1:], stdout, stderr)
	case "repl":
		return runRepl(stdout, stderr)
	default:
		fmt.Fprintln(stderr, "Unknown command:", args[0])
		fmt.Fprintln(stderr, usage)
		return exitError
	}
}

func runLex(args []string, stdout, stderr io.Writer) int {
	lexCmd := flag.NewFlagSet("lex", flag.ContinueOnError)
	lexCmd.SetOutput(stderr)
	format := lexCmd.String("format", "text", "Output format: text, json or dump")
	suggest := lexCmd.Bool("suggest", false, "Hint keywords for identifiers that look misspelled")
	quiet := lexCmd.Bool("quiet", false, "Do not log unexpected characters")

	if len(args) < 1 {
		fmt.Fprintln(stderr, "Usage: suco lex <source.suco> [-format text|json|dump] [-suggest] [-quiet]")
		return exitError
	}
	sourcePath := args[0]
	if err := lexCmd.Parse(args[1:]); err != nil {
		return exitError
	}

	f, err := report.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %v\n", err)
		return exitError
	}

	s, err := lexer.NewScanner(src)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	if !*quiet {
		s.SetLogger(log.New(stderr, "suco: ", 0))
	}
	toks := s.Run()

	if err := report.Write(stdout, f, toks, report.Options{Suggest: *suggest}); err != nil {
		fmt.Fprintf(stderr, "Error writing report: %v\n", err)
		return exitError
	}

	if err := s.Err(); err != nil {
		var d lexer.Diagnostic
		if errors.As(err, &d) {
			return exitDiagnostics
		}
		return exitError
	}
	return exitOK
}
