package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.suco")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestLexText(t *testing.T) {
	path := writeSource(t, "def f(x: 32I) { return x; }\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"lex", path}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "name: <def>\ttype: <TOKEN_DEF>\n")
	assert.Contains(t, stdout.String(), "name: <32I>\ttype: <TOKEN_INT32>\n")
	assert.Equal(t, 12, bytes.Count(stdout.Bytes(), []byte("\n")))
}

func TestLexJSONWithSuggest(t *testing.T) {
	path := writeSource(t, "retrun 1;")
	var stdout, stderr bytes.Buffer

	code := run([]string{"lex", path, "-format", "json", "-suggest"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), `"kind": "TOKEN_INTCONST"`)
}

func TestLexDiagnostics(t *testing.T) {
	path := writeSource(t, "let a = 1 @ 2;")
	var stdout, stderr bytes.Buffer

	code := run([]string{"lex", path}, &stdout, &stderr)
	assert.Equal(t, exitDiagnostics, code)
	assert.Contains(t, stderr.String(), "suco: lexer: unexpected character '@' at offset 10 (line 1)")
	assert.Contains(t, stdout.String(), "name: <2>\ttype: <TOKEN_INTCONST>\n")

	stderr.Reset()
	code = run([]string{"lex", path, "-quiet"}, io.Discard, &stderr)
	assert.Equal(t, exitDiagnostics, code)
	assert.Empty(t, stderr.String())
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"build"}},
		{"missing file argument", []string{"lex"}},
		{"missing file", []string{"lex", filepath.Join(t.TempDir(), "nope.suco")}},
		{"bad format", []string{"lex", writeSource(t, "x"), "-format", "xml"}},
		{"bad flag", []string{"lex", writeSource(t, "x"), "-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, exitError, run(tt.args, io.Discard, &stderr))
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestLexEmptyFile(t *testing.T) {
	path := writeSource(t, "")
	var stdout bytes.Buffer

	assert.Equal(t, exitOK, run([]string{"lex", path}, &stdout, io.Discard))
	assert.Empty(t, stdout.String())
}

type scriptedPrompter struct {
	lines   []string
	history []string
}

func (p *scriptedPrompter) Prompt(string) (string, error) {
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *scriptedPrompter) AppendHistory(s string) {
	p.history = append(p.history, s)
}

func TestReplLoop(t *testing.T) {
	p := &scriptedPrompter{lines: []string{"let x = 0U;", "", "whle @", ":quit", "never read"}}
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitOK, replLoop(p, &stdout, &stderr))
	assert.Equal(t, []string{"let x = 0U;", "whle @"}, p.history)
	assert.Contains(t, stdout.String(), "name: <0U>\ttype: <TOKEN_UINT0>\n")
	assert.Contains(t, stdout.String(), "name: <whle>\ttype: <TOKEN_ID>\thint: <while>\n")
	assert.Contains(t, stderr.String(), "unexpected character '@'")
	assert.Equal(t, []string{"never read"}, p.lines)
}

func TestReplLoopEOF(t *testing.T) {
	p := &scriptedPrompter{lines: []string{"x"}}
	var stdout bytes.Buffer

	assert.Equal(t, exitOK, replLoop(p, &stdout, io.Discard))
	assert.Contains(t, stdout.String(), "name: <x>\ttype: <TOKEN_ID>\n")
}
