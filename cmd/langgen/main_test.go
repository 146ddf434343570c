/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main_test.go
Description: End-to-end tests for the langgen commands.
*/

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/langgen/pkg/corpus"
	"github.com/kleascm/langgen/pkg/language/catalog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "Gomez*")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Gomez12"))
	assert.True(t, strings.HasPrefix(lines[1], "Gomez2 "))
	assert.True(t, strings.HasPrefix(lines[2], "Gomez6"))

	_, err = run(t, "list", "Nothing*")
	assert.Error(t, err)
}

func TestEnumerate(t *testing.T) {
	out, err := run(t, "enumerate", "Dyck", "-k", "3")
	require.NoError(t, err)
	assert.Equal(t, "()\n(())\n()()\n", out)

	out, err = run(t, "enumerate", "Man", "-k", "50")
	require.NoError(t, err)
	assert.Equal(t, "a\nam\nan\nmam\nman\n", out)

	out, err = run(t, "enumerate", "AnBm", "-k", "3")
	require.NoError(t, err)
	assert.Equal(t, "abb\nabbb\nabbbb\n", out)

	_, err = run(t, "enumerate", "NoSuchLanguage")
	assert.ErrorIs(t, err, catalog.ErrUnknownLanguage)
}

func TestSample(t *testing.T) {
	out, err := run(t, "sample", "Man", "-n", "200", "--seed", "3", "--workers", "2", "--format", "json")
	require.NoError(t, err)

	d, err := corpus.Read(strings.NewReader(out), corpus.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "Man", d.Language)
	assert.Equal(t, 200, d.N)

	again, err := run(t, "sample", "Man", "-n", "200", "--seed", "3", "--workers", "2", "--format", "json")
	require.NoError(t, err)
	d2, err := corpus.Read(strings.NewReader(again), corpus.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, d.Output, d2.Output)

	dir := t.TempDir()
	_, err = run(t, "sample", "AnBn", "-n", "10", "--format", "yaml", "--save-dir", dir)
	require.NoError(t, err)
	saved, err := filepath.Glob(filepath.Join(dir, "*_AnBn_*.yaml"))
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	_, err = run(t, "sample", "Man", "--format", "csv")
	assert.Error(t, err)
}

const anbnGrammar = `name: AnBn
start: S
terminals: [a, b]
rules:
  - {lhs: S, template: "a%sb", children: [S], weight: 2}
  - {lhs: S, template: "ab", weight: 1}
`

func TestGrammarFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anbn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(anbnGrammar), 0644))

	out, err := run(t, "check", "--grammar", path)
	require.NoError(t, err)
	assert.Contains(t, out, "AnBn: 2 rules")
	assert.Contains(t, out, `"ab" "aabb" "aaabbb"`)

	out, err = run(t, "enumerate", path, "-k", "2")
	require.NoError(t, err)
	assert.Equal(t, "ab\naabb\n", out)
}

func TestCheckCatalog(t *testing.T) {
	out, err := run(t, "check", "--max-rejections", "10000")
	require.NoError(t, err)
	n := len(catalog.Names())
	assert.Contains(t, out, "languages passed")
	assert.Equal(t, n, strings.Count(out, "PASSED"))
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "report", "AnBn", "-n", "300", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, ".md")

	md, err := filepath.Glob(filepath.Join(dir, "AnBn_*.md"))
	require.NoError(t, err)
	assert.Len(t, md, 1)
	html, err := filepath.Glob(filepath.Join(dir, "AnBn_*.html"))
	require.NoError(t, err)
	assert.Len(t, html, 1)
}
