/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Tests for corpus report building and markdown/HTML output.
*/

package reporting_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/langgen/pkg/corpus"
	"github.com/kleascm/langgen/pkg/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datum() *corpus.Datum {
	d := corpus.NewDatum("AnBn", 0.99)
	d.Add("ab", 6)
	d.Add("aabb", 3)
	d.Add("aaabbb", 1)
	return d
}

// TestBuild checks the assembled report fields
func TestBuild(t *testing.T) {
	g := reporting.NewGenerator(t.TempDir(), nil)
	g.SetTop(2)

	r := g.Build(datum(), []string{"ab", "aabb"}, map[string]interface{}{"workers": 4, "draws": 10})
	assert.Equal(t, "AnBn", r.Language)
	assert.Equal(t, g.SessionID(), r.SessionID)
	assert.Equal(t, 10, r.Stats.N)
	require.Len(t, r.Top, 2)
	assert.Equal(t, reporting.Row{Rank: 1, String: "ab", Count: 6, Frequency: 0.6}, r.Top[0])
	assert.Equal(t, "aabb", r.Top[1].String)
	assert.Equal(t, []reporting.Stat{{Key: "draws", Value: "10"}, {Key: "workers", Value: "4"}}, r.Sampler)
}

// TestMarkdown checks the markdown layout
func TestMarkdown(t *testing.T) {
	g := reporting.NewGenerator(t.TempDir(), nil)
	md, err := g.Markdown(g.Build(datum(), []string{"ab"}, nil))
	require.NoError(t, err)

	out := string(md)
	assert.True(t, strings.HasPrefix(out, "# Corpus report: AnBn\n"))
	assert.Contains(t, out, "| Language | AnBn |")
	assert.Contains(t, out, "| Samples (N) | 10 |")
	assert.Contains(t, out, "| 1 | `ab` | 6 | 0.6000 |")
	assert.Contains(t, out, "| 3 | `aaabbb` | 1 | 0.1000 |")
	assert.Contains(t, out, "## Canonical strings")
	assert.NotContains(t, out, "## Sampler")
}

// TestMarkdownEmptyCorpus checks the placeholder for an empty table
func TestMarkdownEmptyCorpus(t *testing.T) {
	g := reporting.NewGenerator(t.TempDir(), nil)
	d := corpus.NewDatum("Dyck", 0.99)
	d.Add("", 1)

	md, err := g.Markdown(g.Build(d, nil, nil))
	require.NoError(t, err)
	assert.Contains(t, string(md), "| 1 | ε | 1 | 1.0000 |")

	md, err = g.Markdown(g.Build(corpus.NewDatum("Dyck", 0.99), nil, nil))
	require.NoError(t, err)
	assert.Contains(t, string(md), "_No strings were sampled._")
}

// TestGenerate checks both files are written and the HTML is rendered
func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	g := reporting.NewGenerator(dir, nil)

	paths, err := g.Generate(g.Build(datum(), nil, nil))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(paths.Markdown))
	assert.True(t, strings.HasPrefix(filepath.Base(paths.Markdown), "AnBn_"))
	assert.Equal(t, ".md", filepath.Ext(paths.Markdown))
	assert.Equal(t, ".html", filepath.Ext(paths.HTML))

	page, err := os.ReadFile(paths.HTML)
	require.NoError(t, err)
	html := string(page)
	assert.Contains(t, html, "<title>Corpus report: AnBn</title>")
	assert.Contains(t, html, "<h1>Corpus report: AnBn</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<code>aabb</code>")

	md, err := os.ReadFile(paths.Markdown)
	require.NoError(t, err)
	assert.Contains(t, string(md), "| Distinct strings | 3 |")
}
