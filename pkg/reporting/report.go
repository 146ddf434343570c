/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Corpus reports. A Report summarizes one sampled corpus (language,
sample size, alpha, summary statistics and the most frequent strings) as markdown,
which goldmark renders to a standalone HTML page. Both are written side by side
as <language>_<timestamp>.md and .html.
*/

package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	texttemplate "text/template"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/kleascm/langgen/pkg/corpus"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultTop is how many frequent strings a report lists
const DefaultTop = 25

// Row is one line of the frequency table
type Row struct {
	Rank      int
	String    string
	Count     int
	Frequency float64
}

// Stat is one sampler statistic
type Stat struct {
	Key   string
	Value string
}

// Report holds everything rendered for one corpus
type Report struct {
	Title       string
	SessionID   uuid.UUID
	CorpusID    uuid.UUID
	GeneratedAt time.Time
	Language    string
	Alpha       float64
	Stats       corpus.Stats
	Top         []Row
	Canonical   []string
	Sampler     []Stat
}

// Paths are the files a Generate call wrote
type Paths struct {
	Markdown string
	HTML     string
}

// Generator builds and writes corpus reports
type Generator struct {
	outputDir string
	sessionID uuid.UUID
	top       int
	logger    *logrus.Logger
	markdown  *texttemplate.Template
	page      *template.Template
	md        goldmark.Markdown
}

// NewGenerator creates a generator writing into outputDir. All reports from one
// generator share a session id. A nil logger is silent.
func NewGenerator(outputDir string, logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	return &Generator{
		outputDir: outputDir,
		sessionID: uuid.New(),
		top:       DefaultTop,
		logger:    logger,
		markdown: texttemplate.Must(texttemplate.New("report").Funcs(texttemplate.FuncMap{
			"cell": cell,
		}).Parse(markdownTemplate)),
		page: template.Must(template.New("page").Parse(pageTemplate)),
		md:   goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// SessionID returns the id shared by this generator's reports
func (g *Generator) SessionID() uuid.UUID {
	return g.sessionID
}

// SetTop changes how many frequent strings are listed
func (g *Generator) SetTop(n int) {
	if n > 0 {
		g.top = n
	}
}

// Build assembles a report for d. canonical and samplerStats may be nil.
func (g *Generator) Build(d *corpus.Datum, canonical []string, samplerStats map[string]interface{}) *Report {
	r := &Report{
		Title:       "Corpus report: " + d.Language,
		SessionID:   g.sessionID,
		CorpusID:    d.ID,
		GeneratedAt: time.Now(),
		Language:    d.Language,
		Alpha:       d.Alpha,
		Stats:       d.Stats(),
		Canonical:   canonical,
	}

	for i, e := range d.Sorted() {
		if i == g.top {
			break
		}
		r.Top = append(r.Top, Row{
			Rank:      i + 1,
			String:    e.String,
			Count:     e.Count,
			Frequency: d.Probability(e.String),
		})
	}

	keys := make([]string, 0, len(samplerStats))
	for k := range samplerStats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.Sampler = append(r.Sampler, Stat{Key: k, Value: fmt.Sprint(samplerStats[k])})
	}
	return r
}

// Markdown renders r as markdown
func (g *Generator) Markdown(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.markdown.Execute(&buf, r); err != nil {
		return nil, fmt.Errorf("failed to execute markdown template: %w", err)
	}
	return buf.Bytes(), nil
}

// HTML renders markdown source as a standalone page
func (g *Generator) HTML(title string, source []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := g.md.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	var page bytes.Buffer
	err := g.page.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("failed to execute page template: %w", err)
	}
	return page.Bytes(), nil
}

// Generate renders r and writes both files into the output directory
func (g *Generator) Generate(r *Report) (*Paths, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	source, err := g.Markdown(r)
	if err != nil {
		return nil, err
	}
	page, err := g.HTML(r.Title, source)
	if err != nil {
		return nil, err
	}

	base := filepath.Join(g.outputDir, fmt.Sprintf("%s_%s", fileSafe(r.Language), r.GeneratedAt.Format("20060102_150405")))
	paths := &Paths{Markdown: base + ".md", HTML: base + ".html"}

	if err := os.WriteFile(paths.Markdown, source, 0644); err != nil {
		return nil, fmt.Errorf("failed to write markdown report: %w", err)
	}
	if err := os.WriteFile(paths.HTML, page, 0644); err != nil {
		return nil, fmt.Errorf("failed to write html report: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"language": r.Language,
		"session":  r.SessionID,
		"markdown": paths.Markdown,
		"html":     paths.HTML,
	}).Info("Report generated")
	return paths, nil
}

// cell renders s as an inline code span safe inside a table. The empty string
// is shown as ε.
func cell(s string) string {
	if s == "" {
		return "ε"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

// fileSafe maps a language name onto a file name fragment
func fileSafe(name string) string {
	out := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			return r
		}
		return '_'
	}, name)
	if out == "" {
		return "corpus"
	}
	return out
}
