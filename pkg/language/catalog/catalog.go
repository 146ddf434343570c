/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: catalog.go
Description: Registry of the built-in stimulus languages. Languages are built on
demand so every caller gets its own instance and its own memo caches. Names can be
selected with glob patterns such as "AnB*" or "Gomez{2,6}".
*/

package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gobwas/glob"
	"github.com/kleascm/langgen/pkg/language"
)

// ErrUnknownLanguage is returned for names that are not registered
var ErrUnknownLanguage = errors.New("catalog: unknown language")

// Entry describes one registered language
type Entry struct {
	Name        string
	Description string
	build       func(cfg config) (language.Language, error)
}

type config struct {
	maxRejections int
}

// Option configures how catalog languages are built
type Option func(*config)

// WithMaxRejections sets the retry cap of rejection-sampled languages
func WithMaxRejections(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxRejections = n
		}
	}
}

func (c config) rejections() language.Option {
	return language.WithMaxRejections(c.maxRejections)
}

var registry = map[string]Entry{}

func register(name, description string, build func(cfg config) (language.Language, error)) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("catalog: %s registered twice", name))
	}
	registry[name] = Entry{Name: name, Description: description, build: build}
}

// Get builds the named language
func Get(name string, opts ...Option) (language.Language, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	cfg := config{maxRejections: language.DefaultMaxRejections}
	for _, opt := range opts {
		opt(&cfg)
	}
	return e.build(cfg)
}

// Lookup returns the registry entry for name
func Lookup(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Names returns every registered name in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Match returns the sorted names matching a glob pattern.
// An empty pattern matches everything.
func Match(pattern string) ([]string, error) {
	if pattern == "" {
		return Names(), nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	var out []string
	for _, n := range Names() {
		if g.Match(n) {
			out = append(out, n)
		}
	}
	return out, nil
}
