/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: export.go
Description: Serialization of corpora as text, JSON or YAML.
*/

package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects an export encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", name)
	}
}

// Write encodes d to w. Text output is one "count<TAB>string" line per entry,
// most frequent first.
func Write(w io.Writer, d *Datum, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		for _, e := range d.Sorted() {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", e.Count, e.String); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Save writes d into dir as <timestamp>_<language>_<id>.<format> and returns
// the file path. dir is created when missing.
func Save(dir string, d *Datum, format Format) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create corpus directory: %w", err)
	}

	ext := string(format)
	if format == FormatText {
		ext = "tsv"
	}
	name := fmt.Sprintf("%s_%s_%s.%s", d.CreatedAt.Format("2006-01-02_15-04-05"), d.Language, d.ID.String()[:8], ext)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create corpus file: %w", err)
	}
	if err := Write(f, d, format); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write corpus file: %w", err)
	}
	return path, f.Close()
}

// Read decodes a JSON or YAML corpus
func Read(r io.Reader, format Format) (*Datum, error) {
	var d Datum
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode corpus json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode corpus yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot read %q corpora", format)
	}
	if d.Output == nil {
		d.Output = make(map[string]int)
	}
	return &d, nil
}
