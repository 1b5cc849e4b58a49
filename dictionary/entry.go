package dictionary

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Entry is one dictionary word.
type Entry struct {
	Word       string   `yaml:"word"`
	Type       string   `yaml:"type,omitempty"` // gismu, cmavo, lujvo, ...
	Rafsi      []string `yaml:"rafsi,omitempty"`
	Glosses    []string `yaml:"glosses,omitempty"`
	Definition string   `yaml:"definition"`
	Notes      string   `yaml:"notes,omitempty"`
}

// EntryReader yields dictionary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (Entry, error)
}

// YAMLReader reads entries from a YAML sequence of mappings, e.g.
//
//	[{word: bangu, type: gismu, rafsi: [ban, bau], definition: "$x_1$ is a language."}]
type YAMLReader struct {
	entries []Entry
	index   int
	err     error
}

// NewYAMLReader decodes YAML from reader. Decoding errors are reported by
// the first call to Next.
func NewYAMLReader(reader io.Reader) *YAMLReader {
	r := &YAMLReader{}
	if err := yaml.NewDecoder(reader).Decode(&r.entries); err != nil && err != io.EOF {
		r.err = fmt.Errorf("decoding dictionary YAML: %w", err)
	}
	return r
}

// Next returns the next entry, or io.EOF when exhausted.
func (r *YAMLReader) Next() (Entry, error) {
	if r.err != nil {
		return Entry{}, r.err
	}
	if r.index >= len(r.entries) {
		return Entry{}, io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e, nil
}

// SliceReader yields entries from memory.
type SliceReader struct {
	Entries []Entry
	index   int
}

// Next returns the next entry, or io.EOF when exhausted.
func (r *SliceReader) Next() (Entry, error) {
	if r.index >= len(r.Entries) {
		return Entry{}, io.EOF
	}
	e := r.Entries[r.index]
	r.index++
	return e, nil
}
