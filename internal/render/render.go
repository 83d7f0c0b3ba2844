// SPDX-License-Identifier: MIT
// Package: lvseq/internal/render
//
// render.go - output formats for generated sequences.
//
// Structured formats (json, yaml, toml) carry every term as a decimal string,
// so arbitrarily large terms survive consumers with 64-bit or float numbers.

// Package render writes sequences and the registry catalog for the CLI.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ErrUnknownFormat is returned for a format outside the supported set.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, JSON, YAML, TOML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Sequence is one generated result together with its registry metadata.
type Sequence struct {
	ID    string // run id, empty for unsaved results
	Name  string
	Kind  string
	OEIS  string
	Terms []*big.Int
}

// document is the structured-format shape of a Sequence.
type document struct {
	ID    string   `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name  string   `json:"name" yaml:"name" toml:"name"`
	Kind  string   `json:"kind" yaml:"kind" toml:"kind"`
	OEIS  string   `json:"oeis,omitempty" yaml:"oeis,omitempty" toml:"oeis,omitempty"`
	Count int      `json:"count" yaml:"count" toml:"count"`
	Terms []string `json:"terms" yaml:"terms" toml:"terms"`
}

func newDocument(s Sequence) document {
	terms := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = t.String()
	}

	return document{ID: s.ID, Name: s.Name, Kind: s.Kind, OEIS: s.OEIS, Count: len(terms), Terms: terms}
}

// Option customizes rendering.
type Option func(*renderConfig)

type renderConfig struct {
	locale string
}

// WithLocale sets the BCP 47 tag used for digit grouping in text output.
// Panics on an empty tag.
func WithLocale(tag string) Option {
	if tag == "" {
		panic("render: WithLocale(\"\")")
	}
	return func(c *renderConfig) {
		c.locale = tag
	}
}

// Write renders s to w in format f.
func Write(w io.Writer, f Format, s Sequence, opts ...Option) error {
	cfg := renderConfig{locale: "en"}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch f {
	case Text:
		return writeText(w, s, cfg)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(s))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(s)); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(newDocument(s))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
