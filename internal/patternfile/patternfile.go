// Package patternfile loads pattern chains described as structured YAML or
// TOML documents. A document nests nodes the same way the Go constructors
// do: every node names its kind, its parameters and optionally its rest.
//
//	name: text files
//	pattern:
//	  kind: lit
//	  text: te
//	  rest:
//	    kind: any
//	    rest: {kind: lit, text: .txt}
//	cases:
//	  - {text: text.txt, match: true, captures: [te, xt, .txt]}
package patternfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/twinfer/gomatch/internal/chain"
)

var (
	// ErrUnknownFormat is returned by Load for unsupported file extensions.
	ErrUnknownFormat = errors.New("unknown pattern file format")
	// ErrEmptyDocument is returned when a document has no pattern.
	ErrEmptyDocument = errors.New("pattern document is empty")
	// ErrUnknownKind is returned for a node kind that does not exist.
	ErrUnknownKind = errors.New("unknown node kind")
	// ErrBadBound is returned when a range bound is not a single character.
	ErrBadBound = errors.New("range bound must be a single character")
	// ErrMissingGuard is returned for a not node without a guard.
	ErrMissingGuard = errors.New("not node needs a guard")
	// ErrTrailingRest is returned for an end node that has a rest.
	ErrTrailingRest = errors.New("end node cannot have a rest")
)

// Format identifies a document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Node kinds.
const (
	KindLit    = "lit"
	KindSet    = "set"
	KindRange  = "range"
	KindNot    = "not"
	KindAny    = "any"
	KindEither = "either"
	KindEnd    = "end"
)

// Document is a named pattern with optional example cases.
type Document struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
	Pattern     *Spec  `yaml:"pattern" toml:"pattern"`
	Cases       []Case `yaml:"cases,omitempty" toml:"cases,omitempty"`
}

// Spec describes one node and, through Rest, the remainder of its chain.
type Spec struct {
	Kind    string `yaml:"kind" toml:"kind"`
	Text    string `yaml:"text,omitempty" toml:"text,omitempty"`
	Chars   string `yaml:"chars,omitempty" toml:"chars,omitempty"`
	Low     string `yaml:"low,omitempty" toml:"low,omitempty"`
	High    string `yaml:"high,omitempty" toml:"high,omitempty"`
	Guard   *Spec  `yaml:"guard,omitempty" toml:"guard,omitempty"`
	Options []Spec `yaml:"options,omitempty" toml:"options,omitempty"`
	Rest    *Spec  `yaml:"rest,omitempty" toml:"rest,omitempty"`
}

// Case is an input together with the expected outcome.
type Case struct {
	Text     string   `yaml:"text" toml:"text"`
	Match    bool     `yaml:"match" toml:"match"`
	Captures []string `yaml:"captures,omitempty" toml:"captures,omitempty"`
}

// DetectFormat picks the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyDocument
			}
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("TOML parse error: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if doc.Pattern == nil {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

// Build constructs the document's pattern chain.
func (d *Document) Build() (chain.Node, error) {
	if d.Pattern == nil {
		return chain.Node{}, ErrEmptyDocument
	}
	return d.Pattern.Build()
}

// Build constructs the chain described by s. Errors name the offending node
// by its path from the root, e.g. "pattern.rest.options[1]".
func (s *Spec) Build() (chain.Node, error) {
	return s.build("pattern")
}

func (s *Spec) build(path string) (chain.Node, error) {
	var rest chain.Node
	if s.Rest != nil {
		r, err := s.Rest.build(path + ".rest")
		if err != nil {
			return chain.Node{}, err
		}
		rest = r
	}

	switch strings.ToLower(s.Kind) {
	case KindLit:
		return chain.Lit(s.Text, rest), nil

	case KindSet:
		return chain.Set(s.Chars, rest), nil

	case KindRange:
		low, err := bound(s.Low)
		if err != nil {
			return chain.Node{}, fmt.Errorf("%s.low: %w", path, err)
		}
		high, err := bound(s.High)
		if err != nil {
			return chain.Node{}, fmt.Errorf("%s.high: %w", path, err)
		}
		n, err := chain.Range(low, high, rest)
		if err != nil {
			return chain.Node{}, fmt.Errorf("%s: %w", path, err)
		}
		return n, nil

	case KindNot:
		if s.Guard == nil {
			return chain.Node{}, fmt.Errorf("%s: %w", path, ErrMissingGuard)
		}
		guard, err := s.Guard.build(path + ".guard")
		if err != nil {
			return chain.Node{}, err
		}
		return chain.Not(guard, rest), nil

	case KindAny:
		return chain.Any(rest), nil

	case KindEither:
		options := make([]chain.Node, 0, len(s.Options))
		for k := range s.Options {
			o, err := s.Options[k].build(fmt.Sprintf("%s.options[%d]", path, k))
			if err != nil {
				return chain.Node{}, err
			}
			options = append(options, o)
		}
		n, err := chain.Either(options, rest)
		if err != nil {
			return chain.Node{}, fmt.Errorf("%s: %w", path, err)
		}
		return n, nil

	case KindEnd:
		if s.Rest != nil {
			return chain.Node{}, fmt.Errorf("%s: %w", path, ErrTrailingRest)
		}
		return chain.Terminal(), nil

	default:
		return chain.Node{}, fmt.Errorf("%s: %w: %q", path, ErrUnknownKind, s.Kind)
	}
}

// Failure is a case whose outcome differs from the expectation.
type Failure struct {
	Case     Case
	Matched  bool
	Captures []string
}

func (f Failure) String() string {
	return fmt.Sprintf("%q: got match=%v captures=%q, want match=%v captures=%q",
		f.Case.Text, f.Matched, f.Captures, f.Case.Match, f.Case.Captures)
}

// Verify runs every case against n. Captures are only compared when the
// case lists them.
func (d *Document) Verify(n chain.Node) []Failure {
	var failures []Failure
	for _, c := range d.Cases {
		matched, caps := n.Match(c.Text)
		if matched != c.Match || (c.Captures != nil && !slices.Equal(c.Captures, caps)) {
			failures = append(failures, Failure{Case: c, Matched: matched, Captures: caps})
		}
	}
	return failures
}

func bound(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadBound, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
