// Package matrixfile reads and writes transition matrices as YAML, TOML or
// JSON documents:
//
//	name: land of oz
//	epsilon: 1e-9        # optional, overrides matrix.DefaultEpsilon
//	states: [rain, nice, snow]
//	matrix:
//	  - [0.5, 0.25, 0.25]
//	  - [0.5, 0, 0.5]
//	  - [0.25, 0.25, 0.5]
//
// The format is chosen by file extension.
package matrixfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dtmc/markov"
	"github.com/katalvlaran/dtmc/matrix"
)

// Format is a document encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

var (
	// ErrUnknownFormat is returned for an extension or format name not in
	// {yaml, yml, toml, json}.
	ErrUnknownFormat = errors.New("matrixfile: unknown format")

	// ErrEmptyMatrix is returned when a document has no matrix rows.
	ErrEmptyMatrix = errors.New("matrixfile: matrix is empty")

	// ErrLabelCount is returned when states is set but its length differs
	// from the number of rows.
	ErrLabelCount = errors.New("matrixfile: states and matrix disagree in size")

	// ErrInvalidEpsilon is returned for a negative, NaN or infinite epsilon.
	ErrInvalidEpsilon = errors.New("matrixfile: epsilon must be finite and non-negative")
)

// Document is the on-disk shape of a transition matrix.
type Document struct {
	Name    string      `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Epsilon float64     `yaml:"epsilon,omitempty" toml:"epsilon,omitempty" json:"epsilon,omitempty"`
	States  []string    `yaml:"states,omitempty" toml:"states,omitempty" json:"states,omitempty"`
	Matrix  [][]float64 `yaml:"matrix" toml:"matrix" json:"matrix"`
}

// ParseFormat maps a format name or file extension (with or without the
// leading dot) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Unmarshal decodes data in the given format and checks the document shape.
// Stochasticity is not checked here; see Document.Chain.
func Unmarshal(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, doc)
	case TOML:
		err = toml.Unmarshal(data, doc)
	case JSON:
		err = json.Unmarshal(data, doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if len(doc.Matrix) == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(doc.States) > 0 && len(doc.States) != len(doc.Matrix) {
		return nil, fmt.Errorf("%w: %d states, %d rows", ErrLabelCount, len(doc.States), len(doc.Matrix))
	}
	if err = checkEpsilon(doc.Epsilon); err != nil {
		return nil, err
	}

	return doc, nil
}

// Marshal encodes doc in the given format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(doc)
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case JSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save encodes doc by the extension of path and writes it.
func Save(path string, doc *Document) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Chain validates the document as a transition matrix. The document's
// epsilon applies when set; opts are applied after it and win.
func (d *Document) Chain(opts ...matrix.Option) (*markov.Chain, error) {
	if err := checkEpsilon(d.Epsilon); err != nil {
		return nil, err
	}
	all := make([]matrix.Option, 0, len(opts)+1)
	if d.Epsilon > 0 {
		all = append(all, matrix.WithEpsilon(d.Epsilon))
	}
	all = append(all, opts...)

	return markov.New(d.Matrix, all...)
}

// checkEpsilon keeps user-supplied tolerances away from matrix.WithEpsilon,
// which panics on them.
func checkEpsilon(eps float64) error {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidEpsilon, eps)
	}
	return nil
}

// Label returns the name of state i, or its index when unnamed.
func (d *Document) Label(i int) string {
	if i >= 0 && i < len(d.States) && d.States[i] != "" {
		return d.States[i]
	}
	return fmt.Sprint(i)
}
