package instance

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qkp/qkp"
)

var (
	// ErrInvalidSuite is returned for undecodable documents, unnamed or
	// duplicated cases, and cases whose instance fails qkp validation.
	ErrInvalidSuite = errors.New("instance: invalid suite")

	// ErrCaseNotFound is returned by Suite.Case for an unknown name.
	ErrCaseNotFound = errors.New("instance: case not found")
)

//go:embed default_suite.yaml
var defaultSuite []byte

// Suite is an ordered list of named cases.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Case is one named instance with an optional recorded answer.
type Case struct {
	Name     string      `yaml:"name"`
	Weights  []int       `yaml:"weights,flow"`
	Profits  [][]float64 `yaml:"profits"`
	Capacity int         `yaml:"capacity"`
	Expected *Expected   `yaml:"expected,omitempty"`
}

// Expected is the recorded answer of a case.
type Expected struct {
	Selected []int   `yaml:"selected,flow"`
	Profit   float64 `yaml:"profit"`
}

// Instance returns the solver input of c. Slices are shared, not copied;
// solvers never write to them.
func (c Case) Instance() qkp.Instance {
	return qkp.Instance{Weights: c.Weights, Profits: c.Profits, Capacity: c.Capacity}
}

// Case returns the case called name.
func (s *Suite) Case(name string) (Case, error) {
	for _, c := range s.Cases {
		if c.Name == name {
			return c, nil
		}
	}

	return Case{}, fmt.Errorf("%w: %q", ErrCaseNotFound, name)
}

// Names lists case names in suite order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.Cases))
	for i, c := range s.Cases {
		names[i] = c.Name
	}

	return names
}

// Validate checks names and every instance. Expected selections must be
// sorted, in range and feasible, and the recorded profit must equal their
// objective within qkp.Check's tolerance.
func (s *Suite) Validate() error {
	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("%w: case %d has no name", ErrInvalidSuite, i)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: duplicate case %q", ErrInvalidSuite, c.Name)
		}
		seen[c.Name] = struct{}{}

		inst := c.Instance()
		if err := inst.Validate(); err != nil {
			return fmt.Errorf("%w: case %q: %w", ErrInvalidSuite, c.Name, err)
		}
		if c.Expected == nil {
			continue
		}
		if !slices.IsSorted(c.Expected.Selected) {
			return fmt.Errorf("%w: case %q: expected selection not sorted", ErrInvalidSuite, c.Name)
		}
		err := qkp.Check(inst, qkp.Solution{Selected: c.Expected.Selected, Profit: c.Expected.Profit})
		if err != nil {
			return fmt.Errorf("%w: case %q: expected answer: %w", ErrInvalidSuite, c.Name, err)
		}
	}

	return nil
}

// Decode reads and validates a suite. Unknown keys are rejected.
func Decode(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSuite)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidSuite, err)
	}
	for i := range s.Cases {
		if s.Cases[i].Expected != nil && s.Cases[i].Expected.Selected == nil {
			s.Cases[i].Expected.Selected = []int{}
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load decodes the suite stored at path.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Encode writes s as YAML with two-space indentation.
func Encode(w io.Writer, s *Suite) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}

	return enc.Close()
}

// Save encodes s to path, creating or truncating the file.
func Save(path string, s *Suite) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(f, s); err != nil {
		_ = f.Close()

		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// Default returns a fresh copy of the embedded documented suite.
func Default() *Suite {
	s, err := Decode(bytes.NewReader(defaultSuite))
	if err != nil {
		panic(err)
	}

	return s
}
