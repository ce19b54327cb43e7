// Package config loads the list fixtures diffed by the listdiff command.
//
// A fixture holds the old and new list and the options to diff them with:
//
//	detect_moves: true
//	final_positions: false
//	old:
//	  - {key: id1, value: Alice}
//	  - id2            # shorthand for {key: id2, value: id2}
//	new:
//	  - {key: id1, value: Alice Smith}
//	expect:
//	  - Remove(1,1)
//	  - Change(0,1)
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dacharyc/listdiff"
)

// Item is one list entry. Key decides identity, Value decides contents.
type Item struct {
	Key   string `yaml:"key" validate:"required"`
	Value string `yaml:"value"`
}

// UnmarshalYAML accepts either a mapping or a plain scalar, the latter
// being used as both key and value.
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		it.Key = node.Value
		it.Value = node.Value
		return nil
	}
	type plain Item
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*it = Item(p)
	return nil
}

// Fixture is a pair of lists plus diff options.
type Fixture struct {
	Old            []Item   `yaml:"old" validate:"dive"`
	New            []Item   `yaml:"new" validate:"dive"`
	DetectMoves    *bool    `yaml:"detect_moves,omitempty"`
	FinalPositions bool     `yaml:"final_positions"`
	LogLevel       string   `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Expect         []string `yaml:"expect,omitempty"`
}

// MovesEnabled reports whether move detection is on. It defaults to true.
func (f *Fixture) MovesEnabled() bool {
	return f.DetectMoves == nil || *f.DetectMoves
}

// Callback returns a listdiff.Callback over the two lists of f.
func (f *Fixture) Callback() listdiff.Callback {
	return &listdiff.SliceCallback[Item]{
		Old:         f.Old,
		New:         f.New,
		SameItem:    func(a, b Item) bool { return a.Key == b.Key },
		SameContent: func(a, b Item) bool { return a.Value == b.Value },
	}
}

// OldKeys returns the keys of the old list in order.
func (f *Fixture) OldKeys() []string {
	return keys(f.Old)
}

// NewKeys returns the keys of the new list in order.
func (f *Fixture) NewKeys() []string {
	return keys(f.New)
}

func keys(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

// FromLines builds a fixture where every line is an item keyed by itself.
func FromLines(old, new []string) *Fixture {
	return &Fixture{Old: linesToItems(old), New: linesToItems(new)}
}

func linesToItems(lines []string) []Item {
	items := make([]Item, len(lines))
	for i, l := range lines {
		items[i] = Item{Key: l, Value: l}
	}
	return items
}

// Load reads and validates the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture '%s': %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a YAML fixture. source names the input in
// error messages.
func Parse(data []byte, source string) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML from '%s': %w", source, err)
	}
	if err := Validate(&f); err != nil {
		return nil, fmt.Errorf("invalid fixture '%s': %w", source, err)
	}
	return &f, nil
}

// Validate checks the struct tags of f and the syntax of its expectations.
func Validate(f *Fixture) error {
	validate := validator.New()
	if err := validate.Struct(f); err != nil {
		return err
	}
	for i, e := range f.Expect {
		if !strings.HasSuffix(e, ")") || !strings.Contains(e, "(") {
			return fmt.Errorf("expect[%d]: malformed update %q", i, e)
		}
	}
	return nil
}

// ReadLines reads a file into lines, dropping the trailing newline.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
