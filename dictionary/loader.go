package dictionary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when a dictionary document is not a
// mapping of keys to lists of synonyms.
var ErrInvalidDocument = errors.New("dictionary: invalid document")

//go:embed dictionary.json
var defaultData []byte

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the dictionary shipped with the module. It is parsed on
// first use and shared afterwards.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := Parse(defaultData)
		if err != nil {
			panic(fmt.Sprintf("dictionary: embedded dictionary is malformed: %v", err))
		}

		defaultDict = d
	})

	return defaultDict
}

// LoadFile loads and parses a dictionary document from the given path.
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary file %s: %w", path, err)
	}

	return d, nil
}

// Parse parses a JSON or YAML dictionary document. The document is decoded
// through a yaml.Node so that key order survives.
func Parse(data []byte) (*Dictionary, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of keys to synonyms", ErrInvalidDocument, root.Line)
	}

	keys := make([]string, 0, len(root.Content)/2)
	synonyms := make(map[string][]string, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var list []string
		if err := valueNode.Decode(&list); err != nil {
			return nil, fmt.Errorf("%w: line %d: synonyms of %q must be a list of strings", ErrInvalidDocument, valueNode.Line, keyNode.Value)
		}

		if _, seen := synonyms[keyNode.Value]; !seen {
			keys = append(keys, keyNode.Value)
		}

		synonyms[keyNode.Value] = append(synonyms[keyNode.Value], list...)
	}

	return New(keys, synonyms), nil
}
