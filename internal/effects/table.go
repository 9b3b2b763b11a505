package effects

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

// SubtypeDef describes one subtype of an effect type
type SubtypeDef struct {
	Mnemonic string `yaml:"mnemonic"`
	Option   bool   `yaml:"option,omitempty"` // mnemonic takes an {option}
}

// TypeDef describes an effect type and the subtypes nested under it
type TypeDef struct {
	Mnemonic string                `yaml:"mnemonic"`
	Subtypes map[string]SubtypeDef `yaml:"subtypes"`
}

// Table is the immutable type → subtype → mnemonic classification table
type Table struct {
	types map[string]TypeDef
}

type tableFile struct {
	Types map[string]TypeDef `yaml:"types"`
}

//go:embed data/types.yaml
var defaultTableYAML []byte

var defaultTable = mustLoadDefaultTable()

// DefaultTable returns the table shipped with the package
func DefaultTable() *Table {
	return defaultTable
}

// LoadTable reads a table from YAML
func LoadTable(r io.Reader) (*Table, error) {
	var file tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode type table: %w", err)
	}
	if len(file.Types) == 0 {
		return nil, fmt.Errorf("type table defines no types")
	}

	types := make(map[string]TypeDef, len(file.Types))
	for key, def := range file.Types {
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("type table: blank type key")
		}
		if def.Mnemonic == "" {
			return nil, fmt.Errorf("type table: type %q has no mnemonic", key)
		}
		subtypes := make(map[string]SubtypeDef, len(def.Subtypes))
		for subKey, sub := range def.Subtypes {
			if sub.Mnemonic == "" {
				return nil, fmt.Errorf("type table: subtype %s.%s has no mnemonic", key, subKey)
			}
			subtypes[subKey] = sub
		}
		types[key] = TypeDef{Mnemonic: def.Mnemonic, Subtypes: subtypes}
	}
	return &Table{types: types}, nil
}

// Type looks up an effect type
func (t *Table) Type(effectType string) (TypeDef, error) {
	def, ok := t.types[effectType]
	if !ok {
		return TypeDef{}, errors.UnknownTagKeyf("unknown effect type %q", effectType)
	}
	return def, nil
}

// Subtype looks up a subtype nested under an effect type
func (t *Table) Subtype(effectType, subtype string) (SubtypeDef, error) {
	def, err := t.Type(effectType)
	if err != nil {
		return SubtypeDef{}, err
	}
	sub, ok := def.Subtypes[subtype]
	if !ok {
		return SubtypeDef{}, errors.UnknownTagKeyf("unknown subtype %q for effect type %q", subtype, effectType)
	}
	return sub, nil
}

// Lookup returns the mnemonics of a type and one of its subtypes
func (t *Table) Lookup(effectType, subtype string) (TypeDef, SubtypeDef, error) {
	def, err := t.Type(effectType)
	if err != nil {
		return TypeDef{}, SubtypeDef{}, err
	}
	sub, err := t.Subtype(effectType, subtype)
	if err != nil {
		return TypeDef{}, SubtypeDef{}, err
	}
	return def, sub, nil
}

// Types returns the type keys in sorted order
func (t *Table) Types() []string {
	out := make([]string, 0, len(t.types))
	for key := range t.types {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func mustLoadDefaultTable() *Table {
	table, err := LoadTable(bytes.NewReader(defaultTableYAML))
	if err != nil {
		panic(err)
	}
	return table
}
