package magic

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

// Parameter is one range, duration or target option
type Parameter struct {
	Impact int    `yaml:"impact"`
	Label  string `yaml:"label"`
}

// Parameters holds the range, duration and target tables
type Parameters struct {
	Ranges    map[string]Parameter `yaml:"ranges"`
	Durations map[string]Parameter `yaml:"durations"`
	Targets   map[string]Parameter `yaml:"targets"`
}

// Effect is a magical effect definition as stored on spells and enchantments
type Effect struct {
	BaseLevel          int    `yaml:"baseLevel" json:"baseLevel"`
	Range              string `yaml:"range" json:"range"`
	Duration           string `yaml:"duration" json:"duration"`
	Target             string `yaml:"target" json:"target"`
	Complexity         int    `yaml:"complexity" json:"complexity"`
	TargetSize         int    `yaml:"targetSize" json:"targetSize"`
	EnhancingRequisite int    `yaml:"enhancingRequisite" json:"enhancingRequisite"`
	Technique          string `yaml:"technique" json:"technique"`
	TechniqueRequisite string `yaml:"techniqueRequisite,omitempty" json:"techniqueRequisite,omitempty"`
	Form               string `yaml:"form" json:"form"`
	FormRequisite      string `yaml:"formRequisite,omitempty" json:"formRequisite,omitempty"`
	ApplyFocus         bool   `yaml:"applyFocus,omitempty" json:"applyFocus,omitempty"`
}

//go:embed data/parameters.yaml
var defaultParametersYAML []byte

var defaultParameters = mustLoadDefaultParameters()

// DefaultParameters returns the tables shipped with the package
func DefaultParameters() *Parameters {
	return defaultParameters
}

// LoadParameters reads parameter tables from YAML
func LoadParameters(r io.Reader) (*Parameters, error) {
	var params Parameters
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&params); err != nil {
		return nil, fmt.Errorf("decode parameters: %w", err)
	}

	for name, table := range map[string]map[string]Parameter{
		"ranges":    params.Ranges,
		"durations": params.Durations,
		"targets":   params.Targets,
	} {
		if len(table) == 0 {
			return nil, fmt.Errorf("parameters: %s table is empty", name)
		}
		for key, p := range table {
			if p.Impact < 0 {
				return nil, fmt.Errorf("parameters: %s.%s has negative impact %d", name, key, p.Impact)
			}
		}
	}
	return &params, nil
}

// Range looks up a range parameter
func (p *Parameters) Range(key string) (Parameter, error) {
	return lookup(p.Ranges, "range", key)
}

// Duration looks up a duration parameter
func (p *Parameters) Duration(key string) (Parameter, error) {
	return lookup(p.Durations, "duration", key)
}

// Target looks up a target parameter
func (p *Parameters) Target(key string) (Parameter, error) {
	return lookup(p.Targets, "target", key)
}

// Keys returns the sorted keys of the named table
func (p *Parameters) Keys(table string) []string {
	var src map[string]Parameter
	switch table {
	case "ranges":
		src = p.Ranges
	case "durations":
		src = p.Durations
	case "targets":
		src = p.Targets
	}
	out := make([]string, 0, len(src))
	for key := range src {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Spec builds the magnitude input of an effect. Contributions are ordered
// range, duration, target, complexity, target size, enhancing requisite.
// An empty range, duration or target key contributes nothing.
func (p *Parameters) Spec(effect Effect) (MagnitudeSpec, error) {
	spec := MagnitudeSpec{
		BaseLevel: effect.BaseLevel,
		Target:    TargetKind(effect.Target),
	}

	var impacts [3]int
	for i, param := range []struct {
		key    string
		lookup func(string) (Parameter, error)
	}{
		{effect.Range, p.Range},
		{effect.Duration, p.Duration},
		{effect.Target, p.Target},
	} {
		if param.key == "" {
			continue
		}
		found, err := param.lookup(param.key)
		if err != nil {
			return MagnitudeSpec{}, err
		}
		impacts[i] = found.Impact
	}

	spec.DurationImpact = impacts[1]
	spec.Contributions = []int{
		impacts[0],
		impacts[1],
		impacts[2],
		effect.Complexity,
		effect.TargetSize,
		effect.EnhancingRequisite,
	}
	return spec, nil
}

// EffectLevel computes the level and ritual flag of an effect
func (p *Parameters) EffectLevel(effect Effect) (Level, error) {
	spec, err := p.Spec(effect)
	if err != nil {
		return Level{}, err
	}
	return ComputeEffectLevel(spec), nil
}

func lookup(table map[string]Parameter, kind, key string) (Parameter, error) {
	p, ok := table[key]
	if !ok {
		return Parameter{}, errors.UnknownTagKeyf("unknown %s %q", kind, key).WithMeta(kind, key)
	}
	return p, nil
}

func mustLoadDefaultParameters() *Parameters {
	params, err := LoadParameters(bytes.NewReader(defaultParametersYAML))
	if err != nil {
		panic(err)
	}
	return params
}
