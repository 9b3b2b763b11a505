package magic

// ActorKind is the kind of host entity an effect is cast by
type ActorKind string

const (
	KindPlayer     ActorKind = "player"
	KindNPC        ActorKind = "npc"
	KindBeast      ActorKind = "beast"
	KindLaboratory ActorKind = "laboratory"

	// KindCodex is a reference codex; it has no casting total
	KindCodex ActorKind = "magicCodex"
)

// CastingCharacteristic is the characteristic added to every casting total
const CastingCharacteristic = "sta"

// Techniques are the five technique art keys
var Techniques = []string{"cr", "in", "mu", "pe", "re"}

// Forms are the ten form art keys
var Forms = []string{"an", "aq", "au", "co", "he", "ig", "im", "me", "te", "vi"}

// ArtInput is an art score with an optional requisite score
type ArtInput struct {
	Score     int  `json:"score" yaml:"score"`
	Requisite *int `json:"requisite,omitempty" yaml:"requisite,omitempty"`
}

// Effective returns the score capped by the requisite when one is set
func (a ArtInput) Effective() int {
	if a.Requisite != nil {
		return min(a.Score, *a.Requisite)
	}
	return a.Score
}

// Requisite returns a pointer to score, for building an ArtInput
func Requisite(score int) *int {
	return &score
}

// CastingInputs are the resolved scores a casting total is computed from
type CastingInputs struct {
	Kind       ActorKind `json:"kind" yaml:"kind"`
	BaseStat   int       `json:"baseStat" yaml:"baseStat"`
	Technique  ArtInput  `json:"technique" yaml:"technique"`
	Form       ArtInput  `json:"form" yaml:"form"`
	ApplyFocus bool      `json:"applyFocus,omitempty" yaml:"applyFocus,omitempty"`
}

// ComputeCastingTotal returns base stat + technique + form, each art capped by
// its requisite, plus the smaller art again when focus applies. A codex always
// totals zero.
func ComputeCastingTotal(in CastingInputs) int {
	if in.Kind == KindCodex {
		return 0
	}

	tech := in.Technique.Effective()
	form := in.Form.Effective()

	total := in.BaseStat + tech + form
	if in.ApplyFocus {
		total += min(tech, form)
	}
	return total
}

// IsTechnique reports whether key names a technique
func IsTechnique(key string) bool {
	return contains(Techniques, key)
}

// IsForm reports whether key names a form
func IsForm(key string) bool {
	return contains(Forms, key)
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
