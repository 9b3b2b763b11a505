package magic

import (
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

//go:generate mockgen -destination=mocks/mock_caster.go -package=mocks -source=caster.go Caster

// Caster exposes the score tables of an entity casting an effect
type Caster interface {
	Kind() ActorKind
	Characteristic(key string) (int, bool)
	Art(key string) (int, bool)
}

// ResolveCastingInputs reads the scores an effect needs from the caster.
// A codex resolves without any lookups.
func ResolveCastingInputs(caster Caster, effect Effect) (CastingInputs, error) {
	if caster == nil {
		return CastingInputs{}, errors.InvalidArgument("caster is required")
	}

	in := CastingInputs{
		Kind:       caster.Kind(),
		ApplyFocus: effect.ApplyFocus,
	}
	if in.Kind == KindCodex {
		return in, nil
	}

	if !IsTechnique(effect.Technique) {
		return CastingInputs{}, errors.InvalidArgumentf("unknown technique %q", effect.Technique)
	}
	if !IsForm(effect.Form) {
		return CastingInputs{}, errors.InvalidArgumentf("unknown form %q", effect.Form)
	}
	// a requisite stands in for an art of the same family
	if effect.TechniqueRequisite != "" && !IsTechnique(effect.TechniqueRequisite) {
		return CastingInputs{}, errors.InvalidArgumentf("unknown technique requisite %q", effect.TechniqueRequisite)
	}
	if effect.FormRequisite != "" && !IsForm(effect.FormRequisite) {
		return CastingInputs{}, errors.InvalidArgumentf("unknown form requisite %q", effect.FormRequisite)
	}

	sta, ok := caster.Characteristic(CastingCharacteristic)
	if !ok {
		return CastingInputs{}, missingScore("characteristic", CastingCharacteristic)
	}
	in.BaseStat = sta

	var err error
	if in.Technique, err = resolveArt(caster, effect.Technique, effect.TechniqueRequisite); err != nil {
		return CastingInputs{}, err
	}
	if in.Form, err = resolveArt(caster, effect.Form, effect.FormRequisite); err != nil {
		return CastingInputs{}, err
	}
	return in, nil
}

// CastingTotal resolves the caster's scores and computes the casting total
func CastingTotal(caster Caster, effect Effect) (int, error) {
	in, err := ResolveCastingInputs(caster, effect)
	if err != nil {
		return 0, err
	}
	return ComputeCastingTotal(in), nil
}

func resolveArt(caster Caster, key, requisite string) (ArtInput, error) {
	score, ok := caster.Art(key)
	if !ok {
		return ArtInput{}, missingScore("art", key)
	}
	art := ArtInput{Score: score}

	if requisite == "" {
		return art, nil
	}
	req, ok := caster.Art(requisite)
	if !ok {
		return ArtInput{}, missingScore("art", requisite)
	}
	art.Requisite = Requisite(req)
	return art, nil
}

func missingScore(kind, key string) *errors.Error {
	return errors.MissingScoref("no %s score for %q", kind, key).WithMeta("key", key)
}
