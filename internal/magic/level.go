package magic

// TargetKind names the target parameter of an effect
type TargetKind string

// TargetBound is the boundary target, which always makes an effect a ritual
const TargetBound TargetKind = "bound"

const (
	// RitualFloor is the minimum level of a ritual effect
	RitualFloor = 20

	// RitualLevel is the level from which every effect is a ritual
	RitualLevel = 50

	// ritualDurationImpact is the largest duration impact a non-ritual effect may have
	ritualDurationImpact = 3
)

// MagnitudeSpec is the input of the effect level computation
type MagnitudeSpec struct {
	BaseLevel      int
	Contributions  []int // range, duration, target, complexity, size, requisite
	DurationImpact int
	Target         TargetKind
}

// Level is a computed effect level
type Level struct {
	Level  int  `json:"level" yaml:"level"`
	Ritual bool `json:"ritual" yaml:"ritual"`
}

// ComputeEffectLevel folds the contributions into the base level and applies the ritual rules
func ComputeEffectLevel(spec MagnitudeSpec) Level {
	level := FoldMagnitudes(spec.BaseLevel, spec.Contributions...)

	ritual := spec.DurationImpact > ritualDurationImpact ||
		spec.Target == TargetBound ||
		level >= RitualLevel

	if ritual && level < RitualFloor {
		level = RitualFloor
	}

	return Level{Level: level, Ritual: ritual}
}
