package models

// Mentality, Pressing, Tempo, Width, PassingDirectness, Tackling, and
// CreativeFreedom are the enumerated tactical dials from the data model.
// Each is a small closed set, so plain string-backed types are enough —
// there is no dense per-instance array the way there is for Attribute.
type Mentality string

const (
	VeryDefensive Mentality = "very_defensive"
	Defensive     Mentality = "defensive"
	Balanced      Mentality = "balanced"
	Attacking     Mentality = "attacking"
	VeryAttacking Mentality = "very_attacking"
)

type Pressing string

const (
	PressRarely    Pressing = "rarely"
	PressSometimes Pressing = "sometimes"
	PressOften     Pressing = "often"
	PressAlways    Pressing = "always"
)

type Tempo string

const (
	VerySlow Tempo = "very_slow"
	Slow     Tempo = "slow"
	Standard Tempo = "standard"
	Fast     Tempo = "fast"
	VeryFast Tempo = "very_fast"
)

type Width string

const (
	Narrow    Width = "narrow"
	StdWidth  Width = "standard"
	Wide      Width = "wide"
	VeryWide  Width = "very_wide"
)

type PassingDirectness string

const (
	ShortPassing    PassingDirectness = "short"
	StandardPassing PassingDirectness = "standard"
	DirectPassing   PassingDirectness = "direct"
)

type TacklingStyle string

const (
	StayOnFeet TacklingStyle = "stay_on_feet"
	BalancedTackling TacklingStyle = "balanced"
	GetStuckIn TacklingStyle = "get_stuck_in"
)

type CreativeFreedom string

const (
	LowFreedom     CreativeFreedom = "low"
	BalancedFreedom CreativeFreedom = "balanced"
	HighFreedom    CreativeFreedom = "high"
)

type TimeWasting string

const (
	TimeWastingNever     TimeWasting = "never"
	TimeWastingRarely    TimeWasting = "rarely"
	TimeWastingSometimes TimeWasting = "sometimes"
	TimeWastingOften     TimeWasting = "often"
	TimeWastingAlways    TimeWasting = "always"
)

// Tactic is an immutable per-side tactical profile.
type Tactic struct {
	Mentality         Mentality
	Pressing          Pressing
	Tempo             Tempo
	Width             Width
	PassingDirectness PassingDirectness
	Tackling          TacklingStyle
	CreativeFreedom   CreativeFreedom
	TimeWasting       TimeWasting
	TackleHarder      bool
	CounterPress      bool
	OffsideTrap       bool
}

// DefaultTactic is the balanced profile used when a side supplies none
// (spec.md §6: "Tactic ... may be absent -> treated as the default
// balanced profile").
func DefaultTactic() Tactic {
	return Tactic{
		Mentality:         Balanced,
		Pressing:          PressSometimes,
		Tempo:             Standard,
		Width:             StdWidth,
		PassingDirectness: StandardPassing,
		Tackling:          BalancedTackling,
		CreativeFreedom:   BalancedFreedom,
		TimeWasting:       TimeWastingRarely,
		TackleHarder:      false,
		CounterPress:      false,
		OffsideTrap:       false,
	}
}

// mentalityModifiers is a per-(mentality, attribute) multiplier bundle.
// Magnitudes are calibrated to the quantitative bands of spec.md §8 per the
// Open Question in §9 ("reimplementers must extract the tables verbatim or
// calibrate against the quantitative bands") — see DESIGN.md.
var mentalityModifiers = map[Mentality]map[Attribute]float64{
	VeryAttacking: {
		Finishing: 1.10, LongShots: 1.10, OffTheBall: 1.10,
		Tackling: 0.90, Marking: 0.90,
	},
	Attacking: {
		Finishing: 1.05, LongShots: 1.05, OffTheBall: 1.05,
		Tackling: 0.95, Marking: 0.95,
	},
	VeryDefensive: {
		Finishing: 0.90, LongShots: 0.90, OffTheBall: 0.90,
		Tackling: 1.10, Marking: 1.10,
	},
	Defensive: {
		Finishing: 0.95, LongShots: 0.95, OffTheBall: 0.95,
		Tackling: 1.05, Marking: 1.05,
	},
}

// ModifierFor returns the tactic factor applied to one attribute, folding
// in the mentality bundle and the boolean tackle_harder bonus. Absence of
// a tactic (nil) yields 1.0, per §4.1.
func (t *Tactic) ModifierFor(a Attribute) float64 {
	if t == nil {
		return 1.0
	}
	factor := 1.0
	if bundle, ok := mentalityModifiers[t.Mentality]; ok {
		if m, ok := bundle[a]; ok {
			factor *= m
		}
	}
	if t.TackleHarder && (a == Tackling || a == Aggression) {
		factor *= 1.08
	}
	return factor
}

// FoulPropensityFactor scales the baseline foul probability a tackle
// resolver draws against. Raised by tackle_harder and the get_stuck_in
// tackling style, lowered by stay_on_feet; the tackler's own aggression is
// applied separately in ResolveTackle (§4.4 Tackle).
func (t *Tactic) FoulPropensityFactor() float64 {
	if t == nil {
		return 1.0
	}
	factor := 1.0
	if t.TackleHarder {
		factor *= 1.25
	}
	if t.Tackling == GetStuckIn {
		factor *= 1.20
	} else if t.Tackling == StayOnFeet {
		factor *= 0.75
	}
	return factor
}

// Intensity maps the Pressing dial to a [0,1] scale used for fatigue
// accrual.
func (p Pressing) Intensity() float64 {
	switch p {
	case PressAlways:
		return 1.0
	case PressOften:
		return 0.7
	case PressSometimes:
		return 0.4
	default:
		return 0.15
	}
}

// Factor maps the Tempo dial to a [0,1] scale used by the open-play event
// sampler and by fatigue accrual.
func (t Tempo) Factor() float64 {
	switch t {
	case VeryFast:
		return 1.0
	case Fast:
		return 0.75
	case Standard:
		return 0.5
	case Slow:
		return 0.3
	default:
		return 0.15
	}
}

// AttackBias maps mentality to a [-1,1] bias used by the open-play event
// sampler: positive values favour shot attempts and offsides, negative
// values favour tackles.
func (m Mentality) AttackBias() float64 {
	switch m {
	case VeryAttacking:
		return 1.0
	case Attacking:
		return 0.5
	case VeryDefensive:
		return -1.0
	case Defensive:
		return -0.5
	default:
		return 0.0
	}
}
