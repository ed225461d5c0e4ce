package models

// Attribute is one of the fixed named player skills, scored 1-20.
// Named and grouped exactly as in the data model: Technical, Mental,
// Physical, Goalkeeping.
type Attribute int

const (
	// Technical
	Finishing Attribute = iota
	Passing
	Tackling
	Crossing
	Corners
	FreeKickTaking
	PenaltyTaking
	Heading
	LongShots
	Marking
	Technique
	Dribbling
	FirstTouch
	LongThrows

	// Mental
	Aggression
	Anticipation
	Bravery
	Composure
	Concentration
	Decisions
	Determination
	Flair
	Leadership
	OffTheBall
	Positioning
	Teamwork
	Vision
	WorkRate

	// Physical
	Acceleration
	Agility
	Balance
	JumpingReach
	NaturalFitness
	Pace
	Stamina
	Strength

	// Goalkeeping
	AerialReach
	CommandOfArea
	Communication
	Handling
	Kicking
	OneOnOnes
	Reflexes
	RushingOut
	Throwing
	Eccentricity

	// NumAttributes must stay last: it sizes the dense AttributeSet array.
	NumAttributes
)

var attributeNames = [NumAttributes]string{
	Finishing:      "finishing",
	Passing:        "passing",
	Tackling:       "tackling",
	Crossing:       "crossing",
	Corners:        "corners",
	FreeKickTaking: "free_kick_taking",
	PenaltyTaking:  "penalty_taking",
	Heading:        "heading",
	LongShots:      "long_shots",
	Marking:        "marking",
	Technique:      "technique",
	Dribbling:      "dribbling",
	FirstTouch:     "first_touch",
	LongThrows:     "long_throws",

	Aggression:     "aggression",
	Anticipation:   "anticipation",
	Bravery:        "bravery",
	Composure:      "composure",
	Concentration:  "concentration",
	Decisions:      "decisions",
	Determination:  "determination",
	Flair:          "flair",
	Leadership:     "leadership",
	OffTheBall:     "off_the_ball",
	Positioning:    "positioning",
	Teamwork:       "teamwork",
	Vision:         "vision",
	WorkRate:       "work_rate",

	Acceleration:   "acceleration",
	Agility:        "agility",
	Balance:        "balance",
	JumpingReach:   "jumping_reach",
	NaturalFitness: "natural_fitness",
	Pace:           "pace",
	Stamina:        "stamina",
	Strength:       "strength",

	AerialReach:   "aerial_reach",
	CommandOfArea: "command_of_area",
	Communication: "communication",
	Handling:      "handling",
	Kicking:       "kicking",
	OneOnOnes:     "one_on_ones",
	Reflexes:      "reflexes",
	RushingOut:    "rushing_out",
	Throwing:      "throwing",
	Eccentricity:  "eccentricity",
}

var attributeByName = func() map[string]Attribute {
	m := make(map[string]Attribute, NumAttributes)
	for a, name := range attributeNames {
		m[name] = Attribute(a)
	}
	return m
}()

// String returns the attribute's serialisation key, e.g. "free_kick_taking".
func (a Attribute) String() string {
	if a < 0 || a >= NumAttributes {
		return "unknown"
	}
	return attributeNames[a]
}

// AttributeByName looks up an Attribute from its serialisation key.
// ok is false for an unrecognised name.
func AttributeByName(name string) (Attribute, bool) {
	a, ok := attributeByName[name]
	return a, ok
}

// IsGoalkeeping reports whether the attribute belongs to the Goalkeeping
// group, which is subject to the catastrophic position-mismatch penalty
// (§4.1) when the holder is assigned outfield.
func (a Attribute) IsGoalkeeping() bool {
	return a >= AerialReach && a < NumAttributes
}

// AttributeSet is a dense, fixed-size array of raw 1-20 attribute values,
// indexed directly by Attribute discriminant per the §9 design note.
type AttributeSet [NumAttributes]int

// Get returns the raw value for the attribute.
func (s AttributeSet) Get(a Attribute) int {
	return s[a]
}

// Set assigns the raw value for the attribute, clamped to [1, 20].
func (s *AttributeSet) Set(a Attribute, value int) {
	if value < 1 {
		value = 1
	}
	if value > 20 {
		value = 20
	}
	s[a] = value
}
