package models

import "fmt"

// Point is a coordinate on the 0-100 x 0-100 pitch grid.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Slot is one of a Formation's eleven pitch assignments.
type Slot struct {
	X        float64
	Y        float64
	Position PositionTag
}

// Formation is an immutable sequence of eleven pitch slots. Slot order
// defines assignment priority when the Lineup Manager maps starting
// players onto slots.
type Formation struct {
	Slots [11]Slot
}

// Validate checks the formation has exactly one GK slot, per the data
// model invariant. It does not check coordinate ranges; those are the
// caller's responsibility at construction time.
func (f Formation) Validate() error {
	gkCount := 0
	for _, s := range f.Slots {
		if s.Position == GK {
			gkCount++
		}
	}
	if gkCount != 1 {
		return fmt.Errorf("formation must have exactly one GK slot, got %d", gkCount)
	}
	return nil
}

// DefaultFormation442 is a standard 4-4-2, used by fixtures and tests and
// as the fallback when no formation is supplied but one can be derived
// (the spec treats an entirely missing formation as FormationMissing, but
// a caller-side default constructor is a reasonable convenience — it is
// never invoked by the engine itself).
func DefaultFormation442() Formation {
	return Formation{Slots: [11]Slot{
		{X: 5, Y: 50, Position: GK},
		{X: 20, Y: 15, Position: LB},
		{X: 20, Y: 38, Position: CB},
		{X: 20, Y: 62, Position: CB},
		{X: 20, Y: 85, Position: RB},
		{X: 45, Y: 15, Position: LM},
		{X: 45, Y: 38, Position: CM},
		{X: 45, Y: 62, Position: CM},
		{X: 45, Y: 85, Position: RM},
		{X: 75, Y: 35, Position: ST},
		{X: 75, Y: 65, Position: ST},
	}}
}
