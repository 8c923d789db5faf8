package svg

import "fmt"

// Tuple is an X,Y coordinate
type Tuple [2]float64

// A Segment is one resolved point of path data, tagged with the
// instruction letter that produced it. X and Y are always absolute,
// even for H and V which only name one axis.
type Segment struct {
	Instruction byte
	X, Y        float64
}

// Kind returns the instruction type of the segment
func (s Segment) Kind() InstructionType {
	return InstructionFor(s.Instruction)
}

// Tuple returns the segment's coordinates
func (s Segment) Tuple() Tuple {
	return Tuple{s.X, s.Y}
}

// ApplyTransform returns a copy of s mapped through t
func (s Segment) ApplyTransform(t Transform) Segment {
	x, y := t.Apply(s.X, s.Y)
	return Segment{Instruction: s.Instruction, X: x, Y: y}
}

// String formats the segment as an EAGLE coordinate, including the
// trailing separator.
func (s Segment) String() string {
	return fmt.Sprintf("(%.4f %.4f) ", s.X, s.Y)
}
