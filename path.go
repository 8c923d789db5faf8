package svg

import (
	"strconv"
	"strings"
)

// Path is an SVG XML path element
type Path struct {
	ID string `xml:"id,attr"`
	D  string `xml:"d,attr"`
}

// Parse interprets the path description, calling emit with every
// resolved point mapped through t, in the order the points appear.
// A close instruction emits the path's initial point again.
func (p *Path) Parse(t Transform, emit func(Segment) error) error {
	return ParsePathData(p.D, t, emit)
}

// Segments is like Parse but collects the emitted segments.
func (p *Path) Segments(t Transform) ([]Segment, error) {
	var segs []Segment
	err := p.Parse(t, func(s Segment) error {
		segs = append(segs, s)
		return nil
	})
	return segs, err
}

// ParsePathData interprets whitespace separated path data d.
//
// Only absolute M, L, H and V operands are supported, with M and L
// operands written as "x,y". H and V need a prior point. The path keeps
// a single initial point: it is set by the first point resolved and
// again by the first point after each close.
func ParsePathData(d string, t Transform, emit func(Segment) error) error {
	pdp := newPathDParse(t, emit)
	for _, tok := range strings.Fields(d) {
		if err := pdp.parseToken(tok); err != nil {
			return err
		}
	}
	return nil
}

type pathDescriptionParser struct {
	transform   Transform
	instruction byte
	last        *Segment
	initial     *Segment
	emit        func(Segment) error
}

func newPathDParse(t Transform, emit func(Segment) error) *pathDescriptionParser {
	return &pathDescriptionParser{
		transform:   t,
		instruction: 'M',
		emit:        emit,
	}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func (pdp *pathDescriptionParser) parseToken(tok string) error {
	if len(tok) == 1 && isLetter(tok[0]) {
		pdp.instruction = tok[0]
		if InstructionFor(tok[0]) == CloseInstruction {
			return pdp.parseClose()
		}
		return nil
	}

	var (
		seg Segment
		err error
	)
	switch InstructionFor(pdp.instruction) {
	case MoveInstruction, LineInstruction:
		seg, err = pdp.parsePoint(tok)
	case HLineInstruction:
		seg, err = pdp.parseHLine(tok)
	case VLineInstruction:
		seg, err = pdp.parseVLine(tok)
	case CloseInstruction:
		return newError(PreconditionError, nil, "operand %q follows close instruction", tok)
	default:
		return newError(PreconditionError, nil, "unsupported instruction %q", string(pdp.instruction))
	}
	if err != nil {
		return err
	}

	if pdp.initial == nil {
		initial := seg
		pdp.initial = &initial
	}
	pdp.last = &seg
	return pdp.emit(seg.ApplyTransform(pdp.transform))
}

func (pdp *pathDescriptionParser) parsePoint(tok string) (Segment, error) {
	coords := strings.Split(tok, ",")
	if len(coords) != 2 {
		return Segment{}, newError(NumberFormatError, nil, "%c operand %q is not an x,y pair", pdp.instruction, tok)
	}
	x, err := parseNumber(coords[0])
	if err != nil {
		return Segment{}, err
	}
	y, err := parseNumber(coords[1])
	if err != nil {
		return Segment{}, err
	}
	return Segment{Instruction: pdp.instruction, X: x, Y: y}, nil
}

func (pdp *pathDescriptionParser) parseHLine(tok string) (Segment, error) {
	if pdp.last == nil {
		return Segment{}, newError(PreconditionError, nil, "%c %s has no prior point", pdp.instruction, tok)
	}
	x, err := parseNumber(tok)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Instruction: pdp.instruction, X: x, Y: pdp.last.Y}, nil
}

func (pdp *pathDescriptionParser) parseVLine(tok string) (Segment, error) {
	if pdp.last == nil {
		return Segment{}, newError(PreconditionError, nil, "%c %s has no prior point", pdp.instruction, tok)
	}
	y, err := parseNumber(tok)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Instruction: pdp.instruction, X: pdp.last.X, Y: y}, nil
}

func (pdp *pathDescriptionParser) parseClose() error {
	if pdp.initial == nil {
		return newError(PreconditionError, nil, "%c has no initial point", pdp.instruction)
	}
	seg := pdp.initial.ApplyTransform(pdp.transform)
	pdp.initial = nil
	return pdp.emit(seg)
}

func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newError(NumberFormatError, err, "bad number %q", s)
	}
	return n, nil
}
