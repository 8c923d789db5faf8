package svg

// InstructionType tells the path interpreter how to resolve the
// operands that follow an instruction letter
type InstructionType int

// These are the instruction types understood in path data
const (
	UnknownInstruction InstructionType = iota
	MoveInstruction
	LineInstruction
	HLineInstruction
	VLineInstruction
	CloseInstruction
)

// Path data is expected to be absolute, so each case pair resolves
// identically.
var instructionLetters = map[byte]InstructionType{
	'M': MoveInstruction,
	'm': MoveInstruction,
	'L': LineInstruction,
	'l': LineInstruction,
	'H': HLineInstruction,
	'h': HLineInstruction,
	'V': VLineInstruction,
	'v': VLineInstruction,
	'Z': CloseInstruction,
	'z': CloseInstruction,
}

// InstructionFor returns the type of a path data instruction letter
func InstructionFor(letter byte) InstructionType {
	return instructionLetters[letter]
}

func (t InstructionType) String() string {
	switch t {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case HLineInstruction:
		return "hline"
	case VLineInstruction:
		return "vline"
	case CloseInstruction:
		return "close"
	}
	return "unknown"
}
