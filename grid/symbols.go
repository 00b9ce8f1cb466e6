package grid

// Symbol bytes of the input alphabet.
const (
	SymbolVertical   = '|'
	SymbolHorizontal = '-'
	SymbolBendNE     = 'L'
	SymbolBendNW     = 'J'
	SymbolBendSW     = '7'
	SymbolBendSE     = 'F'
	SymbolGround     = '.'
	SymbolStart      = 'S'
)

// FromSymbol decodes one input byte. ok is false for bytes outside the alphabet.
func FromSymbol(b byte) (p Pipe, ok bool) {
	switch b {
	case SymbolVertical:
		return Vertical, true
	case SymbolHorizontal:
		return Horizontal, true
	case SymbolBendNE:
		return BendNE, true
	case SymbolBendNW:
		return BendNW, true
	case SymbolBendSW:
		return BendSW, true
	case SymbolBendSE:
		return BendSE, true
	case SymbolGround:
		return None, true
	case SymbolStart:
		return Start, true
	}
	return None, false
}

// Symbol encodes p back to its alphabet byte.
// Sets with no symbol of their own (one or three directions) encode as '?'.
func (p Pipe) Symbol() byte {
	switch p {
	case Vertical:
		return SymbolVertical
	case Horizontal:
		return SymbolHorizontal
	case BendNE:
		return SymbolBendNE
	case BendNW:
		return SymbolBendNW
	case BendSW:
		return SymbolBendSW
	case BendSE:
		return SymbolBendSE
	case None:
		return SymbolGround
	case Start:
		return SymbolStart
	}
	return '?'
}

// String returns the symbol of p.
func (p Pipe) String() string {
	return string(p.Symbol())
}
