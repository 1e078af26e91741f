package kinds

type Kind int

const (
	Unknown Kind = iota
	Void
	Bool
	Int
	UInt
	Trait
	Function
)

func (k Kind) IsPrimitive() bool {
	return k == Void || k == Bool || k == Int || k == UInt
}

// IsInteger reports whether values of this kind carry a bit width.
func (k Kind) IsInteger() bool {
	return k == Int || k == UInt
}

func (k Kind) IsNominal() bool {
	return k == Trait
}

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Trait:
		return "trait"
	case Function:
		return "function"
	default:
		return "<unknown>"
	}
}
