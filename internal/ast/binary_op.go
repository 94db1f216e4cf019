package ast

// BinaryOp enumerates binary operators.
type BinaryOp uint8

const (
	OpEq  BinaryOp = iota // ==
	OpNe                  // !=
	OpLt                  // <
	OpLe                  // <=
	OpGt                  // >
	OpGe                  // >=
	OpAnd                 // &&
	OpOr                  // ||
	OpAdd                 // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
)

var binaryOpText = [...]string{
	OpEq:  "==",
	OpNe:  "!=",
	OpLt:  "<",
	OpLe:  "<=",
	OpGt:  ">",
	OpGe:  ">=",
	OpAnd: "&&",
	OpOr:  "||",
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

var binaryOpNames = [...]string{
	OpEq:  "Eq",
	OpNe:  "Ne",
	OpLt:  "Lt",
	OpLe:  "Le",
	OpGt:  "Gt",
	OpGe:  "Ge",
	OpAnd: "And",
	OpOr:  "Or",
	OpAdd: "Add",
	OpSub: "Sub",
	OpMul: "Mul",
	OpDiv: "Div",
}

// String returns the operator as written in source.
func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// Name returns the operator's symbolic name ("Eq", "Add", ...).
func (op BinaryOp) Name() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "Unknown"
}
