package ast

type Kind int

const (
	// Const is a leaf holding a TRUE/FALSE literal.
	Const Kind = iota
	// Var is a leaf holding a single-letter variable name.
	Var
	// Op is an operator application: binary when both children are set,
	// unary when only Left is set.
	Op
)

// Node is a node of the parsed expression tree. Leaves carry either a
// boolean constant or a variable name; interior nodes carry an operator
// keyword in Name and one or two children.
type Node struct {
	Kind  Kind
	Value bool   // constant value, meaningful only when Kind == Const
	Name  string // variable name or operator keyword
	Left  *Node
	Right *Node
}

// NewConst returns a literal leaf.
func NewConst(v bool) *Node {
	return &Node{Kind: Const, Value: v}
}

// NewVar returns a variable leaf.
func NewVar(name string) *Node {
	return &Node{Kind: Var, Name: name}
}

// NewUnary returns a prefix operator application.
func NewUnary(op string, operand *Node) *Node {
	return &Node{Kind: Op, Name: op, Left: operand}
}

// NewBinary returns an infix operator application.
func NewBinary(op string, left, right *Node) *Node {
	return &Node{Kind: Op, Name: op, Left: left, Right: right}
}

// IsLeaf returns true for constant and variable nodes.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// String renders the fully parenthesized form of the subtree, e.g.
// "((A AND B) OR C)" or "(NOT A)".
func (n *Node) String() string {
	switch {
	case n.Left != nil && n.Right != nil:
		return "(" + n.Left.String() + " " + n.Name + " " + n.Right.String() + ")"
	case n.Left != nil:
		return "(" + n.Name + " " + n.Left.String() + ")"
	case n.Kind == Const:
		if n.Value {
			return "TRUE"
		}
		return "FALSE"
	default:
		return n.Name
	}
}
