// Package expr parses and serializes the bracket-delimited expression
// language used for data-driven styling. Expressions are nested JSON arrays
// whose first element names an operator; the bridge validates structure only
// and passes operator semantics through opaquely for the renderer to
// evaluate.
package expr

// Node is an expression tree node: either a bare literal or an operator
// call with ordered arguments. Exactly one variant is populated.
type Node struct {
	call bool
	op   string
	args []Node
	lit  any
}

// Lit constructs a literal node.
func Lit(v any) Node {
	return Node{lit: v}
}

// Call constructs an operator call node.
func Call(op string, args ...Node) Node {
	return Node{call: true, op: op, args: args}
}

// IsCall reports whether the node is an operator call.
func (n Node) IsCall() bool {
	return n.call
}

// Operator returns the operator name for call nodes, "" otherwise.
func (n Node) Operator() string {
	return n.op
}

// Args returns the ordered arguments for call nodes.
func (n Node) Args() []Node {
	return n.args
}

// Value returns the literal value for literal nodes.
func (n Node) Value() any {
	return n.lit
}

// IsZero reports whether the node is the zero value (no expression).
func (n Node) IsZero() bool {
	return !n.call && n.lit == nil && n.op == "" && n.args == nil
}

// FromRaw builds a node from the decoded wire form. An array whose first
// element is a string becomes a call; anything else, including arrays
// without a string head (e.g. the payload of a "literal" operator), stays a
// literal.
func FromRaw(v any) Node {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return Lit(v)
	}
	op, ok := arr[0].(string)
	if !ok {
		return Lit(v)
	}
	args := make([]Node, 0, len(arr)-1)
	for _, raw := range arr[1:] {
		args = append(args, FromRaw(raw))
	}
	return Call(op, args...)
}

// ToRaw converts the node back to the decoded wire form: a bare scalar for
// literals, an [operator, ...args] array for calls.
func (n Node) ToRaw() any {
	if !n.call {
		return n.lit
	}
	out := make([]any, 0, len(n.args)+1)
	out = append(out, n.op)
	for _, arg := range n.args {
		out = append(out, arg.ToRaw())
	}
	return out
}
