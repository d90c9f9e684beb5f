package chain

import (
	"slices"
	"strings"
)

// negation is a zero-width assertion that guard does not match at the
// current position.
type negation struct {
	guard Node
	rest  Node
}

// Not returns a node that fails wherever guard matches and otherwise
// continues with rest at the same position. Without rest, the remaining
// input is accepted as is.
func Not(guard Node, rest ...Node) Node {
	next := Node{m: remainder{}}
	if len(rest) > 0 && rest[0].m != nil {
		next = rest[0]
	}
	return Node{m: &negation{guard: guard, rest: next}}
}

func (n *negation) attempt(st *state, i int) result {
	if g := st.next(n.guard, i); g.ok || st.aborted() {
		return fail
	}
	return st.next(n.rest, i)
}

func (n *negation) describe(b *strings.Builder) {
	b.WriteString("Not(")
	describeChain(b, n.guard)
	b.WriteString(")")
	describeRest(b, n.rest)
}

// wildcard consumes any run of characters, longest first.
type wildcard struct {
	rest Node
}

// Any returns a node matching zero or more arbitrary characters followed by
// rest. It tries the longest run first and shortens it until the rest of the
// chain consumes the remaining input.
func Any(rest ...Node) Node {
	return Node{m: &wildcard{rest: restOf(rest)}}
}

func (n *wildcard) attempt(st *state, i int) result {
	size := len(st.text)
	for j := size; j >= i; j-- {
		r := st.next(n.rest, j)
		if st.aborted() {
			return fail
		}
		// A local success is not enough: rest may stop short of the end.
		if r.ok && r.end == size {
			r.captures = prepend(string(st.text[i:j]), r.captures)
			return r
		}
	}
	return fail
}

func (n *wildcard) describe(b *strings.Builder) {
	b.WriteString("Any")
	describeRest(b, n.rest)
}

// alternation tries its patterns in order.
type alternation struct {
	patterns []Node
	rest     Node
}

// Either returns a node that tries each pattern in order and accepts the
// first one after which rest reaches the end of input. It fails with
// ErrEmptyAlternation if patterns is empty.
func Either(patterns []Node, rest ...Node) (Node, error) {
	if len(patterns) == 0 {
		return Node{}, ErrEmptyAlternation
	}
	return Node{m: &alternation{patterns: slices.Clone(patterns), rest: restOf(rest)}}, nil
}

func (n *alternation) attempt(st *state, i int) result {
	size := len(st.text)
	for _, p := range n.patterns {
		head := st.next(p, i)
		if st.aborted() {
			return fail
		}
		if !head.ok {
			continue
		}
		r := st.next(n.rest, head.end)
		if st.aborted() {
			return fail
		}
		if r.ok && r.end == size {
			r.captures = append(slices.Clip(head.captures), r.captures...)
			return r
		}
	}
	return fail
}

func (n *alternation) describe(b *strings.Builder) {
	b.WriteString("Either(")
	for k, p := range n.patterns {
		if k > 0 {
			b.WriteString(" | ")
		}
		describeChain(b, p)
	}
	b.WriteString(")")
	describeRest(b, n.rest)
}
