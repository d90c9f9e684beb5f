// Package gomatch provides composable, anchored string matching. Patterns are
// built programmatically by chaining matcher nodes, each of which takes its
// continuation ("rest") as an optional last argument:
//
//	p := gomatch.Lit("te", gomatch.Any(gomatch.Lit(".txt")))
//	ok, caps := p.Match("text.txt") // true, ["te" "xt" ".txt"]
//
// A match always has to consume the whole input. Alongside the result, every
// consuming node on the successful path reports the substring it matched.
//
// # Supported Nodes:
//
//   - Lit: an exact run of characters.
//   - Set, SetOf: one character out of a set.
//   - Range: one character within an inclusive code point range.
//   - Not: a zero-width assertion that a sub-pattern does not match here.
//   - Any: zero or more arbitrary characters, longest first.
//   - Either: the first of several sub-patterns after which the rest matches.
//
// Constructed patterns are immutable and safe for concurrent use.
// Comparisons are raw code point comparisons; there is no case folding.
package gomatch

import (
	"context"

	"github.com/twinfer/gomatch/internal/chain"
)

// Node is the head of a pattern chain. The zero Node matches only the empty string.
type Node = chain.Node

// Result is the outcome of Evaluate.
type Result = chain.Result

// Option sets an evaluation limit for Evaluate.
type Option = chain.Option

var (
	// ErrInvalidRange reports a Range whose high bound precedes its low bound.
	ErrInvalidRange = chain.ErrInvalidRange
	// ErrEmptyAlternation reports an Either without candidate patterns.
	ErrEmptyAlternation = chain.ErrEmptyAlternation
	// ErrStepLimit reports an evaluation stopped by WithMaxSteps.
	ErrStepLimit = chain.ErrStepLimit
	// ErrDepthLimit reports an evaluation stopped by WithMaxDepth.
	ErrDepthLimit = chain.ErrDepthLimit
)

// Terminal returns the node that ends every chain. It accepts at any position
// without consuming input and is the default continuation of all other nodes.
func Terminal() Node {
	return chain.Terminal()
}

// Lit returns a node that matches chars exactly and captures them.
func Lit(chars string, rest ...Node) Node {
	return chain.Lit(chars, rest...)
}

// Set returns a node that matches a single character contained in chars.
// Reading past the end of the input is a non-match.
func Set(chars string, rest ...Node) Node {
	return chain.Set(chars, rest...)
}

// SetOf is like Set but takes the characters as a slice.
func SetOf(chars []rune, rest ...Node) Node {
	return chain.SetOf(chars, rest...)
}

// Range returns a node that matches a single character c with low <= c <= high.
// It returns ErrInvalidRange if high < low.
func Range(low, high rune, rest ...Node) (Node, error) {
	return chain.Range(low, high, rest...)
}

// Not returns a zero-width node that fails if guard matches at the current
// position and otherwise continues with rest at that same position. If rest
// is omitted, whatever input remains is accepted without a capture, so
// Not(Lit("a")) matches any string that does not start with "a".
func Not(guard Node, rest ...Node) Node {
	return chain.Not(guard, rest...)
}

// Any returns a node that matches zero or more arbitrary characters. It is
// greedy: the longest run is tried first and shortened until rest consumes
// the remainder of the input.
//
// Nested wildcards backtrack over every split of the input and can take time
// exponential in the nesting depth. Use Evaluate with WithMaxSteps to bound
// untrusted inputs.
func Any(rest ...Node) Node {
	return chain.Any(rest...)
}

// Either returns a node that tries patterns in order and accepts the first one
// after which rest matches the remainder of the input. The first completing
// branch wins, not the longest. It returns ErrEmptyAlternation if patterns is empty.
func Either(patterns []Node, rest ...Node) (Node, error) {
	return chain.Either(patterns, rest...)
}

// Match reports whether p consumes all of text and returns the captures.
// It is equivalent to p.Match(text).
func Match(p Node, text string) (bool, []string) {
	return p.Match(text)
}

// Evaluate matches text against p like Match, but aborts with an error once a
// limit set by opts is exceeded or ctx is done.
func Evaluate(ctx context.Context, p Node, text string, opts ...Option) (Result, error) {
	return p.Evaluate(ctx, text, opts...)
}

// WithMaxSteps aborts evaluation with ErrStepLimit after n node attempts.
func WithMaxSteps(n int) Option {
	return chain.WithMaxSteps(n)
}

// WithMaxDepth aborts evaluation with ErrDepthLimit once the continuation
// chain recurses more than n levels deep.
func WithMaxDepth(n int) Option {
	return chain.WithMaxDepth(n)
}
