package chain

import (
	"context"
	"errors"
)

var (
	// ErrStepLimit is returned by Evaluate when the node attempt budget set
	// with WithMaxSteps is exhausted.
	ErrStepLimit = errors.New("match step limit exceeded")
	// ErrDepthLimit is returned by Evaluate when the continuation chain
	// recurses deeper than the bound set with WithMaxDepth.
	ErrDepthLimit = errors.New("match depth limit exceeded")
)

// ctxPollInterval is how many attempts run between checks of ctx.Done.
const ctxPollInterval = 1024

// Option configures a single Evaluate call.
type Option func(*limits)

type limits struct {
	maxSteps int
	maxDepth int
}

// WithMaxSteps aborts evaluation after n node attempts. Zero or less means no limit.
func WithMaxSteps(n int) Option {
	return func(l *limits) { l.maxSteps = n }
}

// WithMaxDepth bounds the recursion depth of the continuation chain.
// Zero or less means no limit.
func WithMaxDepth(n int) Option {
	return func(l *limits) { l.maxDepth = n }
}

// state is private to one evaluation. Nodes never write to themselves, so
// everything that changes while matching lives here.
type state struct {
	ctx   context.Context
	text  []rune
	steps int
	depth int
	limits
	err error
}

func newState(ctx context.Context, text string, opts []Option) *state {
	st := &state{ctx: ctx, text: []rune(text)}
	for _, opt := range opts {
		opt(&st.limits)
	}
	return st
}

// next runs n at position i. Once an evaluation has been aborted every
// further attempt fails immediately, which unwinds the backtracking loops.
func (st *state) next(n Node, i int) result {
	if !st.enter() {
		return fail
	}
	r := n.impl().attempt(st, i)
	st.depth--
	return r
}

func (st *state) enter() bool {
	if st.err != nil {
		return false
	}
	st.steps++
	switch {
	case st.maxSteps > 0 && st.steps > st.maxSteps:
		st.err = ErrStepLimit
	case st.maxDepth > 0 && st.depth >= st.maxDepth:
		st.err = ErrDepthLimit
	case st.ctx != nil && st.steps%ctxPollInterval == 0:
		st.err = st.ctx.Err()
	}
	if st.err != nil {
		return false
	}
	st.depth++
	return true
}

// aborted reports whether evaluation has been stopped.
func (st *state) aborted() bool {
	return st.err != nil
}
