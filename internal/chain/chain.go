/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package chain contains the core implementation of the chained matcher.
// It is intended for internal use by the parent gomatch package.
//
// A pattern is a singly linked chain of nodes. Each node owns its
// continuation ("rest") and either fails or hands the input position on to
// it. Backtracking happens inside Any and Either, which re-run the whole
// downstream chain for every candidate until one reaches the end of input.
package chain

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrInvalidRange is returned by Range when the high bound precedes the low bound.
	ErrInvalidRange = errors.New("range end precedes range start")
	// ErrEmptyAlternation is returned by Either when no candidate patterns are given.
	ErrEmptyAlternation = errors.New("alternation needs at least one pattern")
)

// Node is an immutable handle to the head of a pattern chain. The zero Node
// behaves like Terminal. A Node may be shared between goroutines.
type Node struct {
	m matcher
}

// matcher is implemented by the fixed set of node variants in this package.
type matcher interface {
	attempt(st *state, i int) result
	describe(b *strings.Builder)
}

// result is the outcome of a single attempt. The zero value is a failure.
type result struct {
	end      int
	captures []string
	ok       bool
}

var fail result

// Result is the outcome of matching a whole input string.
type Result struct {
	Matched  bool
	Captures []string
}

func noMatch() Result {
	return Result{Captures: []string{}}
}

// Match reports whether the chain consumes all of text, along with the
// substrings each consuming node matched, in traversal order. A failed match
// returns false and an empty slice.
func (n Node) Match(text string) (bool, []string) {
	res, _ := n.Evaluate(context.Background(), text)
	return res.Matched, res.Captures
}

// Evaluate is Match with evaluation limits. The returned error is non-nil
// only when evaluation was aborted by a limit or by ctx; a plain non-match
// is not an error.
func (n Node) Evaluate(ctx context.Context, text string, opts ...Option) (Result, error) {
	st := newState(ctx, text, opts)
	r := st.next(n, 0)
	if st.err != nil {
		return noMatch(), st.err
	}
	if !r.ok || r.end != len(st.text) {
		return noMatch(), nil
	}
	caps := r.captures
	if caps == nil {
		caps = []string{}
	}
	return Result{Matched: true, Captures: caps}, nil
}

// String renders the chain, e.g. `Lit("te") -> Any -> Lit(".txt")`.
func (n Node) String() string {
	var b strings.Builder
	describeChain(&b, n)
	return b.String()
}

func (n Node) impl() matcher {
	if n.m == nil {
		return end{}
	}
	return n.m
}

func describeChain(b *strings.Builder, n Node) {
	n.impl().describe(b)
}

// describeRest appends " -> rest" unless rest is the terminal.
func describeRest(b *strings.Builder, rest Node) {
	if _, ok := rest.impl().(end); ok {
		return
	}
	b.WriteString(" -> ")
	describeChain(b, rest)
}

// terminal is the shared chain-ending node.
var terminal = Node{m: end{}}

// Terminal returns the zero-width node that accepts at any position.
func Terminal() Node {
	return terminal
}

// restOf resolves an optional continuation. Only the first argument is used;
// a missing or zero Node resolves to Terminal.
func restOf(rest []Node) Node {
	if len(rest) == 0 || rest[0].m == nil {
		return terminal
	}
	return rest[0]
}

// end accepts without consuming input.
type end struct{}

func (end) attempt(_ *state, i int) result {
	return result{end: i, ok: true}
}

func (end) describe(b *strings.Builder) {
	b.WriteString("End")
}

// remainder accepts whatever input is left and contributes no capture. It is
// the default continuation of Not, so that Not(p) alone means "the input
// does not start with p".
type remainder struct{}

func (remainder) attempt(st *state, _ int) result {
	return result{end: len(st.text), ok: true}
}

func (remainder) describe(b *strings.Builder) {
	b.WriteString("Rest")
}

func prepend(s string, caps []string) []string {
	out := make([]string, 0, len(caps)+1)
	out = append(out, s)
	return append(out, caps...)
}
