/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package chain contains the chained matcher engine.
// This file provides the consuming nodes: literals and single-character
// classes. Comparisons are raw code point comparisons with no case folding.
package chain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// literal matches an exact sequence of characters.
type literal struct {
	text  string
	chars []rune
	rest  Node
}

// Lit returns a node matching chars exactly, followed by rest.
func Lit(chars string, rest ...Node) Node {
	return Node{m: &literal{text: chars, chars: []rune(chars), rest: restOf(rest)}}
}

func (n *literal) attempt(st *state, i int) result {
	j := i + len(n.chars)
	if j > len(st.text) || !slices.Equal(st.text[i:j], n.chars) {
		return fail
	}
	r := st.next(n.rest, j)
	if !r.ok {
		return fail
	}
	r.captures = prepend(n.text, r.captures)
	return r
}

func (n *literal) describe(b *strings.Builder) {
	b.WriteString("Lit(" + strconv.Quote(n.text) + ")")
	describeRest(b, n.rest)
}

// charSet matches one character out of a fixed set.
type charSet struct {
	chars []rune // sorted, no duplicates
	rest  Node
}

// Set returns a node matching any single character of chars.
func Set(chars string, rest ...Node) Node {
	return SetOf([]rune(chars), rest...)
}

// SetOf is Set for a slice of characters. The slice is copied.
func SetOf(chars []rune, rest ...Node) Node {
	sorted := slices.Clone(chars)
	slices.Sort(sorted)
	return Node{m: &charSet{chars: slices.Compact(sorted), rest: restOf(rest)}}
}

func (n *charSet) matches(c rune) bool {
	_, found := slices.BinarySearch(n.chars, c)
	return found
}

func (n *charSet) attempt(st *state, i int) result {
	if i >= len(st.text) || !n.matches(st.text[i]) {
		return fail
	}
	return consumeOne(st, i, n.rest)
}

func (n *charSet) describe(b *strings.Builder) {
	b.WriteString("Set(" + strconv.Quote(string(n.chars)) + ")")
	describeRest(b, n.rest)
}

// charRange matches one character whose code point lies in [low, high].
type charRange struct {
	low  rune
	high rune
	rest Node
}

// Range returns a node matching a single character between low and high
// inclusive. It fails with ErrInvalidRange if high < low.
func Range(low, high rune, rest ...Node) (Node, error) {
	if high < low {
		return Node{}, fmt.Errorf("%w: %q-%q", ErrInvalidRange, low, high)
	}
	return Node{m: &charRange{low: low, high: high, rest: restOf(rest)}}, nil
}

func (n *charRange) matches(c rune) bool {
	return c >= n.low && c <= n.high
}

func (n *charRange) attempt(st *state, i int) result {
	if i >= len(st.text) || !n.matches(st.text[i]) {
		return fail
	}
	return consumeOne(st, i, n.rest)
}

func (n *charRange) describe(b *strings.Builder) {
	fmt.Fprintf(b, "Range(%q, %q)", n.low, n.high)
	describeRest(b, n.rest)
}

// consumeOne hands position i+1 to rest and records text[i] as the capture.
func consumeOne(st *state, i int, rest Node) result {
	r := st.next(rest, i+1)
	if !r.ok {
		return fail
	}
	r.captures = prepend(string(st.text[i]), r.captures)
	return r
}
