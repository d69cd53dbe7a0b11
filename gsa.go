// Copyright (c) 2026 Nikolai Krylov
// Licensed under the MIT License. See LICENSE file in the project root for details.
package saca

import "unicode/utf8"

// sep separates the joined strings of a generalized suffix array. It comes
// from the Unicode Private Use Area so it cannot collide with real text.
const sep int32 = 0xE000

// span tracks one source string inside the joined text: where it starts and
// a reusable buffer collecting match offsets, filled up to n.
type span struct {
	start int32
	n     int
	buf   []int32
}

// GSA is a generalized suffix array over multiple strings. The strings are
// joined with separators into one text, indexed once, and every lookup maps
// text positions back to per-string offsets.
type GSA struct {
	src   [][]int32
	idx   SuffixArray // joined text plus its suffix array
	strOf []int32     // text position -> source string
	spans []span
	out   []Index // reusable result buffer
}

// Index reports one string's occurrences for a lookup.
type Index struct {
	String      int32
	Occurrences []int32
}

// NewGSA builds a generalized suffix array from strings, indexing by rune.
// Returns nil for an empty input.
func NewGSA(src []string) (*GSA, error) {
	if len(src) == 0 {
		return nil, nil
	}
	src32 := make([][]int32, len(src))
	total := 0
	for i, word := range src {
		total += utf8.RuneCountInString(word)
		src32[i] = []int32(word)
	}
	return newGSA(src32, total)
}

// NewGSA32 builds a generalized suffix array from int32 slices.
// Returns nil for an empty input.
func NewGSA32(src [][]int32) (*GSA, error) {
	if len(src) == 0 {
		return nil, nil
	}
	total := 0
	for _, word := range src {
		total += len(word)
	}
	return newGSA(src, total)
}

func newGSA(src [][]int32, total int) (*GSA, error) {
	// layout: sep w0 sep w1 sep ... wk-1 sep
	textLen := total + len(src) + 1
	text := make([]int32, textLen)
	strOf := make([]int32, textLen)
	occBuf := make([]int32, total)
	spans := make([]span, len(src))

	text[0] = sep
	pos := int32(1)
	used := 0
	for i, word := range src {
		spans[i] = span{start: pos, buf: occBuf[used : used+len(word)]}
		used += len(word)
		for _, c := range word {
			text[pos] = c
			strOf[pos] = int32(i)
			pos++
		}
		text[pos] = sep
		strOf[pos] = int32(i)
		pos++
	}

	sa, err := buildArbitrary(text)
	if err != nil {
		return nil, err
	}
	return &GSA{
		src:   src,
		idx:   SuffixArray{text: text, sa: sa},
		strOf: strOf,
		spans: spans,
		out:   make([]Index, len(src)),
	}, nil
}

// fill distributes matched text positions into the per-string offset
// buffers and returns how many strings received at least one occurrence.
// A match sitting on a separator stands for the start of the next string;
// positions are pre-sorted, so the duplicate that creates is adjacent.
func (g *GSA) fill(res []int32) int {
	text := g.idx.text
	var prev int32
	sz := 0
	for _, j := range res {
		if text[j] == sep {
			if int(j) == len(text)-1 {
				break
			}
			j++
		}
		if j == prev {
			continue
		}
		sp := &g.spans[g.strOf[j]]
		if sp.n == 0 {
			sz++
		}
		sp.buf[sp.n] = j - sp.start
		sp.n++
		prev = j
	}
	return sz
}

// collect drains the filled offset buffers into Index results, one per
// string with occurrences, in ascending string order.
func (g *GSA) collect(res []int32, sz int) []Index {
	text := g.idx.text
	out := g.out[:sz]
	k := 0
	for _, j := range res {
		if text[j] == sep {
			if int(j) == len(text)-1 {
				break
			}
			j++
		}
		sp := &g.spans[g.strOf[j]]
		if sp.n == 0 {
			continue
		}
		out[k] = Index{String: g.strOf[j], Occurrences: sp.buf[:sp.n]}
		sp.n = 0
		k++
	}
	return out
}

// LookupTextOrder finds prefix occurrences across all strings, each string's
// offsets sorted by position.
func (g *GSA) LookupTextOrder(prefix []int32) []Index {
	res := g.idx.LookupTextOrder(prefix)
	return g.collect(res, g.fill(res))
}

// LookupSuffix finds the strings ending with suf. For an empty suf every
// string matches at its own length.
func (g *GSA) LookupSuffix(suf []int32) []Index {
	if len(suf) == 0 {
		for i := range g.src {
			g.spans[i].buf[0] = int32(len(g.src[i]))
			g.out[i] = Index{String: int32(i), Occurrences: g.spans[i].buf[:1]}
		}
		return g.out
	}
	// a trailing separator pins the match to the end of a string
	q := make([]int32, len(suf)+1)
	copy(q, suf)
	q[len(suf)] = sep
	res := g.idx.LookupTextOrder(q)
	return g.collect(res, g.fill(res))
}

// LookupPrefix finds the strings starting with prefix. For an empty prefix
// every string reports -1, the slot before its first character.
func (g *GSA) LookupPrefix(prefix []int32) []Index {
	if len(prefix) == 0 {
		for i := range g.src {
			g.spans[i].buf[0] = -1
			g.out[i] = Index{String: int32(i), Occurrences: g.spans[i].buf[:1]}
		}
		return g.out
	}
	// a leading separator pins the match to the start of a string
	q := make([]int32, len(prefix)+1)
	q[0] = sep
	copy(q[1:], prefix)
	res := g.idx.LookupTextOrder(q)
	return g.collect(res, g.fill(res))
}
