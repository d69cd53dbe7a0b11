// Copyright (c) 2026 Nikolai Krylov
// Licensed under the MIT License. See LICENSE file in the project root for details.
package saca

import (
	"slices"
	"sort"
)

// SuffixArray indexes a single int32 text for substring queries.
type SuffixArray struct {
	text, sa []int32
}

// New builds a SuffixArray over text. Any int32 symbols are accepted: the
// alphabet is dense-ranked into the range Construct requires and the
// sentinel is appended to a working copy, so text itself is left untouched.
func New(text []int32) (*SuffixArray, error) {
	sa, err := buildArbitrary(text)
	if err != nil {
		return nil, err
	}
	return &SuffixArray{text: text, sa: sa}, nil
}

// buildArbitrary computes the suffix array of an arbitrary int32 text.
// Ranking the alphabet preserves symbol order, so the resulting suffix order
// equals that of the original text; the sentinel entry is dropped from the
// returned array since it does not correspond to a text position.
func buildArbitrary(text []int32) ([]int32, error) {
	n := len(text)
	if n == 0 {
		return []int32{}, nil
	}
	rank := make(map[int32]int32, n)
	for _, c := range text {
		rank[c] = 0
	}
	alphabet := make([]int32, 0, len(rank))
	for c := range rank {
		alphabet = append(alphabet, c)
	}
	slices.Sort(alphabet)
	for i, c := range alphabet {
		rank[c] = int32(i) + 1
	}

	s := make([]int32, n+1)
	for i, c := range text {
		s[i] = rank[c]
	}
	sa := make([]int32, n+1)
	if err := Construct(s, sa, int32(len(alphabet))); err != nil {
		return nil, err
	}
	return sa[1:], nil
}

// cmpSuffixPrefix compares a suffix against a query prefix: a suffix that
// runs out first still matches, not precedes, when used as a lower bound, so
// the short-suffix case reports -1 only on strict exhaustion.
func cmpSuffixPrefix(suf, prefix []int32) int {
	m := min(len(suf), len(prefix))
	for i := 0; i < m; i++ {
		switch {
		case suf[i] < prefix[i]:
			return -1
		case suf[i] > prefix[i]:
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// match returns the run of suffix array entries whose suffixes start with
// prefix, in lexicographic order. The result aliases the internal array.
func (x *SuffixArray) match(prefix []int32) []int32 {
	if len(prefix) == 0 {
		return x.sa
	}
	if len(x.sa) == 0 {
		return []int32{}
	}
	lo := sort.Search(len(x.sa), func(i int) bool {
		return cmpSuffixPrefix(x.text[x.sa[i]:], prefix) >= 0
	})
	hi := lo + sort.Search(len(x.sa)-lo, func(i int) bool {
		return cmpSuffixPrefix(x.text[x.sa[lo+i]:], prefix) > 0
	})
	return x.sa[lo:hi]
}

// Lookup returns the starting positions of all suffixes beginning with
// prefix, in lexicographic order of the suffixes.
func (x *SuffixArray) Lookup(prefix []int32) []int32 {
	return x.match(prefix)
}

// LookupTextOrder returns the starting positions of all suffixes beginning
// with prefix, sorted by position in the text.
func (x *SuffixArray) LookupTextOrder(prefix []int32) []int32 {
	found := x.match(prefix)
	out := make([]int32, len(found))
	copy(out, found)
	slices.Sort(out)
	return out
}

// LookupSuffix reports where suffix occurs as an exact suffix of the text:
// the starting index, len(text) for the empty suffix, or -1 when the text
// does not end with it.
func (x *SuffixArray) LookupSuffix(suffix []int32) int {
	if len(suffix) == 0 {
		return len(x.sa)
	}
	if len(x.sa) == 0 || len(suffix) > len(x.text) {
		return -1
	}
	at := len(x.text) - len(suffix)
	if slices.Compare(x.text[at:], suffix) == 0 {
		return at
	}
	return -1
}

// LookupPrefix reports whether the text starts with prefix: 0 when it does,
// -1 for the empty prefix (it precedes the first character), -2 otherwise.
func (x *SuffixArray) LookupPrefix(prefix []int32) int {
	if len(prefix) == 0 {
		return -1
	}
	if len(x.sa) == 0 || len(prefix) > len(x.text) {
		return -2
	}
	if slices.Compare(x.text[:len(prefix)], prefix) == 0 {
		return 0
	}
	return -2
}
