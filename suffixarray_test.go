// Copyright (c) 2026 Nikolai Krylov
// Licensed under the MIT License. See LICENSE file in the project root for details.
package saca

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genRandText(size int, span int32) []int32 {
	input := make([]int32, size)
	for i := 0; i < size; i++ {
		input[i] = rand.Int31n(span)
	}
	return input
}

func mustNew(t *testing.T, text []int32) *SuffixArray {
	t.Helper()
	x, err := New(text)
	require.NoError(t, err)
	return x
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		input []int32
	}{
		"empty string": {
			input: []int32{},
		},
		"single character": {
			input: []int32{100},
		},
		"same characters": {
			input: []int32("aaaaaaaaaaaaaaaaaaaaa"),
		},
		"banana": {
			input: []int32("banana"),
		},
		"abracadabra": {
			input: []int32("abracadabra"),
		},
		"ACGTGCCTAGCCTACCGTGCC": {
			input: []int32("ACGTGCCTAGCCTACCGTGCC"),
		},
		"repeated pattern": {
			input: []int32{1, 2, 1, 2, 1, 2, 1, 2},
		},
		"reverse sorted": {
			input: []int32{5, 4, 3, 2, 1},
		},
		"contains zero symbols": {
			input: []int32{0, 0, 0, 1, 1, 1},
		},
		"negative symbols": {
			input: []int32{-5, 3, -100, 3, -5, 0, 7},
		},
		"min/max edges": {
			input: []int32{-2147483648, 2147483647, 0},
		},
		"long random narrow": {
			input: genRandText(1000, 255),
		},
		"long random wide": {
			input: genRandText(1000, 2147483647),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, naiveSA(tc.input), mustNew(t, tc.input).sa)
		})
	}
}

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		text,
		prefix,
		suffix,
		lexOrdExp,
		textOrdExp []int32
		prefixExp int
		sufExp    int
	}{
		"empty text": {
			text:       []int32{},
			prefix:     []int32("a"),
			suffix:     []int32("a"),
			lexOrdExp:  []int32{},
			textOrdExp: []int32{},
			prefixExp:  -2,
			sufExp:     -1,
		},
		"empty query": {
			text:       []int32("aaaaaaa"),
			prefix:     []int32{},
			suffix:     []int32{},
			lexOrdExp:  []int32{6, 5, 4, 3, 2, 1, 0},
			textOrdExp: []int32{0, 1, 2, 3, 4, 5, 6},
			prefixExp:  -1,
			sufExp:     7,
		},
		"same characters": {
			text:       []int32("aaaaaaa"),
			prefix:     []int32("a"),
			suffix:     []int32("a"),
			lexOrdExp:  []int32{6, 5, 4, 3, 2, 1, 0},
			textOrdExp: []int32{0, 1, 2, 3, 4, 5, 6},
			prefixExp:  0,
			sufExp:     6,
		},
		"whole text": {
			text:       []int32("banana"),
			prefix:     []int32("banana"),
			suffix:     []int32("banana"),
			lexOrdExp:  []int32{0},
			textOrdExp: []int32{0},
			prefixExp:  0,
			sufExp:     0,
		},
		"anana": {
			text:       []int32("banana"),
			prefix:     []int32("banan"),
			suffix:     []int32("anana"),
			lexOrdExp:  []int32{1},
			textOrdExp: []int32{1},
			prefixExp:  0,
			sufExp:     1,
		},
		"ana": {
			text:       []int32("banana"),
			prefix:     []int32("ban"),
			suffix:     []int32("ana"),
			lexOrdExp:  []int32{3, 1},
			textOrdExp: []int32{1, 3},
			prefixExp:  0,
			sufExp:     3,
		},
		"na": {
			text:       []int32("banana"),
			prefix:     []int32("ba"),
			suffix:     []int32("na"),
			lexOrdExp:  []int32{4, 2},
			textOrdExp: []int32{2, 4},
			prefixExp:  0,
			sufExp:     4,
		},
		"a": {
			text:       []int32("banana"),
			prefix:     []int32("b"),
			suffix:     []int32("a"),
			lexOrdExp:  []int32{5, 3, 1},
			textOrdExp: []int32{1, 3, 5},
			prefixExp:  0,
			sufExp:     5,
		},
		"not found": {
			text:       []int32("banana"),
			prefix:     []int32("ab"),
			suffix:     []int32("ab"),
			lexOrdExp:  []int32{},
			textOrdExp: []int32{},
			prefixExp:  -2,
			sufExp:     -1,
		},
		"query longer than text": {
			text:       []int32("ab"),
			prefix:     []int32("abc"),
			suffix:     []int32("aab"),
			lexOrdExp:  []int32{},
			textOrdExp: []int32{},
			prefixExp:  -2,
			sufExp:     -1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			x := mustNew(t, tc.text)
			assert.Equal(t, tc.lexOrdExp, x.Lookup(tc.suffix))
			assert.Equal(t, tc.textOrdExp, x.LookupTextOrder(tc.suffix))
			assert.Equal(t, tc.sufExp, x.LookupSuffix(tc.suffix))
			assert.Equal(t, tc.prefixExp, x.LookupPrefix(tc.prefix))
		})
	}
}

func BenchmarkNew(b *testing.B) {
	tests := []struct {
		name string
		text []int32
	}{
		{"banana", []int32("banana")},
		{"narrow 10k", genRandText(10000, 255)},
		{"wide 10k", genRandText(10000, 2147483647)},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := New(tt.text); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
