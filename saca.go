// Copyright (c) 2026 Nikolai Krylov
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package saca builds suffix arrays with the in-place induced sorting
// algorithm of Li, Ma and Zhang (2016). Construction runs in linear time and
// uses no working memory beyond the input and output arrays themselves: the
// output array doubles as counting space and bucket storage through a small
// set of reserved tag values, and recursion reuses disjoint sub-ranges of
// the same two arrays.
//
// Construct is the raw core and expects a sentinel-terminated sequence over
// a dense alphabet. New and NewGSA wrap it for arbitrary int32 texts and add
// the lookup operations.
package saca

import "github.com/pkg/errors"

var (
	ErrLengthMismatch = errors.New("saca: s and sa must have equal length")
	ErrEmptyInput     = errors.New("saca: empty input")
	ErrTooLong        = errors.New("saca: input longer than MaxLength")
	ErrNoSentinel     = errors.New("saca: s must end with the 0 sentinel")
	ErrAlphabetSize   = errors.New("saca: alphabet size out of range")
)

// Construct fills sa with the suffix array of s: the permutation of 0..n-1
// ordering all suffixes of s lexicographically.
//
// s must end with the symbol 0 and contain no other zero; all other symbols
// must lie in [1, sigma] with sigma < len(s). Pass sigma <= 0 to have it
// derived from the data. s is consumed: its symbols are rewritten during
// construction. sa is used as scratch throughout and its initial contents
// are ignored.
//
// Only the cheap boundary conditions are verified here. Sentinel uniqueness
// and the symbol bound are the caller's contract; violating them corrupts
// the output or panics on an out-of-range index.
func Construct(s, sa []int32, sigma int32) error {
	if len(s) != len(sa) {
		return errors.WithStack(ErrLengthMismatch)
	}
	n := len(s)
	if n == 0 {
		return errors.WithStack(ErrEmptyInput)
	}
	if n > MaxLength {
		return errors.Wrapf(ErrTooLong, "n=%d", n)
	}
	if s[n-1] != 0 {
		return errors.WithStack(ErrNoSentinel)
	}
	if n == 1 {
		sa[0] = 0
		return nil
	}
	if sigma <= 0 {
		for _, c := range s {
			if c > sigma {
				sigma = c
			}
		}
	}
	if sigma < 1 || int(sigma) >= n {
		return errors.Wrapf(ErrAlphabetSize, "sigma=%d, n=%d", sigma, n)
	}
	w := &solver{s: s, sa: sa, n: int32(n), sigma: sigma}
	w.solve()
	return nil
}
