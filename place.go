// Copyright (c) 2026 Nikolai Krylov
// Licensed under the MIT License. See LICENSE file in the project root for details.
package saca

import "math"

// Reserved slot values. During construction sa doubles as counting space,
// bucket markers and the result, so the three largest int32 values are fenced
// off as tags and every genuine position must stay below them.
const (
	empty  int32 = math.MaxInt32
	unique int32 = math.MaxInt32 - 1
	multi  int32 = math.MaxInt32 - 2
)

// MaxLength is the largest sequence length Construct accepts. Positions must
// be distinguishable from the reserved tags above.
const MaxLength = math.MaxInt32 - 2

// placeTail inserts position p into the bucket whose tail slot is c, filling
// the bucket right to left. The slot state machine: a bucket expecting one
// entry holds the unique tag and is resolved immediately; a bucket expecting
// more holds the multi tag at its tail, a fill counter one slot below, and
// entries two slots further down until the run hits the array edge or an
// occupied slot, at which point the run is shifted flush against the tail and
// the marker pair is dissolved. Reports whether such a shift happened, so
// scans walking the array can compensate.
func placeTail(sa []int32, p, c int32) bool {
	switch sa[c] {
	case unique:
		sa[c] = p
	case multi:
		if sa[c-1] == empty {
			// first entry for this bucket
			if c >= 2 && sa[c-2] == empty {
				sa[c-2] = p
				sa[c-1] = 1
				return false
			}
			// no room below the counter: the bucket holds exactly two entries
			sa[c] = p
			sa[c-1] = empty
		} else {
			ctr := sa[c-1]
			if c >= ctr+2 && sa[c-ctr-2] == empty {
				sa[c-ctr-2] = p
				sa[c-1] = ctr + 1
				return false
			}
			// ran out of borrowed slots: compact the run against the tail
			for j := c; j >= c-ctr+1; j-- {
				sa[j] = sa[j-2]
			}
			sa[c-ctr] = p
			sa[c-ctr-1] = empty
			return true
		}
	default:
		// the bucket was already resolved; take the nearest free slot
		j := c
		for sa[j] != empty {
			j--
		}
		sa[j] = p
	}
	return false
}

// placeHead is the mirror image of placeTail: it inserts position p into the
// bucket whose head slot is c, filling left to right, with the counter one
// slot above the head.
func placeHead(sa []int32, p, c int32) bool {
	n := int32(len(sa))
	switch sa[c] {
	case unique:
		sa[c] = p
	case multi:
		if sa[c+1] == empty {
			if c+2 < n && sa[c+2] == empty {
				sa[c+2] = p
				sa[c+1] = 1
				return false
			}
			sa[c] = p
			sa[c+1] = empty
		} else {
			ctr := sa[c+1]
			if c+ctr+2 < n && sa[c+ctr+2] == empty {
				sa[c+ctr+2] = p
				sa[c+1] = ctr + 1
				return false
			}
			for j := c; j < c+ctr; j++ {
				sa[j] = sa[j+2]
			}
			sa[c+ctr] = p
			sa[c+ctr+1] = empty
			return true
		}
	default:
		j := c
		for sa[j] != empty {
			j++
		}
		sa[j] = p
	}
	return false
}

// flushTail sweeps sa right to left and compacts every still-open bucket
// flush against its tail, clearing the marker and counter slots. Needed when
// a placement pass ends with partially filled buckets.
func flushTail(sa []int32) {
	for i := int32(len(sa)) - 1; i != 0; i-- {
		if sa[i] == multi {
			ctr := sa[i-1]
			for j := i; j >= i-ctr+1; j-- {
				sa[j] = sa[j-2]
			}
			i -= ctr
			sa[i] = empty
			i--
			sa[i] = empty
		}
	}
}

// flushHead is the mirror image of flushTail for buckets filled left to
// right. It leaves sa[0] alone; the sentinel never participates.
func flushHead(sa []int32) {
	n := int32(len(sa))
	for i := int32(1); i < n; i++ {
		if sa[i] == multi {
			ctr := sa[i+1]
			for j := i; j < i+ctr; j++ {
				sa[j] = sa[j+2]
			}
			i += ctr
			sa[i] = empty
			i++
			sa[i] = empty
		}
	}
}
