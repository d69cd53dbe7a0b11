// Copyright (c) 2026 Nikolai Krylov
// Licensed under the MIT License. See LICENSE file in the project root for details.
package saca

// solver carries one construction instance. s and sa are the caller's
// buffers; recursive instances alias disjoint sub-ranges of the parent's sa,
// so the whole pipeline runs in the two arrays and nothing else.
type solver struct {
	s, sa []int32
	n     int32
	sigma int32
}

// solve runs the full pipeline: rename, sort LMS characters, sort LMS
// substrings by induction, reduce, recurse if ranks repeat, and induce the
// final order from the sorted LMS suffixes.
func (w *solver) solve() {
	w.rename()
	n1 := w.sortLMSChars()
	if n1 == 1 {
		// only the sentinel is LMS: the seed is trivially sorted
		w.induceAll()
		return
	}
	// the sorted LMS characters seed an induction pass, which leaves the LMS
	// substrings in their relative sorted order
	w.induceAll()
	end := w.moveSortedToEnd()
	maxRank, hasDup := w.reduce(end)

	s1 := w.sa[:n1]
	sa1 := w.sa[w.n-n1:]
	if hasDup {
		sub := &solver{s: s1, sa: sa1, n: n1, sigma: maxRank}
		sub.solve()
	} else {
		// every LMS substring is distinct, so rank order is already suffix
		// order and the reduced suffix array is the inverse permutation
		for i, r := range s1 {
			sa1[r] = int32(i)
		}
	}
	copy(s1, sa1) // reduced suffix array to the head; sa1 becomes scratch

	// rebuild the LMS position list in text order, last to first
	lms := sa1
	j := n1 - 1
	lms[j] = w.n - 1
	j--
	currIsS := false
	curr := w.s[w.n-2]
	for i := w.n - 3; i >= 0; i-- {
		c := w.s[i]
		leftIsS := c < curr || (c == curr && currIsS)
		if !leftIsS && currIsS {
			lms[j] = i + 1
			if j == 0 {
				break
			}
			j--
		}
		curr = c
		currIsS = leftIsS
	}

	// translate reduced positions back to LMS positions of s
	sa := s1
	for i := range sa {
		sa[i] = lms[sa[i]]
	}
	for i := range lms {
		lms[i] = empty
	}

	// redistribute the sorted LMS suffixes to their bucket tails; entries for
	// one bucket arrive consecutively, tail first, so a running offset from
	// the current tail is all the bookkeeping needed
	var currTail, offset int32
	for i := n1 - 1; i >= 1; i-- {
		v := sa[i]
		sa[i] = empty
		t := w.s[v]
		if t == currTail {
			offset++
		} else {
			currTail = t
			offset = 0
		}
		w.sa[currTail-offset] = v
	}
	w.induceAll()
}

// rename rewrites every L-type symbol of s to the index of its bucket head
// and every S-type symbol to the index of its bucket tail. Suffix order is
// unchanged: heads and tails are monotone in the symbol value and a bucket's
// head never collides with another bucket's tail. After this step "which
// bucket does a symbol belong to" is the symbol value itself. sa is used as
// the counting array and is left fully cleared to empty.
func (w *solver) rename() {
	s, sa := w.s, w.sa
	n := w.n

	// pass 1: bucket heads for everyone
	clear(sa[:w.sigma+1])
	for _, c := range s {
		sa[c]++
	}
	prev := int32(1) // bucket 0 holds the sentinel alone
	for i := int32(1); i < w.sigma; i++ {
		sa[i] += prev
		prev = sa[i]
	}
	for i := int32(0); i < n-1; i++ {
		// the sentinel stays 0 through every transformation
		s[i] = sa[s[i]-1]
	}

	// pass 2: bucket tails for the S-type symbols; renamed values now range
	// up to n-1, so the whole of sa serves as the counting array
	clear(sa)
	for _, c := range s {
		sa[c]++
	}
	prev = 0 // the sentinel bucket's tail is slot 0
	for i := int32(1); i < n; i++ {
		sa[i] += prev
		prev = sa[i]
	}
	nextIsS := true // the sentinel is S-type by definition
	next := int32(0)
	for i := n - 2; i >= 0; i-- {
		c := s[i]
		nextIsS = c < next || (c == next && nextIsS)
		if nextIsS {
			s[i] = sa[c]
		}
		next = s[i]
	}

	for i := range sa {
		sa[i] = empty
	}
}

// sortLMSChars places every LMS position into the tail region of its bucket,
// sorted by its single character, and returns the LMS count n1 including the
// sentinel. The first right-to-left scan only marks which buckets receive
// one entry (unique) or several (multi); the second performs the actual
// tail-ward placement, with the neighbor-slot counter standing in for a
// bucket pointer table.
func (w *solver) sortLMSChars() int32 {
	s, sa := w.s, w.sa
	n := w.n

	// s[n-2] exceeds the sentinel, so it is L-type; position 0 is never LMS
	currIsS := false
	curr := s[n-2]
	for i := n - 3; i >= 0; i-- {
		c := s[i]
		leftIsS := c < curr || (c == curr && currIsS)
		if !leftIsS && currIsS {
			// s[i+1] is LMS; curr is its bucket tail
			switch sa[curr] {
			case empty:
				sa[curr] = unique
			case unique:
				sa[curr] = multi
			}
		}
		curr = c
		currIsS = leftIsS
	}
	sa[0] = n - 1 // sentinel

	count := int32(0)
	currIsS = false
	curr = s[n-2]
	for i := n - 3; i >= 0; i-- {
		c := s[i]
		leftIsS := c < curr || (c == curr && currIsS)
		if !leftIsS && currIsS {
			placeTail(sa, i+1, curr)
			count++
		}
		curr = c
		currIsS = leftIsS
	}
	flushTail(sa)
	return count + 1
}

// induceAll sorts all suffixes by a two-phase induction from whatever sorted
// S-type seed currently occupies sa: first the L-suffixes, left to right,
// then the S-suffixes, right to left. Seeded with sorted LMS characters it
// sorts LMS substrings; seeded with fully sorted LMS suffixes it produces
// the final suffix array.
func (w *solver) induceAll() {
	s, sa := w.s, w.sa
	n := w.n

	// mark the buckets that will receive L-type entries
	nextIsL := false
	next := int32(0)
	for i := n - 2; i >= 0; i-- {
		c := s[i]
		nextIsL = c > next || (c == next && nextIsL)
		if nextIsL {
			switch sa[c] {
			case empty:
				sa[c] = unique
			case unique:
				sa[c] = multi
			}
		}
		next = c
	}

	// scan left to right; each resolved entry may induce its left neighbor.
	// A multi marker means the next slot is a counter, so step over both.
	// When a placement compacts the bucket the scan is currently inside,
	// its entries moved one pair toward the head and the index must back up.
	shiftedHead := int32(-1)
	for i := int32(0); i < n; {
		v := sa[i]
		if v == multi {
			shiftedHead = i
			i += 2
			continue
		}
		if v != unique && v != empty && v > 0 {
			j := v - 1
			c := s[j]
			if c >= s[v] {
				// equal renamed symbols here mean both are head pointers,
				// so s[j] is L-type either way
				if placeHead(sa, j, c) && shiftedHead == c {
					i--
					continue
				}
			}
		}
		i++
	}
	flushHead(sa)
	sa[0] = n - 1

	// the LMS seed has served its purpose; clear it so the S-induction can
	// rebuild the tail regions from scratch
	w.removeLMS()

	// mark the buckets that will receive S-type entries
	nextIsS := true
	next = 0
	for i := n - 2; i >= 0; i-- {
		c := s[i]
		nextIsS = c < next || (c == next && nextIsS)
		if nextIsS {
			switch sa[c] {
			case empty:
				sa[c] = unique
			case unique:
				sa[c] = multi
			}
		}
		next = c
	}

	// scan right to left, the mirror image of the L pass. Every bucket fills
	// completely here, so the markers all dissolve on their own and no final
	// flush is needed.
	shiftedTail := int32(-1)
	for i := n - 1; i != 0; {
		v := sa[i]
		if v == multi {
			shiftedTail = i
			i -= 2
			continue
		}
		if v != unique && v != empty && v > 0 {
			j := v - 1
			c := s[j]
			if w.inducesSType(i, v, c) {
				if placeTail(sa, j, c) && shiftedTail == c {
					i++
					continue
				}
			}
		}
		i--
	}
}

// inducesSType reports whether position v-1, with renamed symbol c, is
// S-type while the right-to-left S-induction scan sits at slot i holding v.
// When c and s[v] differ the comparison settles it. When they are equal,
// both were renamed into the same bucket and c is either that bucket's tail
// pointer (S-type) or head pointer (L-type): a pointer beyond the scan
// position must be the tail; a pointer at the scan position needs one probe
// into the bucket's state to tell.
func (w *solver) inducesSType(i, v, c int32) bool {
	s, sa := w.s, w.sa
	if c < s[v] {
		return true
	}
	if c != s[v] {
		return false
	}
	if c > i {
		return true
	}
	return sa[c] == multi || c < s[sa[c+1]]
}

// removeLMS clears the LMS entries out of sa between the L-induction and the
// S-induction. The bucket tag scheme is reused to count how many tail slots
// of each bucket hold LMS entries, then one right-to-left sweep erases
// exactly those runs.
func (w *solver) removeLMS() {
	s, sa := w.s, w.sa
	n := w.n

	currIsS := false
	curr := s[n-2]
	for i := n - 3; i >= 0; i-- {
		c := s[i]
		leftIsS := c < curr || (c == curr && currIsS)
		if !leftIsS && currIsS {
			switch sa[curr] {
			case multi:
				sa[curr-1]++
			case unique:
				sa[curr] = multi
				sa[curr-1] = 2
			default:
				sa[curr] = unique
			}
		}
		curr = c
		currIsS = leftIsS
	}

	// sa[0] is the sentinel and stays put
	for i := n - 1; i != 0; {
		switch sa[i] {
		case unique:
			sa[i] = empty
			i--
		case multi:
			ctr := sa[i-1]
			for j := i - ctr + 1; j <= i; j++ {
				sa[j] = empty
			}
			i -= ctr
		default:
			i--
		}
	}
}

// moveSortedToEnd relocates the sorted LMS substring positions from their
// bucket tails to the top of sa, preserving order, and clears the rest to
// empty. Returns the index of the sentinel's slot, i.e. n - n1. An entry is
// part of the LMS set when it sits in an S-type bucket tail region and its
// left neighbor in s is L-type; both tests read the renamed s directly.
func (w *solver) moveSortedToEnd() int32 {
	s, sa := w.s, w.sa
	n := w.n
	end := n - 1
	i := n - 1
outer:
	for i > 0 {
		v := sa[i]
		if s[v] < s[v+1] {
			// v is S-type, so slot i opens this bucket's tail region
			tail := i
			for {
				if v != 0 && s[v-1] > s[v] {
					sa[end] = v
					end--
				}
				i--
				if i == 0 {
					break outer
				}
				v = sa[i]
				if s[v] != tail {
					// left the run of S entries for this bucket
					if s[v] < s[v+1] {
						tail = i
						continue
					}
					break
				}
			}
		}
		i--
	}
	// the sentinel cannot be compared past the end of s, so it is placed
	// directly; it is the smallest LMS suffix
	sa[end] = n - 1
	for j := int32(0); j < end; j++ {
		sa[j] = empty
	}
	return end
}

// reduce assigns each sorted LMS substring a rank, incrementing only when an
// entry differs from its predecessor by (length, content), and reports the
// top rank plus whether any rank repeats. Ranks are parked at sa[pos/2] —
// LMS positions are never adjacent, so the slots cannot collide — and then
// compacted into sa[0..n1] to form the reduced sequence, sentinel rank last.
func (w *solver) reduce(end int32) (int32, bool) {
	s, sa := w.s, w.sa
	n := w.n
	var (
		prevLen, prevIdx int32
		rank             int32
		hasDup           bool
	)
	// slot end holds the sentinel, which keeps rank 0
	for i := end + 1; i < n; i++ {
		idx := sa[i]
		length := w.lmsLength(idx)
		if length != prevLen {
			rank++
		} else if equalRange(s, idx, prevIdx, length) {
			hasDup = true
		} else {
			rank++
		}
		sa[idx/2] = rank
		prevLen = length
		prevIdx = idx
	}

	j := int32(0)
	for i := int32(0); i < end; i++ {
		if sa[i] != empty {
			sa[j] = sa[i]
			j++
		}
	}
	sa[j] = 0 // the sentinel's rank
	for i := j + 1; i < end; i++ {
		sa[i] = empty
	}
	return rank, hasDup
}

// lmsLength returns the length of the LMS substring starting at k: the span
// to the next LMS position, inclusive of both endpoints, or to the end of s
// for the last one.
func (w *solver) lmsLength(k int32) int32 {
	s := w.s
	prev := s[k]
	lastDrop := int32(0)
	for i := k + 1; i < w.n; i++ {
		c := s[i]
		if prev > c {
			lastDrop = i
		} else if prev < c && lastDrop != 0 {
			return lastDrop - k + 1
		}
		prev = c
	}
	return w.n - k
}

func equalRange(s []int32, a, b, length int32) bool {
	for i := int32(0); i < length; i++ {
		if s[a+i] != s[b+i] {
			return false
		}
	}
	return true
}
