// Copyright (c) 2026 Nikolai Krylov
// Licensed under the MIT License. See LICENSE file in the project root for details.

// sabench measures suffix array construction and lookup on synthetic
// corpora. Each run prints one CSV line:
//
//	run,n,sigma,build_ns,build_peak,build_alloc,query_ns
//
// Corpora are seeded, so runs are reproducible across machines.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"slices"
	"sort"
	"time"

	"github.com/itchio/randsource"
	"github.com/nkrylov/saca"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

func currentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

// genCorpus returns a sentinel-terminated sequence over [1, sigma]. A
// sigma of 256 switches to a byte stream, the common case for file data.
func genCorpus(n int, sigma int32, seed int64) []int32 {
	s := make([]int32, n+1)
	if sigma == 256 {
		prng := randsource.Reader{
			Source: rand.New(rand.NewSource(seed)),
		}
		buf := make([]byte, n)
		if _, err := prng.Read(buf); err != nil {
			panic(err)
		}
		for i, c := range buf {
			s[i] = int32(c) + 1
		}
		return s
	}
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		s[i] = r.Int31n(sigma) + 1
	}
	return s
}

func measureConstruct(src []int32, sigma int32) (time.Duration, uint64, uint64, []int32) {
	s := slices.Clone(src)
	sa := make([]int32, len(s))
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	if err := saca.Construct(s, sa, sigma); err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	return dur, peak, currentAlloc(), sa
}

func measureQueries(src []int32, queries, plen int, seed int64) time.Duration {
	text := src[:len(src)-1]
	x, err := saca.New(text)
	if err != nil {
		panic(err)
	}
	r := rand.New(rand.NewSource(seed))
	start := time.Now()
	for i := 0; i < queries; i++ {
		at := r.Intn(len(text) - plen + 1)
		_ = x.Lookup(text[at : at+plen])
	}
	return time.Since(start)
}

func verify(src, sa []int32) {
	exp := make([]int32, len(src))
	for i := range exp {
		exp[i] = int32(i)
	}
	sort.Slice(exp, func(i, j int) bool {
		return slices.Compare(src[exp[i]:], src[exp[j]:]) < 0
	})
	if !slices.Equal(exp, sa) {
		fmt.Fprintln(os.Stderr, "suffix array does not match reference order")
		os.Exit(1)
	}
}

func main() {
	n := flag.Int("n", 1<<20, "corpus length")
	sigma := flag.Int("sigma", 256, "alphabet size; 256 selects a byte corpus")
	runs := flag.Int("runs", 3, "number of runs")
	seed := flag.Int64("seed", 1, "base corpus seed")
	queries := flag.Int("queries", 0, "lookup queries per run, 0 to skip")
	plen := flag.Int("plen", 8, "lookup query length")
	check := flag.Bool("verify", false, "compare each result against a reference sort")
	cpuprofile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	if *n <= 0 || *sigma <= 0 || *sigma >= *n || *plen <= 0 || *plen > *n {
		fmt.Fprintln(os.Stderr, "usage: sabench -n=<length> -sigma=<alphabet> [-runs=<runs>] [-queries=<q> -plen=<p>] [-verify] [-cpuprofile=<file>]")
		os.Exit(1)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	for run := 0; run < *runs; run++ {
		src := genCorpus(*n, int32(*sigma), *seed+int64(run))
		bt, bp, ba, sa := measureConstruct(src, int32(*sigma))
		if *check {
			verify(src, sa)
		}
		var qt time.Duration
		if *queries > 0 {
			qt = measureQueries(src, *queries, *plen, *seed+int64(run))
		}
		fmt.Printf("%d,%d,%d,%d,%d,%d,%d\n",
			run, *n, *sigma, bt.Nanoseconds(), bp, ba, qt.Nanoseconds())
	}
}
