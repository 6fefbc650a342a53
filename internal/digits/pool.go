// This file provides scratch-buffer pooling for multiplication and division
// to reduce GC pressure on large operands.

package digits

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Word Slice Pools
// ─────────────────────────────────────────────────────────────────────────────

// wordPools pools scratch []Word slices by size class.
// Size classes are powers of 4 from 64 to 4M words.
var wordPools = [...]sync.Pool{
	{New: func() any { return make([]Word, 64) }},
	{New: func() any { return make([]Word, 256) }},
	{New: func() any { return make([]Word, 1024) }},
	{New: func() any { return make([]Word, 4096) }},
	{New: func() any { return make([]Word, 16384) }},
	{New: func() any { return make([]Word, 65536) }},
	{New: func() any { return make([]Word, 262144) }},
	{New: func() any { return make([]Word, 1048576) }},
	{New: func() any { return make([]Word, 4194304) }},
}

// wordSizes defines the size classes for word pools.
var wordSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304}

// wordPoolIndex returns the pool index for a given size, or -1 if the size
// is too large for pooling. Class i holds 4^(i+3) words.
func wordPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > wordSizes[len(wordSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireWords returns a zeroed scratch slice of exactly size words.
//
//	s := acquireWords(n)
//	defer releaseWords(s)
func acquireWords(size int) []Word {
	idx := wordPoolIndex(size)
	if idx < 0 {
		return make([]Word, size)
	}
	s := wordPools[idx].Get().([]Word)
	clear(s)
	return s[:size]
}

// releaseWords returns a slice obtained from acquireWords to its pool.
// Slices whose capacity does not match a size class are left to the GC.
func releaseWords(s []Word) {
	if s == nil {
		return
	}
	c := cap(s)
	idx := wordPoolIndex(c)
	if idx >= 0 && wordSizes[idx] == c {
		wordPools[idx].Put(s[:c])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Residue Pools (NTT coefficient vectors)
// ─────────────────────────────────────────────────────────────────────────────

// residuePools pools []uint64 transform buffers. Transform lengths are
// powers of two, so each class is exactly one power of two from 2^6 to 2^22.
var residuePools [17]sync.Pool

const minResidueLog = 6

func init() {
	for i := range residuePools {
		n := 1 << (i + minResidueLog)
		residuePools[i].New = func() any { return make([]uint64, n) }
	}
}

// residuePoolIndex returns the pool index for a transform of size n, or -1
// when n is outside the pooled range.
func residuePoolIndex(n int) int {
	if n <= 0 {
		return 0
	}
	idx := bits.Len(uint(n-1)) - minResidueLog
	if idx < 0 {
		idx = 0
	}
	if idx >= len(residuePools) {
		return -1
	}
	return idx
}

// acquireResidues returns a zeroed []uint64 of length n.
func acquireResidues(n int) []uint64 {
	idx := residuePoolIndex(n)
	if idx < 0 {
		return make([]uint64, n)
	}
	s := residuePools[idx].Get().([]uint64)
	s = s[:n]
	clear(s)
	return s
}

// releaseResidues returns a slice obtained from acquireResidues.
func releaseResidues(s []uint64) {
	if s == nil {
		return
	}
	c := cap(s)
	idx := residuePoolIndex(c)
	if idx >= 0 && 1<<(idx+minResidueLog) == c {
		residuePools[idx].Put(s[:c])
	}
}

// WarmPools pre-populates the word pools for operands of up to maxWords
// words so the first large multiplication does not pay for allocation.
func WarmPools(maxWords int) {
	for i, size := range wordSizes {
		if size > 4*maxWords {
			break
		}
		wordPools[i].Put(make([]Word, size))
	}
}
