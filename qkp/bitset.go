package qkp

import "math/bits"

// bitset is a fixed-size bit array: decision bits, one per DP cell, or an
// item membership set over n items.
type bitset []uint64

func newBitset(size int) bitset {
	return make(bitset, setWords(size))
}

// setWords is the number of words holding size bits.
func setWords(size int) int { return (size + 63) >> 6 }

func (b bitset) set(i int) { b[i>>6] |= 1 << (uint(i) & 63) }

func (b bitset) test(i int) bool { return b[i>>6]&(1<<(uint(i)&63)) != 0 }

// appendMembers appends the indices of the set bits, ascending.
// Complexity: O(len(b) + popcount).
func (b bitset) appendMembers(out []int) []int {
	for k, word := range b {
		for word != 0 {
			out = append(out, k<<6+bits.TrailingZeros64(word))
			word &= word - 1
		}
	}

	return out
}
