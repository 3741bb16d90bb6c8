// Package textmatch implements Ratcliff/Obershelp sequence similarity:
// twice the number of characters in the longest common matching blocks,
// divided by the total length of both strings. Scores are in [0, 1].
//
// The blocks are found by repeatedly taking the longest common substring and
// recursing on the pieces to its left and right, which makes the score
// identical to the classic "gestalt pattern matching" ratio.
package textmatch

// block is one maximal matching run: a[ai:ai+size] == b[bi:bi+size].
type block struct {
	ai, bi, size int
}

// Ratio returns the similarity of a and b in [0, 1]. Comparison is
// case-sensitive; callers that want case-insensitive scores lower-case the
// inputs first. Two empty strings are identical, so their ratio is 1.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}

	matched := 0
	for _, bl := range matchingBlocks(ra, rb) {
		matched += bl.size
	}

	return 2 * float64(matched) / float64(total)
}

// matchingBlocks returns all maximal matching runs in order.
func matchingBlocks(a, b []rune) []block {
	// Positions of each rune in b, for the inner loop of longestMatch.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	var blocks []block
	var recurse func(alo, ahi, blo, bhi int)
	recurse = func(alo, ahi, blo, bhi int) {
		m := longestMatch(a, b2j, alo, ahi, blo, bhi)
		if m.size == 0 {
			return
		}
		recurse(alo, m.ai, blo, m.bi)
		blocks = append(blocks, m)
		recurse(m.ai+m.size, ahi, m.bi+m.size, bhi)
	}
	recurse(0, len(a), 0, len(b))

	return blocks
}

// longestMatch finds the longest run with a[ai:ai+size] == b[bi:bi+size]
// inside the window a[alo:ahi] × b[blo:bhi]. Among equally long runs the
// earliest in a (then earliest in b) wins, which keeps results stable.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) block {
	best := block{ai: alo, bi: blo}

	// j2len[j] = length of the longest run ending at a[i-1], b[j].
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > best.size {
				best = block{ai: i - k + 1, bi: j - k + 1, size: k}
			}
		}
		j2len = newj2len
	}

	return best
}
