package similarity

// Ratio returns the similarity of a and b in [0, 1].
//
// The longest matching contiguous block is found, then the regions to its
// left and to its right are decomposed the same way. The summed block
// lengths M yield ratio 2*M/(len(a)+len(b)). Two empty strings are equal and
// score 1.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	matched := matchingTotal(ra, rb)
	return 2 * float64(matched) / float64(total)
}

type region struct {
	alo, ahi, blo, bhi int
}

func matchingTotal(a, b []rune) int {
	// Index every position of each rune in b once; longestMatch narrows by
	// region bounds.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	matched := 0
	stack := []region{{0, len(a), 0, len(b)}}
	for len(stack) > 0 {
		reg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, size := longestMatch(a, b2j, reg)
		if size == 0 {
			continue
		}
		matched += size
		stack = append(stack,
			region{reg.alo, i, reg.blo, j},
			region{i + size, reg.ahi, j + size, reg.bhi},
		)
	}
	return matched
}

// longestMatch finds the longest block of runes common to a[alo:ahi] and
// b[blo:bhi], preferring the earliest block on ties.
func longestMatch(a []rune, b2j map[rune][]int, reg region) (besti, bestj, bestSize int) {
	besti, bestj = reg.alo, reg.blo

	// lengths[j] is the length of the longest match ending at a[i], b[j].
	lengths := make(map[int]int)
	for i := reg.alo; i < reg.ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < reg.blo {
				continue
			}
			if j >= reg.bhi {
				break
			}
			size := lengths[j-1] + 1
			next[j] = size
			if size > bestSize {
				besti, bestj, bestSize = i-size+1, j-size+1, size
			}
		}
		lengths = next
	}
	return besti, bestj, bestSize
}
