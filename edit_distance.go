package main

// EditDistance counts the insertions, deletions and (if allowReplacements)
// substitutions turning s1 into s2, rune by rune. With maxEditDistance > 0
// it gives up early and returns maxEditDistance+1.
func EditDistance(s1 string, s2 string, allowReplacements bool, maxEditDistance int) int {
	from := []rune(s1)
	to := []rune(s2)

	// prev[x] is the distance from from[:y-1] to to[:x].
	prev := make([]int, len(to)+1)
	cur := make([]int, len(to)+1)
	for x := range prev {
		prev[x] = x
	}

	for y := 1; y <= len(from); y++ {
		cur[0] = y
		best := y
		for x := 1; x <= len(to); x++ {
			d := min(prev[x], cur[x-1]) + 1
			switch {
			case from[y-1] == to[x-1]:
				d = min(d, prev[x-1])
			case allowReplacements:
				d = min(d, prev[x-1]+1)
			}
			cur[x] = d
			best = min(best, d)
		}
		if maxEditDistance > 0 && best > maxEditDistance {
			return maxEditDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(to)]
}

// / Return the closest word within three edits of text, or "".
func SpellcheckStringV(text string, words []string) string {
	const kAllowReplacements = true
	const kMaxValidEditDistance = 3

	min_distance := kMaxValidEditDistance + 1
	result := ""
	for _, word := range words {
		distance := EditDistance(word, text, kAllowReplacements, kMaxValidEditDistance)
		if distance < min_distance {
			min_distance = distance
			result = word
		}
	}
	return result
}
