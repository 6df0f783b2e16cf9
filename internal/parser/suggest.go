package parser

import "github.com/sahilm/fuzzy"

// suggest returns the known flag closest to an unknown token, or an
// empty string when none is close enough.
func suggest(token string, flags []string) string {
	if token == "" || len(flags) == 0 {
		return ""
	}

	if matches := fuzzy.Find(token, flags); len(matches) > 0 {
		return matches[0].Str
	}

	choice, dist := closestChoice(token, flags)
	if dist > max(2, len(token)/3) {
		return ""
	}

	return choice
}

func levenshtein(str string, tgt string) int {
	if len(str) == 0 {
		return len(tgt)
	}

	if len(tgt) == 0 {
		return len(str)
	}

	src, dst := []rune(str), []rune(tgt)

	dists := make([][]int, len(src)+1)
	for i := range dists {
		dists[i] = make([]int, len(dst)+1)
		dists[i][0] = i
	}

	for j := range dists[0] {
		dists[0][j] = j
	}

	for sidx, sc := range src {
		for tidx, tc := range dst {
			if sc == tc {
				dists[sidx+1][tidx+1] = dists[sidx][tidx]
			} else {
				dists[sidx+1][tidx+1] = dists[sidx][tidx] + 1
				if dists[sidx+1][tidx] < dists[sidx+1][tidx+1] {
					dists[sidx+1][tidx+1] = dists[sidx+1][tidx] + 1
				}
				if dists[sidx][tidx+1] < dists[sidx+1][tidx+1] {
					dists[sidx+1][tidx+1] = dists[sidx][tidx+1] + 1
				}
			}
		}
	}

	return dists[len(src)][len(dst)]
}

func closestChoice(cmd string, choices []string) (string, int) {
	if len(choices) == 0 {
		return "", 0
	}

	mincmd := -1
	mindist := -1

	for i, c := range choices {
		l := levenshtein(cmd, c)

		if mincmd < 0 || l < mindist {
			mindist = l
			mincmd = i
		}
	}

	return choices[mincmd], mindist
}
