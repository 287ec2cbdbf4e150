package crafting

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestAction returns the canonical name closest to an unknown input, or
// false when nothing is close enough. A prefix of a name counts as a match.
func SuggestAction(name string) (string, bool) {
	key := normalizeActionName(name)
	if key == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, cand := range ActionNames() {
		if len(key) >= 3 && strings.HasPrefix(cand, key) {
			return cand, true
		}
		dist := levenshtein.ComputeDistance(key, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func suggestLimit(length int) int {
	switch {
	case length <= 6:
		return 1
	case length <= 12:
		return 2
	default:
		return 3
	}
}
