// Package genre maps free-form genre labels onto the closed seed vocabulary
// accepted by the Spotify recommendation endpoint.
package genre

import "strings"

const maxSeeds = 2

// Normalize maps genre labels to at most two whitelisted seed tokens.
//
// Each label is lowercased with whitespace replaced by hyphens, then matched
// exactly against the whitelist; failing that, the first whitelist entry that
// is a substring of the label (or vice versa) is used. Labels with no match
// are discarded. When nothing survives, an energy-based default keeps the
// recommendation request viable.
func Normalize(genres []string, energy float64) []string {
	var matched []string

	for _, g := range genres {
		if len(matched) == maxSeeds {
			break
		}

		normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(g)), " ", "-")
		if normalized == "" {
			continue
		}

		if _, ok := seedSet[normalized]; ok {
			matched = append(matched, normalized)
			continue
		}

		if seed, ok := overlapMatch(normalized); ok {
			matched = append(matched, seed)
		}
	}

	if len(matched) == 0 {
		return energyDefault(energy)
	}
	return matched
}

// overlapMatch finds the first whitelist entry sharing a substring relation
// with the normalized label.
func overlapMatch(normalized string) (string, bool) {
	for _, seed := range seedWhitelist {
		if strings.Contains(normalized, seed) || strings.Contains(seed, normalized) {
			return seed, true
		}
	}
	return "", false
}

// energyDefault picks a safe seed pair when no label matched.
func energyDefault(energy float64) []string {
	switch {
	case energy > 0.7:
		return []string{"pop", "dance"}
	case energy < 0.3:
		return []string{"classical", "ambient"}
	default:
		return []string{"indie", "chill"}
	}
}
