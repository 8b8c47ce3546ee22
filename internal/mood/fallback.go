package mood

import (
	"context"
	"strings"
)

// keywordRule pairs a keyword set with its fixed analysis. Rules are tested
// in order; the first rule with any matching keyword wins.
type keywordRule struct {
	keywords []string
	analysis Analysis
}

var keywordRules = []keywordRule{
	{
		keywords: []string{"happy", "joy", "excited", "energetic"},
		analysis: Analysis{
			Mood:         "Energetic",
			Genres:       []string{"Pop", "Dance", "Electronic", "Rock"},
			Energy:       0.8,
			Valence:      0.9,
			Tempo:        128,
			Acousticness: 0.2,
			Danceability: 0.8,
			Description:  "An upbeat, high-energy mood that calls for lively, uplifting music with a fast tempo and positive vibes.",
		},
	},
	{
		keywords: []string{"sad", "depressed", "melancholy"},
		analysis: Analysis{
			Mood:         "Melancholic",
			Genres:       []string{"Indie", "Folk", "Alternative", "Piano"},
			Energy:       0.3,
			Valence:      0.2,
			Tempo:        75,
			Acousticness: 0.7,
			Danceability: 0.3,
			Description:  "A reflective, somber mood that pairs well with emotional, slower-paced music featuring acoustic elements and minor keys.",
		},
	},
	{
		keywords: []string{"focus", "study", "concentrate", "work"},
		analysis: Analysis{
			Mood:         "Focused",
			Genres:       []string{"Ambient", "Classical", "Lo-fi", "Instrumental"},
			Energy:       0.4,
			Valence:      0.6,
			Tempo:        90,
			Acousticness: 0.6,
			Danceability: 0.2,
			Description:  "A concentrated state that benefits from non-distracting, instrumental music with a steady rhythm and minimal vocals.",
		},
	},
	{
		keywords: []string{"relax", "calm", "chill", "peaceful"},
		analysis: Analysis{
			Mood:         "Relaxed",
			Genres:       []string{"Ambient", "Chillout", "Acoustic", "Jazz"},
			Energy:       0.2,
			Valence:      0.7,
			Tempo:        70,
			Acousticness: 0.8,
			Danceability: 0.3,
			Description:  "A tranquil mood that calls for gentle, soothing music with soft textures and a slower tempo to promote relaxation.",
		},
	},
	{
		keywords: []string{"workout", "exercise", "gym", "run"},
		analysis: Analysis{
			Mood:         "Workout",
			Genres:       []string{"EDM", "Hip Hop", "Rock", "Pop"},
			Energy:       0.9,
			Valence:      0.8,
			Tempo:        140,
			Acousticness: 0.1,
			Danceability: 0.7,
			Description:  "A high-energy state that requires motivating, rhythmic music with a strong beat to maintain momentum during physical activity.",
		},
	},
	{
		keywords: []string{"romantic", "love", "date"},
		analysis: Analysis{
			Mood:         "Romantic",
			Genres:       []string{"R&B", "Soul", "Jazz", "Pop Ballads"},
			Energy:       0.5,
			Valence:      0.7,
			Tempo:        85,
			Acousticness: 0.5,
			Danceability: 0.6,
			Description:  "A warm, intimate mood that pairs well with smooth, soulful music featuring romantic themes and sensual rhythms.",
		},
	},
}

// balancedAnalysis is returned when no keyword set matches.
var balancedAnalysis = Analysis{
	Mood:         "Balanced",
	Genres:       []string{"Pop", "Rock", "Alternative", "Indie"},
	Energy:       0.6,
	Valence:      0.6,
	Tempo:        110,
	Acousticness: 0.4,
	Danceability: 0.5,
	Description:  "A balanced mood that works well with a mix of genres featuring moderate energy and a blend of acoustic and electronic elements.",
}

// KeywordStrategy is the local classification strategy. It is pure and
// deterministic: it matches fixed keyword sets against the lowercased input
// in priority order and returns the first match's canned analysis.
type KeywordStrategy struct{}

// Analyze implements Strategy. It never fails.
func (KeywordStrategy) Analyze(_ context.Context, text string) (Analysis, error) {
	lower := strings.ToLower(text)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.analysis, nil
			}
		}
	}

	return balancedAnalysis, nil
}
