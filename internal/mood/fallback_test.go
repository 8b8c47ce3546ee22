package mood

import (
	"context"
	"testing"
)

func TestKeywordStrategyMatches(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantMood   string
		wantTempo  float64
		wantGenres []string
	}{
		{
			name:       "happy keyword",
			text:       "I'm feeling so happy today!",
			wantMood:   "Energetic",
			wantTempo:  128,
			wantGenres: []string{"Pop", "Dance", "Electronic", "Rock"},
		},
		{
			name:       "uppercase joy",
			text:       "PURE JOY",
			wantMood:   "Energetic",
			wantTempo:  128,
			wantGenres: []string{"Pop", "Dance", "Electronic", "Rock"},
		},
		{
			name:       "excited keyword",
			text:       "excited about the weekend",
			wantMood:   "Energetic",
			wantTempo:  128,
			wantGenres: []string{"Pop", "Dance", "Electronic", "Rock"},
		},
		{
			name:       "sad keyword",
			text:       "feeling sad and alone",
			wantMood:   "Melancholic",
			wantTempo:  75,
			wantGenres: []string{"Indie", "Folk", "Alternative", "Piano"},
		},
		{
			name:       "study keyword",
			text:       "need to study for finals",
			wantMood:   "Focused",
			wantTempo:  90,
			wantGenres: []string{"Ambient", "Classical", "Lo-fi", "Instrumental"},
		},
		{
			name:       "chill keyword",
			text:       "just want to chill tonight",
			wantMood:   "Relaxed",
			wantTempo:  70,
			wantGenres: []string{"Ambient", "Chillout", "Acoustic", "Jazz"},
		},
		{
			name:       "gym keyword",
			text:       "heading to the gym",
			wantMood:   "Workout",
			wantTempo:  140,
			wantGenres: []string{"EDM", "Hip Hop", "Rock", "Pop"},
		},
		{
			name:       "date keyword",
			text:       "getting ready for a date",
			wantMood:   "Romantic",
			wantTempo:  85,
			wantGenres: []string{"R&B", "Soul", "Jazz", "Pop Ballads"},
		},
		{
			name:       "no keyword match",
			text:       "just another tuesday",
			wantMood:   "Balanced",
			wantTempo:  110,
			wantGenres: []string{"Pop", "Rock", "Alternative", "Indie"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KeywordStrategy{}.Analyze(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if got.Mood != tt.wantMood {
				t.Errorf("Mood = %q, want %q", got.Mood, tt.wantMood)
			}
			if got.Tempo != tt.wantTempo {
				t.Errorf("Tempo = %v, want %v", got.Tempo, tt.wantTempo)
			}
			if len(got.Genres) != len(tt.wantGenres) {
				t.Fatalf("Genres = %v, want %v", got.Genres, tt.wantGenres)
			}
			for i, g := range tt.wantGenres {
				if got.Genres[i] != g {
					t.Errorf("Genres[%d] = %q, want %q", i, got.Genres[i], g)
				}
			}
		})
	}
}

func TestKeywordStrategyPriority(t *testing.T) {
	// "happy" (energetic set) outranks "sad" when both are present.
	got, err := KeywordStrategy{}.Analyze(context.Background(), "happy but also sad")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.Mood != "Energetic" {
		t.Errorf("Mood = %q, want %q", got.Mood, "Energetic")
	}
}

func TestKeywordStrategyDeterministic(t *testing.T) {
	first, _ := KeywordStrategy{}.Analyze(context.Background(), "peaceful evening")
	second, _ := KeywordStrategy{}.Analyze(context.Background(), "peaceful evening")

	if first.Mood != second.Mood || first.Energy != second.Energy || first.Description != second.Description {
		t.Errorf("repeated analysis differs: %+v vs %+v", first, second)
	}
}
