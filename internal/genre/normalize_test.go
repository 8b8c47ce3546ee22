package genre

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		genres []string
		energy float64
		want   []string
	}{
		{
			name:   "exact matches",
			genres: []string{"Pop", "Dance"},
			energy: 0.5,
			want:   []string{"pop", "dance"},
		},
		{
			name:   "whitespace to hyphen",
			genres: []string{"Hip Hop", "Heavy Metal"},
			energy: 0.5,
			want:   []string{"hip-hop", "heavy-metal"},
		},
		{
			name:   "truncates to two",
			genres: []string{"Pop", "Rock", "Jazz", "Soul"},
			energy: 0.5,
			want:   []string{"pop", "rock"},
		},
		{
			name:   "substring overlap",
			genres: []string{"Pop Ballads"},
			energy: 0.5,
			want:   []string{"pop"},
		},
		{
			name:   "unmatched discarded",
			genres: []string{"Vaporwave Revival", "Jazz"},
			energy: 0.5,
			want:   []string{"jazz"},
		},
		{
			name:   "high energy default",
			genres: []string{"Zydeco Fusion"},
			energy: 0.9,
			want:   []string{"pop", "dance"},
		},
		{
			name:   "low energy default",
			genres: []string{"Zydeco Fusion"},
			energy: 0.1,
			want:   []string{"classical", "ambient"},
		},
		{
			name:   "mid energy default",
			genres: []string{"Zydeco Fusion"},
			energy: 0.5,
			want:   []string{"indie", "chill"},
		},
		{
			name:   "empty input uses default",
			genres: nil,
			energy: 0.8,
			want:   []string{"pop", "dance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.genres, tt.energy)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tt.genres, tt.energy, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// A genre already in whitelist form passes through unchanged.
	for _, seed := range []string{"hip-hop", "indie-pop", "r-n-b", "chill"} {
		got := Normalize([]string{seed}, 0.5)
		if !slices.Equal(got, []string{seed}) {
			t.Errorf("Normalize([%q]) = %v, want [%q]", seed, got, seed)
		}
	}
}

func TestSeedsReturnsCopy(t *testing.T) {
	seeds := Seeds()
	if len(seeds) != len(seedWhitelist) {
		t.Fatalf("Seeds() length = %d, want %d", len(seeds), len(seedWhitelist))
	}
	seeds[0] = "mutated"
	if seedWhitelist[0] == "mutated" {
		t.Error("Seeds() should return a copy, not the backing slice")
	}
}
