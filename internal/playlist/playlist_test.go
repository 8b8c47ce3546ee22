package playlist

import (
	"testing"
	"time"

	"github.com/jmwatt/go-mood-playlist/internal/mood"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{209000, "3:29"},
		{60000, "1:00"},
		{0, "0:00"},
		{59999, "0:59"},
		{61000, "1:01"},
		{413000, "6:53"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.ms); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	now := time.Date(2023, 4, 2, 0, 0, 0, 0, time.UTC)
	got := Name(mood.Analysis{Mood: "Relaxed"}, now)
	if got != "Relaxed Mood - 4/2/2023" {
		t.Errorf("Name() = %q", got)
	}
}

func TestSummarize(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := Playlist{
		ID:          "p1",
		Name:        "Chill Mix",
		Description: "desc",
		CoverImage:  "cover.jpg",
		CreatedAt:   created,
		Tracks:      []Track{{ID: "t1"}},
	}

	s := p.Summarize()
	if s.ID != "p1" || s.Name != "Chill Mix" || s.Description != "desc" || s.CoverImage != "cover.jpg" || !s.CreatedAt.Equal(created) {
		t.Errorf("Summarize() = %+v", s)
	}
}

func TestMockPlaylist(t *testing.T) {
	p := MockPlaylist("some-id")
	if p.ID != "some-id" {
		t.Errorf("ID = %q, want some-id", p.ID)
	}
	if len(p.Tracks) != 5 || p.Tracks[0].Name != "Don't Stop Me Now" {
		t.Errorf("Tracks = %+v", p.Tracks)
	}

	// Mutating the returned playlist must not corrupt the shared literal.
	p.Tracks[0].Name = "mutated"
	if again := MockPlaylist("x"); again.Tracks[0].Name != "Don't Stop Me Now" {
		t.Error("MockPlaylist returned shared track backing array")
	}
}
