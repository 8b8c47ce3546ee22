package web

import (
	"testing"

	"github.com/jmwatt/go-mood-playlist/internal/mood"
	"github.com/jmwatt/go-mood-playlist/internal/playlist"
)

func TestStoredRoundTrip(t *testing.T) {
	p := playlist.Playlist{
		ID:          "local-id",
		Name:        "Energetic Mood - 4/2/2024",
		Description: "High energy",
		SpotifyID:   "sp123",
		SpotifyURL:  "https://open.spotify.com/playlist/sp123",
		CoverImage:  "https://i.scdn.co/image/cover",
		Tracks: []playlist.Track{
			{ID: "t1", Name: "One", Artist: "A", Album: "X", Duration: "3:29"},
			{ID: "t2", Name: "Two", Artist: "B", Album: "Y", Duration: "2:10"},
		},
		MoodAnalysis: mood.Analysis{Mood: "Energetic", Energy: 0.8, Valence: 0.9},
	}

	stored, tracks := toStored(p, "user1")

	if stored.SpotifyID != "sp123" {
		t.Errorf("SpotifyID = %q, want sp123", stored.SpotifyID)
	}
	if stored.UserID != "user1" {
		t.Errorf("UserID = %q, want user1", stored.UserID)
	}
	if len(tracks) != 2 || tracks[1].Position != 1 {
		t.Fatalf("tracks = %+v, want 2 positioned tracks", tracks)
	}

	back := fromStored(stored, tracks)
	if back.Name != p.Name || back.SpotifyID != p.SpotifyID {
		t.Errorf("fromStored() = %q/%q, want %q/%q", back.Name, back.SpotifyID, p.Name, p.SpotifyID)
	}
	if back.MoodAnalysis.Mood != "Energetic" || back.MoodAnalysis.Energy != 0.8 {
		t.Errorf("MoodAnalysis = %+v, lost in round trip", back.MoodAnalysis)
	}
	if len(back.Tracks) != 2 || back.Tracks[0].ID != "t1" {
		t.Errorf("Tracks = %+v", back.Tracks)
	}
}

func TestToStoredGuestPlaylistUsesOwnID(t *testing.T) {
	p := playlist.Playlist{ID: "guest-uuid", Name: "Relaxed Mood - 1/5/2024"}

	stored, _ := toStored(p, "user1")
	if stored.SpotifyID != "guest-uuid" {
		t.Errorf("SpotifyID = %q, want the playlist's own id", stored.SpotifyID)
	}
}

func TestMoodPoint(t *testing.T) {
	p := playlist.Playlist{MoodAnalysis: mood.Analysis{Mood: "Focused", Energy: 0.4}}
	stored, _ := toStored(p, "user1")

	m, ok := moodPoint(*stored)
	if !ok {
		t.Fatal("moodPoint() = false for playlist with mood data")
	}
	if m.Energy != 0.4 {
		t.Errorf("Energy = %v, want 0.4", m.Energy)
	}
}
