package playlist

import (
	"testing"
	"time"

	"github.com/jmwatt/go-mood-playlist/internal/mood"
)

func TestGuestStoreRoundTrip(t *testing.T) {
	store := NewMemoryGuestStore()

	created := Playlist{
		ID:          "g1",
		Name:        "Relaxed Mood - 4/2/2023",
		Description: "calm",
		Tracks: []Track{
			{ID: "1", Name: "Someone Like You", Artist: "Adele"},
			{ID: "2", Name: "Fix You", Artist: "Coldplay"},
		},
		MoodAnalysis: mood.Analysis{Mood: "Relaxed", Energy: 0.2, Valence: 0.3, Tempo: 70},
		CreatedAt:    time.Date(2023, 4, 2, 0, 0, 0, 0, time.UTC),
	}
	store.Append("guest-a", created)

	got, ok := store.Find("guest-a", "g1")
	if !ok {
		t.Fatal("Find() returned false for stored playlist")
	}
	if len(got.Tracks) != len(created.Tracks) {
		t.Fatalf("Tracks length = %d, want %d", len(got.Tracks), len(created.Tracks))
	}
	for i := range created.Tracks {
		if got.Tracks[i] != created.Tracks[i] {
			t.Errorf("Tracks[%d] = %+v, want %+v", i, got.Tracks[i], created.Tracks[i])
		}
	}
	if got.MoodAnalysis.Mood != created.MoodAnalysis.Mood || got.MoodAnalysis.Tempo != created.MoodAnalysis.Tempo {
		t.Errorf("MoodAnalysis = %+v, want %+v", got.MoodAnalysis, created.MoodAnalysis)
	}
}

func TestGuestStoreIsolation(t *testing.T) {
	store := NewMemoryGuestStore()
	store.Append("guest-a", Playlist{ID: "g1"})

	if _, ok := store.Find("guest-b", "g1"); ok {
		t.Error("Find() crossed guest boundaries")
	}
	if got := store.List("guest-b"); len(got) != 0 {
		t.Errorf("List() for unknown guest = %d playlists, want 0", len(got))
	}
}

func TestGuestStoreListNewestFirst(t *testing.T) {
	store := NewMemoryGuestStore()
	store.Append("guest-a", Playlist{ID: "first"})
	store.Append("guest-a", Playlist{ID: "second"})

	got := store.List("guest-a")
	if len(got) != 2 {
		t.Fatalf("List() length = %d, want 2", len(got))
	}
	if got[0].ID != "second" || got[1].ID != "first" {
		t.Errorf("List() order = [%s %s], want [second first]", got[0].ID, got[1].ID)
	}
}
