package playlist

import "sync"

// GuestStore keeps playlists for unauthenticated visitors, keyed by a guest
// cookie ID. It mirrors the browser-local playlist array of the web client:
// list, find, append and nothing else.
type GuestStore interface {
	List(guestID string) []Playlist
	Find(guestID, playlistID string) (Playlist, bool)
	Append(guestID string, p Playlist)
}

// MemoryGuestStore is an in-memory GuestStore.
type MemoryGuestStore struct {
	mu        sync.RWMutex
	playlists map[string][]Playlist
}

// NewMemoryGuestStore creates an empty MemoryGuestStore.
func NewMemoryGuestStore() *MemoryGuestStore {
	return &MemoryGuestStore{
		playlists: make(map[string][]Playlist),
	}
}

// List returns all playlists for a guest, newest first.
func (s *MemoryGuestStore) List(guestID string) []Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.playlists[guestID]
	out := make([]Playlist, len(stored))
	for i, p := range stored {
		out[len(stored)-1-i] = p
	}
	return out
}

// Find returns the guest's playlist with the given id.
func (s *MemoryGuestStore) Find(guestID, playlistID string) (Playlist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.playlists[guestID] {
		if p.ID == playlistID {
			return p, true
		}
	}
	return Playlist{}, false
}

// Append stores a playlist for a guest.
func (s *MemoryGuestStore) Append(guestID string, p Playlist) {
	s.mu.Lock()
	s.playlists[guestID] = append(s.playlists[guestID], p)
	s.mu.Unlock()
}

var _ GuestStore = (*MemoryGuestStore)(nil)
