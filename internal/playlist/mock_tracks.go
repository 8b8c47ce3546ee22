package playlist

import "github.com/jmwatt/go-mood-playlist/internal/mood"

// Static track lists for the local builder, keyed by energy/valence quadrant.
// Quadrant rules are evaluated in order; the first match wins.

var upbeatTracks = []Track{
	{ID: "1", Name: "Don't Stop Me Now", Artist: "Queen", Album: "Jazz", AlbumCover: PlaceholderAlbumCover, Duration: "3:29", SpotifyURL: PlaceholderURL},
	{ID: "2", Name: "Uptown Funk", Artist: "Mark Ronson ft. Bruno Mars", Album: "Uptown Special", AlbumCover: PlaceholderAlbumCover, Duration: "4:30", SpotifyURL: PlaceholderURL},
	{ID: "3", Name: "Can't Stop the Feeling!", Artist: "Justin Timberlake", Album: "Trolls (Original Motion Picture Soundtrack)", AlbumCover: PlaceholderAlbumCover, Duration: "3:56", SpotifyURL: PlaceholderURL},
	{ID: "4", Name: "Happy", Artist: "Pharrell Williams", Album: "G I R L", AlbumCover: PlaceholderAlbumCover, Duration: "3:53", SpotifyURL: PlaceholderURL},
	{ID: "5", Name: "Good as Hell", Artist: "Lizzo", Album: "Cuz I Love You", AlbumCover: PlaceholderAlbumCover, Duration: "2:39", SpotifyURL: PlaceholderURL},
}

var melancholicTracks = []Track{
	{ID: "1", Name: "Someone Like You", Artist: "Adele", Album: "21", AlbumCover: PlaceholderAlbumCover, Duration: "4:45", SpotifyURL: PlaceholderURL},
	{ID: "2", Name: "Fix You", Artist: "Coldplay", Album: "X&Y", AlbumCover: PlaceholderAlbumCover, Duration: "4:55", SpotifyURL: PlaceholderURL},
	{ID: "3", Name: "Skinny Love", Artist: "Bon Iver", Album: "For Emma, Forever Ago", AlbumCover: PlaceholderAlbumCover, Duration: "3:58", SpotifyURL: PlaceholderURL},
	{ID: "4", Name: "Hurt", Artist: "Johnny Cash", Album: "American IV: The Man Comes Around", AlbumCover: PlaceholderAlbumCover, Duration: "3:38", SpotifyURL: PlaceholderURL},
	{ID: "5", Name: "Hallelujah", Artist: "Jeff Buckley", Album: "Grace", AlbumCover: PlaceholderAlbumCover, Duration: "6:53", SpotifyURL: PlaceholderURL},
}

var focusTracks = []Track{
	{ID: "1", Name: "Experience", Artist: "Ludovico Einaudi", Album: "In a Time Lapse", AlbumCover: PlaceholderAlbumCover, Duration: "5:15", SpotifyURL: PlaceholderURL},
	{ID: "2", Name: "Divenire", Artist: "Ludovico Einaudi", Album: "Divenire", AlbumCover: PlaceholderAlbumCover, Duration: "6:42", SpotifyURL: PlaceholderURL},
	{ID: "3", Name: "Nuvole Bianche", Artist: "Ludovico Einaudi", Album: "Una Mattina", AlbumCover: PlaceholderAlbumCover, Duration: "5:57", SpotifyURL: PlaceholderURL},
	{ID: "4", Name: "River Flows In You", Artist: "Yiruma", Album: "First Love", AlbumCover: PlaceholderAlbumCover, Duration: "3:50", SpotifyURL: PlaceholderURL},
	{ID: "5", Name: "Comptine d'un autre été", Artist: "Yann Tiersen", Album: "Amélie", AlbumCover: PlaceholderAlbumCover, Duration: "2:21", SpotifyURL: PlaceholderURL},
}

var defaultTracks = []Track{
	{ID: "1", Name: "Blinding Lights", Artist: "The Weeknd", Album: "After Hours", AlbumCover: PlaceholderAlbumCover, Duration: "3:20", SpotifyURL: PlaceholderURL},
	{ID: "2", Name: "Shape of You", Artist: "Ed Sheeran", Album: "÷", AlbumCover: PlaceholderAlbumCover, Duration: "3:53", SpotifyURL: PlaceholderURL},
	{ID: "3", Name: "Dance Monkey", Artist: "Tones and I", Album: "The Kids Are Coming", AlbumCover: PlaceholderAlbumCover, Duration: "3:29", SpotifyURL: PlaceholderURL},
	{ID: "4", Name: "Watermelon Sugar", Artist: "Harry Styles", Album: "Fine Line", AlbumCover: PlaceholderAlbumCover, Duration: "2:54", SpotifyURL: PlaceholderURL},
	{ID: "5", Name: "Bad Guy", Artist: "Billie Eilish", Album: "When We All Fall Asleep, Where Do We Go?", AlbumCover: PlaceholderAlbumCover, Duration: "3:14", SpotifyURL: PlaceholderURL},
}

// mockTracksFor selects the static track list for a mood's energy/valence
// quadrant.
func mockTracksFor(m mood.Analysis) []Track {
	switch {
	case m.Energy > 0.7 && m.Valence > 0.7:
		return cloneTracks(upbeatTracks)
	case m.Energy < 0.4 && m.Valence < 0.4:
		return cloneTracks(melancholicTracks)
	case m.Energy > 0.3 && m.Energy < 0.6 && m.Valence > 0.4:
		return cloneTracks(focusTracks)
	default:
		return cloneTracks(defaultTracks)
	}
}

// cloneTracks copies a static list so callers own their tracks.
func cloneTracks(tracks []Track) []Track {
	out := make([]Track, len(tracks))
	copy(out, tracks)
	return out
}

// mockPlaylist is the last-resort playlist served when a requested id cannot
// be resolved anywhere else.
var mockPlaylist = Playlist{
	Name:        "Energetic Workout Mix",
	Description: "High-energy tracks to power your workout session with upbeat rhythms and motivating beats.",
	CoverImage:  PlaceholderCover,
	SpotifyURL:  "https://open.spotify.com/playlist/37i9dQZF1DX76Wlfdnj7AP",
	Tracks: []Track{
		{ID: "1", Name: "Don't Stop Me Now", Artist: "Queen", Album: "Jazz", AlbumCover: PlaceholderAlbumCover, Duration: "3:29", SpotifyURL: "https://open.spotify.com/track/7hQJA50XrCWABAu5v6QZ4i"},
		{ID: "2", Name: "Blinding Lights", Artist: "The Weeknd", Album: "After Hours", AlbumCover: PlaceholderAlbumCover, Duration: "3:20", SpotifyURL: "https://open.spotify.com/track/0VjIjW4GlUZAMYd2vXMi3b"},
		{ID: "3", Name: "Physical", Artist: "Dua Lipa", Album: "Future Nostalgia", AlbumCover: PlaceholderAlbumCover, Duration: "3:41", SpotifyURL: "https://open.spotify.com/track/3AzjcOeAmA57TIOr9zF1ZW"},
		{ID: "4", Name: "Uptown Funk", Artist: "Mark Ronson ft. Bruno Mars", Album: "Uptown Special", AlbumCover: PlaceholderAlbumCover, Duration: "4:30", SpotifyURL: "https://open.spotify.com/track/32OlwWuMpZ6b0aN2RZOeMS"},
		{ID: "5", Name: "Can't Stop the Feeling!", Artist: "Justin Timberlake", Album: "Trolls (Original Motion Picture Soundtrack)", AlbumCover: PlaceholderAlbumCover, Duration: "3:56", SpotifyURL: "https://open.spotify.com/track/1WkMMavIMc4JZ8cfMmxHkI"},
	},
}

// MockPlaylist returns the last-resort mock playlist under the given id.
func MockPlaylist(id string) Playlist {
	p := mockPlaylist
	p.ID = id
	p.Tracks = cloneTracks(mockPlaylist.Tracks)
	return p
}
