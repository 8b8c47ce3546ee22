package genre

// seedWhitelist is the closed vocabulary accepted by the Spotify
// recommendation endpoint (the available-genre-seeds list). Tokens outside
// this list are rejected outright by the endpoint, which is why normalization
// must never emit anything else.
var seedWhitelist = []string{
	"acoustic", "afrobeat", "alt-rock", "alternative", "ambient", "anime",
	"black-metal", "bluegrass", "blues", "bossanova", "brazil", "breakbeat",
	"british", "cantopop", "chicago-house", "children", "chill", "classical",
	"club", "comedy", "country", "dance", "dancehall", "death-metal",
	"deep-house", "detroit-techno", "disco", "disney", "drum-and-bass", "dub",
	"dubstep", "edm", "electro", "electronic", "emo", "folk", "forro",
	"french", "funk", "garage", "german", "gospel", "goth", "grindcore",
	"groove", "grunge", "guitar", "happy", "hard-rock", "hardcore",
	"hardstyle", "heavy-metal", "hip-hop", "holidays", "honky-tonk", "house",
	"idm", "indian", "indie", "indie-pop", "industrial", "iranian", "j-dance",
	"j-idol", "j-pop", "j-rock", "jazz", "k-pop", "kids", "latin", "latino",
	"malay", "mandopop", "metal", "metal-misc", "metalcore", "minimal-techno",
	"movies", "mpb", "new-age", "new-release", "opera", "pagode", "party",
	"philippines-opm", "piano", "pop", "pop-film", "post-dubstep",
	"power-pop", "progressive-house", "psych-rock", "punk", "punk-rock",
	"r-n-b", "rainy-day", "reggae", "reggaeton", "road-trip", "rock",
	"rock-n-roll", "rockabilly", "romance", "sad", "salsa", "samba",
	"sertanejo", "show-tunes", "singer-songwriter", "ska", "sleep",
	"songwriter", "soul", "soundtracks", "spanish", "study", "summer",
	"swedish", "synth-pop", "tango", "techno", "trance", "trip-hop",
	"turkish", "work-out", "world-music",
}

// seedSet provides O(1) exact-match lookups into the whitelist.
var seedSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(seedWhitelist))
	for _, s := range seedWhitelist {
		set[s] = struct{}{}
	}
	return set
}()

// Seeds returns the full whitelist, for callers that need the vocabulary
// itself (e.g. the genre passthrough endpoint's local fallback).
func Seeds() []string {
	out := make([]string, len(seedWhitelist))
	copy(out, seedWhitelist)
	return out
}
