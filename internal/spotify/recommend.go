package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/jmwatt/go-mood-playlist/internal/mood"
	pl "github.com/jmwatt/go-mood-playlist/internal/playlist"
)

const recommendationLimit = 50

// Valid ranges for recommendation targets. Values outside these bounds are
// dropped from the query rather than clamped, matching the endpoint's own
// behavior of ignoring unusable targets.
const (
	tempoMin = 60
	tempoMax = 180
)

// Recommend fetches up to 50 recommended tracks for the given seed genres
// and mood targets.
func (c *Client) Recommend(ctx context.Context, seedGenres []string, m mood.Analysis) ([]pl.Track, error) {
	seeds := spotify.Seeds{Genres: seedGenres}

	recs, err := c.api.GetRecommendations(ctx, seeds, trackAttributes(m), spotify.Limit(recommendationLimit))
	if err != nil {
		return nil, fmt.Errorf("getting recommendations: %w", err)
	}

	tracks := make([]pl.Track, 0, len(recs.Tracks))
	for _, t := range recs.Tracks {
		tracks = append(tracks, convertSimpleTrack(t))
	}
	return tracks, nil
}

// trackAttributes builds the audio-feature targets for a recommendation
// query. Each target is included only when it lies within its valid range;
// an out-of-range value from the classifier is silently skipped.
func trackAttributes(m mood.Analysis) *spotify.TrackAttributes {
	attrs := spotify.NewTrackAttributes()

	if inUnitRange(m.Energy) {
		attrs = attrs.TargetEnergy(m.Energy)
	}
	if inUnitRange(m.Valence) {
		attrs = attrs.TargetValence(m.Valence)
	}
	if inUnitRange(m.Acousticness) {
		attrs = attrs.TargetAcousticness(m.Acousticness)
	}
	if inUnitRange(m.Danceability) {
		attrs = attrs.TargetDanceability(m.Danceability)
	}
	if m.Tempo >= tempoMin && m.Tempo <= tempoMax {
		attrs = attrs.TargetTempo(m.Tempo)
	}

	return attrs
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
