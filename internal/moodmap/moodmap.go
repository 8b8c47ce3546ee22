// Package moodmap groups a user's saved playlists by mood similarity using
// k-means over their stored audio-feature targets.
package moodmap

import (
	"fmt"
	"slices"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// DefaultClusters is the number of mood groups built when the caller does
// not ask for a specific count.
const DefaultClusters = 3

// Point is one playlist positioned in mood space.
type Point struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Energy       float64 `json:"energy"`
	Valence      float64 `json:"valence"`
	Danceability float64 `json:"danceability"`
	Acousticness float64 `json:"acousticness"`
}

// Cluster is a named group of mood-adjacent playlists.
type Cluster struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Centroid    map[string]float64 `json:"centroid"`
	Playlists   []Point            `json:"playlists"`
}

// featureNames orders the coordinates used for clustering.
var featureNames = []string{"energy", "valence", "danceability", "acousticness"}

// pointObservation wraps a Point to satisfy clusters.Observation.
type pointObservation struct {
	point  Point
	coords clusters.Coordinates
}

func (o pointObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o pointObservation) Distance(c clusters.Coordinates) float64 {
	return o.coords.Distance(c)
}

// Build partitions playlists into up to numClusters mood groups. Fewer
// playlists than clusters degrades gracefully to one group per playlist.
// Groups are returned largest first.
func Build(points []Point, numClusters int) ([]Cluster, error) {
	if len(points) == 0 {
		return nil, nil
	}
	if numClusters <= 0 {
		numClusters = DefaultClusters
	}
	if numClusters > len(points) {
		numClusters = len(points)
	}

	var obs clusters.Observations
	for _, p := range points {
		obs = append(obs, pointObservation{
			point: p,
			coords: clusters.Coordinates{
				p.Energy,
				p.Valence,
				p.Danceability,
				p.Acousticness,
			},
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, numClusters)
	if err != nil {
		return nil, fmt.Errorf("partitioning playlists: %w", err)
	}

	var out []Cluster
	for _, c := range result {
		if len(c.Observations) == 0 {
			continue
		}

		centroid := make(map[string]float64, len(featureNames))
		for i, name := range featureNames {
			centroid[name] = c.Center[i]
		}

		cluster := Cluster{
			Name:        moodName(centroid),
			Description: moodDescription(centroid),
			Centroid:    centroid,
		}
		for _, o := range c.Observations {
			if po, ok := o.(pointObservation); ok {
				cluster.Playlists = append(cluster.Playlists, po.point)
			}
		}
		out = append(out, cluster)
	}

	slices.SortFunc(out, func(a, b Cluster) int {
		return len(b.Playlists) - len(a.Playlists)
	})
	return out, nil
}

// moodName labels a centroid by its energy/valence quadrant, with an
// acoustic modifier for strongly acoustic groups.
func moodName(centroid map[string]float64) string {
	highEnergy := centroid["energy"] > 0.6
	highValence := centroid["valence"] > 0.5

	var base string
	switch {
	case highEnergy && highValence:
		base = "Upbeat Party"
	case highEnergy && !highValence:
		base = "Intense & Dark"
	case !highEnergy && highValence:
		base = "Chill & Happy"
	default:
		base = "Reflective & Melancholy"
	}

	if centroid["acousticness"] > 0.6 {
		return base + " (Acoustic)"
	}
	return base
}

func moodDescription(centroid map[string]float64) string {
	switch {
	case centroid["energy"] > 0.6 && centroid["valence"] > 0.5:
		return "High-energy, positive vibes - perfect for dancing and celebrations"
	case centroid["energy"] > 0.6:
		return "Intense, driving energy with darker emotional tones"
	case centroid["valence"] > 0.5:
		return "Relaxed and uplifting - great for unwinding"
	default:
		return "Contemplative and introspective - ideal for quiet moments"
	}
}
