// Package mood classifies free-text mood descriptions into structured music
// parameters. Two interchangeable strategies exist: a remote OpenAI call and
// a deterministic keyword matcher that needs no credentials.
package mood

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/jmwatt/go-mood-playlist/internal/apperr"
)

// Analysis is the structured mood descriptor produced by a classifier.
// Values are taken as-is from the classifier; numeric fields are not clamped
// before use downstream.
type Analysis struct {
	Mood         string   `json:"mood"`
	Genres       []string `json:"genres"`
	Energy       float64  `json:"energy"`
	Valence      float64  `json:"valence"`
	Tempo        float64  `json:"tempo"`
	Acousticness float64  `json:"acousticness"`
	Danceability float64  `json:"danceability"`
	Description  string   `json:"description"`
}

// Strategy analyzes text into a mood descriptor.
type Strategy interface {
	Analyze(ctx context.Context, text string) (Analysis, error)
}

// Classifier coordinates the remote strategy with the keyword fallback.
// When the remote call fails the keyword result is substituted transparently;
// a missing credential is surfaced as a config error instead since the
// caller asked for remote analysis it cannot get.
type Classifier struct {
	remote   Strategy // nil when no API key is configured
	fallback Strategy
	logger   *log.Logger
}

// NewClassifier creates a Classifier. remote may be nil.
func NewClassifier(remote Strategy, logger *log.Logger) *Classifier {
	return &Classifier{
		remote:   remote,
		fallback: KeywordStrategy{},
		logger:   logger,
	}
}

// Analyze classifies text with the remote strategy, substituting the keyword
// fallback on upstream failure.
func (c *Classifier) Analyze(ctx context.Context, text string) (Analysis, error) {
	if text == "" {
		return Analysis{}, apperr.Input("text is required")
	}
	if c.remote == nil {
		return Analysis{}, apperr.Config("OpenAI API key is not configured")
	}

	analysis, err := c.remote.Analyze(ctx, text)
	if err != nil {
		c.logger.Warn("remote mood analysis failed, using keyword fallback", "err", err)
		return c.fallback.Analyze(ctx, text)
	}
	return analysis, nil
}

// AnalyzeFallback classifies text with the keyword strategy only.
func (c *Classifier) AnalyzeFallback(ctx context.Context, text string) (Analysis, error) {
	if text == "" {
		return Analysis{}, apperr.Input("text is required")
	}
	return c.fallback.Analyze(ctx, text)
}
