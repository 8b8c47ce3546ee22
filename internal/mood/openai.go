package mood

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jmwatt/go-mood-playlist/internal/apperr"
)

const (
	openAIBaseURL = "https://api.openai.com/v1"
	openAIModel   = "gpt-4o"

	systemPrompt = "You are a music psychology expert who can analyze text to determine mood and appropriate music parameters."

	promptTemplate = `Analyze the following text and extract the user's mood or vibe. Then, suggest appropriate music parameters.

Text: %q

Return a JSON object with the following properties:
- mood: A short label for the mood (e.g., "energetic", "melancholic", "focused")
- genres: An array of 2-4 music genres that would fit this mood
- energy: A number from 0 to 1 representing how energetic the music should be
- valence: A number from 0 to 1 representing how positive the music should be
- tempo: A number from 60 to 180 representing the BPM of the music
- acousticness: A number from 0 to 1 representing how acoustic the music should be
- danceability: A number from 0 to 1 representing how danceable the music should be
- description: A short description of the mood and why these music parameters were chosen`
)

// OpenAIStrategy analyzes moods with a single-shot OpenAI chat completion.
// Requests are rate limited so a burst of analyses cannot exhaust the
// provider quota.
type OpenAIStrategy struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewOpenAIStrategy creates an OpenAIStrategy with the given API key.
func NewOpenAIStrategy(apiKey string) *OpenAIStrategy {
	return &OpenAIStrategy{
		apiKey:  apiKey,
		baseURL: openAIBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// wireAnalysis uses pointers for the numeric fields so a response that omits
// one can be rejected instead of silently defaulting to zero. Values are
// accepted as-is; no range clamping is performed.
type wireAnalysis struct {
	Mood         string   `json:"mood"`
	Genres       []string `json:"genres"`
	Energy       *float64 `json:"energy"`
	Valence      *float64 `json:"valence"`
	Tempo        *float64 `json:"tempo"`
	Acousticness *float64 `json:"acousticness"`
	Danceability *float64 `json:"danceability"`
	Description  string   `json:"description"`
}

// Analyze implements Strategy.
func (s *OpenAIStrategy) Analyze(ctx context.Context, text string) (Analysis, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return Analysis{}, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	payload := chatRequest{
		Model: openAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(promptTemplate, text)},
		},
		Temperature:    0.7,
		MaxTokens:      500,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Analysis{}, fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Analysis{}, fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Analysis{}, apperr.Upstream("calling OpenAI", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Analysis{}, fmt.Errorf("reading chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Analysis{}, apperr.Upstream("calling OpenAI", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Analysis{}, apperr.Upstream("decoding OpenAI response", err)
	}
	if parsed.Error != nil {
		return Analysis{}, apperr.Upstream("calling OpenAI", fmt.Errorf("%s", parsed.Error.Message))
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return Analysis{}, apperr.Upstream("calling OpenAI", fmt.Errorf("empty completion"))
	}

	return parseAnalysis(parsed.Choices[0].Message.Content)
}

// parseAnalysis decodes the model's JSON payload into an Analysis. Code fence
// wrapping is stripped first since models sometimes emit it despite the
// strict-JSON instruction.
func parseAnalysis(content string) (Analysis, error) {
	content = stripCodeFence(content)

	var wire wireAnalysis
	if err := json.Unmarshal([]byte(content), &wire); err != nil {
		return Analysis{}, apperr.Upstream("parsing mood analysis", err)
	}

	for name, v := range map[string]*float64{
		"energy":       wire.Energy,
		"valence":      wire.Valence,
		"tempo":        wire.Tempo,
		"acousticness": wire.Acousticness,
		"danceability": wire.Danceability,
	} {
		if v == nil {
			return Analysis{}, apperr.Upstream("parsing mood analysis", fmt.Errorf("missing field %q", name))
		}
	}

	return Analysis{
		Mood:         wire.Mood,
		Genres:       wire.Genres,
		Energy:       *wire.Energy,
		Valence:      *wire.Valence,
		Tempo:        *wire.Tempo,
		Acousticness: *wire.Acousticness,
		Danceability: *wire.Danceability,
		Description:  wire.Description,
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence, if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop an optional language tag on the opening fence.
	if idx := strings.Index(s, "\n"); idx >= 0 && !strings.ContainsAny(s[:idx], "{}") {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
