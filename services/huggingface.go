package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"techtonic/routes"
)

var ErrAINotConfigured = errors.New("huggingface API key not configured")

type AIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewAIClient(apiKey, model, baseURL string) *AIClient {
	return &AIClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *AIClient) Configured() bool {
	return c != nil && c.apiKey != ""
}

func (c *AIClient) Model() string {
	return c.model
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfResponse []struct {
	GeneratedText string `json:"generated_text"`
}

// Explain asks the model to explain a recommendation in answer to query.
func (c *AIClient) Explain(ctx context.Context, rec *routes.Recommendation, query string) (string, error) {
	if !c.Configured() {
		return "", ErrAINotConfigured
	}

	reqBody := hfRequest{
		Inputs: buildPrompt(rec, query),
		Parameters: hfParameters{
			MaxNewTokens:   300,
			Temperature:    0.3,
			ReturnFullText: false,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", fmt.Errorf("AI model is loading, please retry in a few seconds")
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HuggingFace API error (%d): %s", resp.StatusCode, string(body))
	}

	var hfResp hfResponse
	if err := json.Unmarshal(body, &hfResp); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %w", err)
	}

	if len(hfResp) == 0 || strings.TrimSpace(hfResp[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty response from AI")
	}

	return strings.TrimSpace(hfResp[0].GeneratedText), nil
}

func buildPrompt(rec *routes.Recommendation, query string) string {
	if strings.TrimSpace(query) == "" {
		query = "What's the best option?"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[INST] You are a helpful travel assistant. Answer briefly and honestly using only the options listed.\n\n")
	fmt.Fprintf(&b, "Trip: %s to %s (%.0f km)\n\nOptions (cheapest first):\n", rec.Source, rec.Destination, rec.DistanceKM)

	for i, o := range rec.TravelModes {
		fmt.Fprintf(&b, "  %d. %s: %s, %s (range %s), %d daily services, %s comfort\n",
			i+1, o.Mode, o.Duration, routes.FormatPrice(o.Price), o.EstimatedCostRange, o.Availability, o.Comfort)
	}

	fmt.Fprintf(&b, "\nFastest: %s\nCheapest: %s\nMost comfortable: %s\n",
		rec.BestFor.Fastest, rec.BestFor.Cheapest, rec.BestFor.Comfort)
	fmt.Fprintf(&b, "\nTraveller question: %s\nIn 100 words or fewer, recommend one mode and explain why. [/INST]", query)

	return b.String()
}

// FallbackExplanation summarises a recommendation when the model is unavailable.
func FallbackExplanation(rec *routes.Recommendation) string {
	p := rec.Picks
	if len(rec.TravelModes) == 0 {
		return "Unable to provide recommendations at this time."
	}

	text := fmt.Sprintf(
		"For %s to %s (%.0f km): %s is the fastest at %s, %s is the cheapest at %s, and %s offers the most comfort (%s).",
		rec.Source, rec.Destination, rec.DistanceKM,
		p.Fastest.Mode, p.Fastest.Duration,
		p.Cheapest.Mode, routes.FormatPrice(p.Cheapest.Price),
		p.Comfort.Mode, p.Comfort.Comfort,
	)
	if p.Fastest.Mode == p.Cheapest.Mode {
		text += fmt.Sprintf(" %s wins on both time and price.", p.Fastest.Mode)
	}
	return text
}
