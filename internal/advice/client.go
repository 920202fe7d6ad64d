package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Fallback is returned whenever the style-advice provider cannot answer.
// Advice is cosmetic; a provider failure must never surface as an error in
// the booking flow.
const Fallback = "The AI consultant is currently sharpening its scissors. Please try again soon."

const consultantPrompt = `You are an expert celebrity barber and style consultant. ` +
	`A client is asking for advice: "%s". Provide 3 concise, professional ` +
	`recommendations for their hair or beard style. Keep it under 150 words.`

// Client calls a Gemini-style text-generation endpoint. One request, no
// retries; every failure path collapses into the fixed fallback string.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GetAdvice asks the provider for styling recommendations. It always returns
// a displayable string.
func (c *Client) GetAdvice(ctx context.Context, prompt string) string {
	body := generateRequest{
		Contents: []content{{
			Parts: []part{{Text: fmt.Sprintf(consultantPrompt, prompt)}},
		}},
		Config: genConfig{Temperature: 0.7},
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return Fallback
	}

	url := c.baseURL + "/v1beta/models/" + c.model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return Fallback
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Println("advice request failed:", err)
		return Fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("advice provider status:", resp.StatusCode)
		return Fallback
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Println("advice decode failed:", err)
		return Fallback
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return Fallback
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return Fallback
	}
	return text
}
