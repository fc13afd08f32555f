// Package quoteparser turns pasted free-text freight requests (usually
// forwarded WhatsApp messages) into a quotation draft using the Gemini
// API.
package quoteparser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// ParsedQuote mirrors the quotation form fields the model is asked to
// extract. Missing fields come back zero-valued.
type ParsedQuote struct {
	ClientName  string  `json:"client_name"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	VehicleType string  `json:"vehicle_type"`
	WeightKG    float64 `json:"weight_kg"`
	ValueGoods  float64 `json:"value_goods"`
}

const prompt = `Analyze this freight request text (Brazilian Portuguese) and extract the following information. Return ONLY valid JSON.

If a field is missing or unclear, use an empty string ("") for strings and 0 for numbers.

Required JSON format:
{
"client_name": string,    // Requesting company or person
"origin": string,         // Pickup city/state, e.g. "Cuiabá - MT"
"destination": string,    // Delivery city/state
"vehicle_type": string,   // e.g. "Carreta", "Truck", "Bitrem"
"weight_kg": number,      // Cargo weight in kilograms
"value_goods": number     // Declared cargo value in BRL
}

Freight request text:
`

// ParseRequestText extracts quotation fields from raw request text.
func ParseRequestText(ctx context.Context, text string) (*ParsedQuote, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt + text},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		"gemini-2.5-flash-lite",
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.1)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	responseText := result.Candidates[0].Content.Parts[0].Text
	if responseText == "" {
		return nil, fmt.Errorf("empty model response")
	}

	jsonText := ExtractJSONFromMarkdown(responseText)

	var parsed ParsedQuote
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, response: %s", err, jsonText)
	}

	return &parsed, nil
}

// ExtractJSONFromMarkdown strips markdown code fences the model sometimes
// wraps its JSON in.
func ExtractJSONFromMarkdown(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 1 {
			return strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	return text
}
