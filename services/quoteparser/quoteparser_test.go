package quoteparser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFromMarkdown(t *testing.T) {
	raw := `{"client_name": "Agro Center"}`

	assert.Equal(t, raw, ExtractJSONFromMarkdown(raw))
	assert.Equal(t, raw, ExtractJSONFromMarkdown("```json\n"+raw+"\n```"))
	assert.Equal(t, raw, ExtractJSONFromMarkdown("```\n"+raw+"\n```"))
	assert.Equal(t, raw, ExtractJSONFromMarkdown("  "+raw+"  "))
}

func TestParsedQuoteUnmarshal(t *testing.T) {
	payload := `{
		"client_name": "Agro Center",
		"origin": "Cuiabá - MT",
		"destination": "São Paulo - SP",
		"vehicle_type": "Carreta",
		"weight_kg": 32000,
		"value_goods": 150000
	}`

	var parsed ParsedQuote
	require.NoError(t, json.Unmarshal([]byte(payload), &parsed))
	assert.Equal(t, "Agro Center", parsed.ClientName)
	assert.Equal(t, "Carreta", parsed.VehicleType)
	assert.Equal(t, float64(32000), parsed.WeightKG)
}
