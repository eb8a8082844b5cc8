package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValid(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Swagger  string                     `json:"swagger"`
		BasePath string                     `json:"basePath"`
		Info     map[string]interface{}     `json:"info"`
		Paths    map[string]json.RawMessage `json:"paths"`
		Defs     map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "2.0", parsed.Swagger)
	assert.Equal(t, "/api", parsed.BasePath)
	assert.Equal(t, "Wolvesboard API", parsed.Info["title"])
	for _, path := range []string{"/dashboard", "/lineups", "/players", "/recent", "/records", "/three-point/distribution"} {
		assert.Contains(t, parsed.Paths, path)
	}
	for _, def := range []string{"dashboard.Snapshot", "lineup.Set", "shooting.Distribution", "responses.ErrorResponse"} {
		assert.Contains(t, parsed.Defs, def)
	}
}
