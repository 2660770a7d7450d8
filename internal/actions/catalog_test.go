package actions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()

	assert.NotEmpty(t, catalog.Actions())
	assert.Same(t, catalog, Default(), "default catalogue is constructed once")
}

func TestLookup(t *testing.T) {
	action, ok := Default().Lookup("get_balance")
	require.True(t, ok)
	assert.Equal(t, "/api/v1/balance", action.Endpoint)
	assert.Equal(t, "GET", action.Method)
	assert.Contains(t, action.Examples, "what's my balance")

	_, ok = Default().Lookup("launch_rocket")
	assert.False(t, ok)
}

func TestPromptJSONIsValidJSON(t *testing.T) {
	var actions []Action
	require.NoError(t, json.Unmarshal([]byte(Default().PromptJSON()), &actions))
	assert.Len(t, actions, len(Default().Actions()))
}

func TestEveryActionIsComplete(t *testing.T) {
	for _, a := range Default().Actions() {
		assert.NotEmpty(t, a.Intent)
		assert.NotEmpty(t, a.Endpoint, "action %s has no endpoint", a.Intent)
		assert.NotEmpty(t, a.Method, "action %s has no method", a.Intent)
		assert.NotEmpty(t, a.Examples, "action %s has no example phrases", a.Intent)
	}
}
