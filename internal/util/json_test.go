package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObjectPlain(t *testing.T) {
	in := `{"level":"A1","confidence":0.8}`
	assert.Equal(t, in, ExtractJSONObject(in))
}

func TestExtractJSONObjectEmbeddedInProse(t *testing.T) {
	in := "Here is my analysis:\n```json\n{\"level\":\"B1\",\"scores\":{\"grammar\":0.6}}\n```\nHope this helps!"
	out := ExtractJSONObject(in)
	require.NotEmpty(t, out)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "B1", parsed["level"])
}

func TestExtractJSONObjectNested(t *testing.T) {
	in := `prefix {"a":{"b":{"c":1}},"d":2} suffix {"e":3}`
	assert.Equal(t, `{"a":{"b":{"c":1}},"d":2}`, ExtractJSONObject(in))
}

func TestExtractJSONObjectBracesInsideStrings(t *testing.T) {
	in := `{"note":"use } carefully","quote":"he said \"{\" once"}`
	assert.Equal(t, in, ExtractJSONObject(in))
}

func TestExtractJSONObjectFailure(t *testing.T) {
	assert.Empty(t, ExtractJSONObject("no json here"))
	assert.Empty(t, ExtractJSONObject(`{"unterminated": true`))
	assert.Empty(t, ExtractJSONObject(""))
}
