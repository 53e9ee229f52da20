package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSON_PrefersTaggedBlock(t *testing.T) {
	doc := []byte("```\nnot this\n```\n\n```json\n{\"a\": 1}\n```\n")

	body, ok := ExtractJSON(doc)
	require.True(t, ok)
	require.Equal(t, "{\"a\": 1}\n", string(body))
}

func TestExtractJSON_FallsBackToSingleUntaggedBlock(t *testing.T) {
	doc := []byte("Text\n\n```\n{\"a\": 1}\n```\n")

	body, ok := ExtractJSON(doc)
	require.True(t, ok)
	require.Equal(t, "{\"a\": 1}\n", string(body))
}

func TestExtractJSON_IgnoresUntaggedBlockAmongOthers(t *testing.T) {
	docs := map[string]string{
		"untagged then go":    "```\n{\"a\": 1}\n```\n\n```go\nfunc main() {}\n```\n",
		"two untagged":        "```\n{\"a\": 1}\n```\n\n```\n{\"b\": 2}\n```\n",
		"shell then untagged": "```sh\nmake\n```\n\n```\n{\"a\": 1}\n```\n",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, ok := ExtractJSON([]byte(doc))
			require.False(t, ok)
		})
	}
}

func TestExtractJSON_OnlyJSONTagCounts(t *testing.T) {
	doc := []byte("```jsonc\n{\"a\": 1, // note\n}\n```\n\n```JSON\n{\"b\": 2}\n```\n")

	body, ok := ExtractJSON(doc)
	require.True(t, ok)
	require.Equal(t, "{\"b\": 2}\n", string(body))

	_, ok = ExtractJSON([]byte("```json5\n{a: 1}\n```\n"))
	require.False(t, ok)
}

func TestExtractJSON_NoFencedBlock(t *testing.T) {
	_, ok := ExtractJSON([]byte("{\"catalog\": {}}\n"))
	require.False(t, ok)

	_, ok = ExtractJSON([]byte("```go\nfunc main() {}\n```\n"))
	require.False(t, ok)
}

func TestExtractJSON_KeepsMultilineBody(t *testing.T) {
	doc := []byte("```json\n{\n  \"catalog\": {\n    \"Обувь\": {}\n  }\n}\n```\n")

	body, ok := ExtractJSON(doc)
	require.True(t, ok)
	require.Equal(t, "{\n  \"catalog\": {\n    \"Обувь\": {}\n  }\n}\n", string(body))
}
