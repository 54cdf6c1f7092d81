//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON object form so tests can send
// payloads the typed DTO cannot express, such as a missing field or a string
// where a number belongs.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value. A nil value removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Participants replaces the participant list with the given student ids.
func Participants(ids ...any) func(m map[string]any) {
	return func(m map[string]any) {
		list := make([]any, len(ids))
		for i, id := range ids {
			list[i] = map[string]any{"student_id": id}
		}
		m["participants"] = list
	}
}
