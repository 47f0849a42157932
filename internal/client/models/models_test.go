package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com \n"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestSession_Remote(t *testing.T) {
	assert.False(t, Session{User: User{Email: "a@x.com"}}.Remote())
	assert.True(t, Session{User: User{Email: "a@x.com"}, Token: "tok"}.Remote())
}

func TestSavedItem_JSONRoundTrip(t *testing.T) {
	item := SavedItem{
		ID:        "id-1",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Fields:    map[string]any{"q": "cats", "zoom": float64(7)},
	}

	b, err := json.Marshal(item)
	require.NoError(t, err)

	// flattened format: caller fields live next to id/createdAt
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "id-1", raw["id"])
	assert.Equal(t, "cats", raw["q"])

	var back SavedItem
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, item.ID, back.ID)
	assert.True(t, item.CreatedAt.Equal(back.CreatedAt))
	assert.Equal(t, item.Fields, back.Fields)
}

func TestSavedItem_UnmarshalBadCreatedAt(t *testing.T) {
	var item SavedItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","createdAt":"not-a-time","q":"dogs"}`), &item))
	assert.Equal(t, "x", item.ID)
	assert.True(t, item.CreatedAt.IsZero())
	assert.Equal(t, "dogs", item.Fields["q"])
}
