package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormatEpoch(t *testing.T) {
	assert.Equal(t, "2023-11-14 22:13:20", FormatEpoch(1700000000))
	assert.Equal(t, "1970-01-01 00:00:00", FormatEpoch(0))
}

func TestAccountView(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("652d1c0000000000000000aa")
	require.NoError(t, err)

	account := Account{
		ID:      id,
		Number:  "115",
		Name:    "Jane",
		Address: "123",
		Location: GeoPoint{
			Type:        "Point",
			Coordinates: []float64{-73.856077, 40.848447},
		},
		History: []History{
			{Image: "a.jpg", MeterReading: 10, UsageTotal: 100, Timestamp: 1700000000},
		},
		CreatedAt: 1700000000,
		UpdatedAt: 1700000100,
	}

	view := account.View()
	assert.Equal(t, "652d1c0000000000000000aa", view.ID)
	assert.Equal(t, "2023-11-14 22:13:20", view.CreatedAt)
	assert.Equal(t, "2023-11-14 22:15:00", view.UpdatedAt)
	require.Len(t, view.History, 1)
	assert.Equal(t, "2023-11-14 22:13:20", view.History[0].Timestamp)
}

func TestHistoryJSONAliases(t *testing.T) {
	entry := History{Image: "a.jpg", MeterReading: 10, UsageTotal: 100, Timestamp: 1700000000}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "photo")
	assert.Contains(t, decoded, "usage")
	assert.Contains(t, decoded, "usageTotal")
}

func TestAccountViewsPreservesOrder(t *testing.T) {
	accounts := []Account{
		{Number: "1", CreatedAt: 1},
		{Number: "2", CreatedAt: 2},
		{Number: "3", CreatedAt: 3},
	}

	views := AccountViews(accounts)
	require.Len(t, views, 3)
	for i, view := range views {
		assert.Equal(t, accounts[i].Number, view.Number)
	}
}
