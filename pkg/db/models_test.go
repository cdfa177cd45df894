package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blizbi/blizbi/pkg/domain"
)

func TestStrings_Value(t *testing.T) {
	tests := []struct {
		name     string
		strings  Strings
		expected string
	}{
		{name: "empty list", strings: Strings{}, expected: "[]"},
		{name: "nil list", strings: nil, expected: "[]"},
		{name: "single value", strings: Strings{"music"}, expected: `["music"]`},
		{name: "multiple values", strings: Strings{"music", "theatre", "food"}, expected: `["music","theatre","food"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.strings.Value()
			require.NoError(t, err)
			v, ok := value.(string)
			require.True(t, ok)
			assert.JSONEq(t, tt.expected, v)
		})
	}
}

func TestScanJSON(t *testing.T) {
	t.Run("string source", func(t *testing.T) {
		var s Strings
		require.NoError(t, s.Scan(`["a","b"]`))
		assert.Equal(t, Strings{"a", "b"}, s)
	})

	t.Run("bytes source", func(t *testing.T) {
		var p Preferences
		require.NoError(t, p.Scan([]byte(`{"essential":true,"analytics":true}`)))
		assert.True(t, p.Essential)
		assert.True(t, p.Analytics)
		assert.False(t, p.Functional)
	})

	t.Run("null source", func(t *testing.T) {
		var m Messages
		require.NoError(t, m.Scan(nil))
		assert.Nil(t, m)
	})

	t.Run("unsupported source", func(t *testing.T) {
		var d Details
		err := d.Scan(42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported json column type")
	})

	t.Run("broken json", func(t *testing.T) {
		var m Messages
		require.Error(t, m.Scan(`[{"role":`))
	})
}

func TestMessages_RoundTripThroughSQLite(t *testing.T) {
	conn, err := Open(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY, messages TEXT NOT NULL)`)
	require.NoError(t, err)

	msgs := Messages{
		{Role: domain.RoleUser, Content: "hi", CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)},
		{Role: domain.RoleAssistant, Content: "hello", CreatedAt: time.Date(2025, 5, 1, 10, 0, 1, 0, time.UTC),
			Events: []domain.EventSuggestion{{ID: "e1", Title: "Jazz", Price: domain.Price{Type: domain.PriceFree}}}},
	}
	_, err = conn.Exec(`INSERT INTO t (id, messages) VALUES (1, ?)`, msgs)
	require.NoError(t, err)

	var got Messages
	require.NoError(t, conn.Get(&got, `SELECT messages FROM t WHERE id = 1`))
	require.Len(t, got, 2)
	assert.Equal(t, "hi", got[0].Content)
	assert.Equal(t, "e1", got[1].Events[0].ID)
}

func TestEvent_ToDomain(t *testing.T) {
	row := Event{
		ID:              "e1",
		ProviderID:      "p1",
		Title:           "Concert",
		Details:         Details{Description: "live music", URL: "https://example.com/e1"},
		StartDate:       "2025-06-01",
		StartTime:       sql.NullString{String: "19:00", Valid: true},
		PriceType:       "paid",
		PriceAmount:     sql.NullFloat64{Float64: 250, Valid: true},
		ProviderName:    sql.NullString{String: "Concert Hall", Valid: true},
		ProviderAddress: sql.NullString{String: "Main st 1", Valid: true},
	}

	ev := row.ToDomain()
	assert.Equal(t, "live music", ev.Description)
	assert.Equal(t, "https://example.com/e1", ev.URL)
	assert.Equal(t, "19:00", ev.StartTime)
	assert.Equal(t, domain.PricePaid, ev.PriceType)
	require.NotNil(t, ev.PriceAmount)
	assert.InDelta(t, 250.0, *ev.PriceAmount, 0.001)
	require.NotNil(t, ev.Provider)
	assert.Equal(t, "Concert Hall", ev.Provider.Name)

	back := EventFromDomain(ev)
	assert.Equal(t, row.Details, back.Details)
	assert.Equal(t, row.PriceAmount, back.PriceAmount)
	assert.False(t, back.EndDate.Valid)
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), Config{})
	require.Error(t, err)
}
