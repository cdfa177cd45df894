package feed

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blizbi/blizbi/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://blizbi.example/")
	generator.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	price := 250.0
	provider := &domain.Provider{ID: "p1", Name: "Kulturhuset", Address: "Storgata 1"}
	events := []domain.Event{
		{
			ID: "e1", Title: "Jazzkveld", StartDate: "2025-06-06", StartTime: "19:30",
			PriceType: domain.PricePaid, PriceAmount: &price, URL: "https://kulturhuset.example/jazz",
			CoverURL: "https://kulturhuset.example/jazz.png?w=600", Description: "Live jazz", Provider: provider,
		},
		{ID: "e2", Title: "Quiz & øl", StartDate: "2025-06-07", Location: "Puben"},
	}

	t.Run("all events", func(t *testing.T) {
		out, err := generator.GenerateRSS(events, nil)
		require.NoError(t, err)
		assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, out, `<title>Blizbi - upcoming events</title>`)
		assert.Contains(t, out, `<link>https://blizbi.example/</link>`)
		assert.Contains(t, out, `href="https://blizbi.example/rss"`)
		assert.Contains(t, out, `<title>Quiz &amp; øl</title>`)

		var rss RSS
		require.NoError(t, xml.Unmarshal([]byte(out), &rss))
		require.Len(t, rss.Channel.Items, 2)

		jazz := rss.Channel.Items[0]
		assert.Equal(t, "e1", jazz.GUID)
		assert.Equal(t, "https://kulturhuset.example/jazz", jazz.Link)
		assert.Equal(t, "Fri, 06 Jun 2025 19:30:00 +0000", jazz.PubDate)
		assert.Contains(t, jazz.Description, "When: 2025-06-06 19:30")
		assert.Contains(t, jazz.Description, "Where: Storgata 1")
		assert.Contains(t, jazz.Description, "Price: 250 NOK")
		assert.Contains(t, jazz.Description, "Live jazz")
		assert.Equal(t, []string{"Kulturhuset"}, jazz.Categories)
		require.NotNil(t, jazz.Enclosure)
		assert.Equal(t, "image/png", jazz.Enclosure.Type)

		quiz := rss.Channel.Items[1]
		assert.Equal(t, "https://blizbi.example/events/e2", quiz.Link)
		assert.Contains(t, quiz.Description, "Price: free")
		assert.Contains(t, quiz.Description, "Where: Puben")
		assert.Nil(t, quiz.Enclosure)
	})

	t.Run("provider feed", func(t *testing.T) {
		out, err := generator.GenerateRSS(events[:1], provider)
		require.NoError(t, err)
		assert.Contains(t, out, `<title>Blizbi - Kulturhuset</title>`)
		assert.Contains(t, out, `href="https://blizbi.example/rss/p1"`)
		assert.Contains(t, out, `<description>Upcoming events by Kulturhuset</description>`)
	})

	t.Run("empty", func(t *testing.T) {
		out, err := generator.GenerateRSS(nil, nil)
		require.NoError(t, err)
		assert.NotContains(t, out, "<item>")
	})
}
