package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>Kulturhuset</title>
	<link>http://example.com</link>
	<description>Hva skjer</description>
	<item>
		<title> Jazzkveld </title>
		<link>http://example.com/jazz</link>
		<description>Live jazz i kjelleren</description>
		<content:encoded><![CDATA[<p>Full program</p>]]></content:encoded>
		<pubDate>Fri, 06 Jun 2025 19:30:00 +0200</pubDate>
		<guid>jazz-2025-06-06</guid>
		<category>musikk</category>
		<enclosure url="http://example.com/jazz.jpg" type="image/jpeg" length="1000"/>
	</item>
	<item>
		<title>Quiz</title>
		<link>http://example.com/quiz</link>
		<pubDate>Sat, 07 Jun 2025 18:00:00 +0200</pubDate>
	</item>
</channel>
</rss>`

	var gotAgent, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssContent))
	}))
	defer srv.Close()

	parser := NewParser(5*time.Second, "test-agent")
	feed, err := parser.Parse(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "test-agent", gotAgent)
	assert.NotEmpty(t, gotLang)
	assert.Equal(t, "Kulturhuset", feed.Title)
	assert.Equal(t, "Hva skjer", feed.Description)
	require.Len(t, feed.Items, 2)

	item1 := feed.Items[0]
	assert.Equal(t, "Jazzkveld", item1.Title)
	assert.Equal(t, "jazz-2025-06-06", item1.GUID)
	assert.Equal(t, "Live jazz i kjelleren", item1.Description)
	assert.Equal(t, "<p>Full program</p>", item1.Content)
	assert.Equal(t, "http://example.com/jazz.jpg", item1.ImageURL)
	assert.Equal(t, []string{"musikk"}, item1.Categories)
	assert.Equal(t, time.Date(2025, 6, 6, 17, 30, 0, 0, time.UTC), item1.Published.UTC())

	// guid falls back to the link
	assert.Equal(t, "http://example.com/quiz", feed.Items[1].GUID)
	assert.Empty(t, feed.Items[1].ImageURL)
}

func TestParser_Parse_AtomFeed(t *testing.T) {
	atomContent := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Scene</title>
	<link href="http://example.com"/>
	<entry>
		<title>Teater</title>
		<link href="http://example.com/teater"/>
		<id>urn:teater:1</id>
		<updated>2025-06-10T18:00:00Z</updated>
		<summary>Premiere</summary>
	</entry>
</feed>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(atomContent))
	}))
	defer srv.Close()

	feed, err := NewParser(5*time.Second, "").Parse(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "urn:teater:1", feed.Items[0].GUID)
	assert.Equal(t, "Premiere", feed.Items[0].Description)
	assert.Equal(t, time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC), feed.Items[0].Published.UTC())
}

func TestParser_Parse_EventModule(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:ev="http://purl.org/rss/1.0/modules/event/">
<channel>
	<title>Biblioteket</title>
	<item>
		<title>Lesesirkel</title>
		<link>http://example.com/lesesirkel</link>
		<pubDate>Mon, 02 Jun 2025 09:00:00 +0200</pubDate>
		<ev:startdate>2025-06-12T18:00:00+02:00</ev:startdate>
		<ev:enddate>2025-06-12T20:00</ev:enddate>
		<ev:location> Lesesalen </ev:location>
	</item>
	<item>
		<title>Broken date</title>
		<pubDate>Mon, 02 Jun 2025 09:00:00 +0200</pubDate>
		<ev:startdate>soon</ev:startdate>
	</item>
</channel>
</rss>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(content))
	}))
	defer srv.Close()

	feed, err := NewParser(5*time.Second, "").Parse(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)

	item := feed.Items[0]
	assert.Equal(t, time.Date(2025, 6, 12, 16, 0, 0, 0, time.UTC), item.Starts.UTC())
	assert.Equal(t, time.Date(2025, 6, 12, 20, 0, 0, 0, time.UTC), item.Ends)
	assert.Equal(t, "Lesesalen", item.Location)

	assert.True(t, feed.Items[1].Starts.IsZero())
	assert.False(t, feed.Items[1].Published.IsZero())
}

func TestParser_Parse_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`<rss version="2.0"><channel><title>T</title></channel></rss>`))
	}))
	defer srv.Close()

	feed, err := NewParser(5*time.Second, "").Parse(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "T", feed.Title)
	assert.Equal(t, int32(2), calls.Load())
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()
		_, err := NewParser(time.Second, "").Parse(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 404")
		assert.Equal(t, int32(1), calls.Load(), "client errors not retried")
	})

	t.Run("not a feed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("hello"))
		}))
		defer srv.Close()
		_, err := NewParser(time.Second, "").Parse(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewParser(time.Second, "").Parse(ctx, "http://127.0.0.1:1/feed")
		require.Error(t, err)
	})
}
