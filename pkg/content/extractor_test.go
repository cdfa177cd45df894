package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		statusCode  int
		wantText    string
		wantImage   string
		wantErr     bool
	}{
		{
			name: "article with og image",
			htmlContent: `<!DOCTYPE html>
				<html>
				<head>
					<title>Jazzkveld</title>
					<meta property="og:image" content="/img/jazz.jpg">
					<meta property="og:description" content="Kort om kvelden">
				</head>
				<body>
					<article>
						<h1>Jazzkveld i kjelleren</h1>
						<p>Trioen spiller standards og egne låter hele kvelden.</p>
						<p>Dørene åpner klokken sju, konserten starter halv åtte.</p>
					</article>
				</body>
				</html>`,
			statusCode: http.StatusOK,
			wantText:   "Trioen spiller standards",
			wantImage:  "/img/jazz.jpg",
		},
		{
			name: "minimal content",
			htmlContent: `<!DOCTYPE html>
				<html><body><p>Short content</p></body></html>`,
			statusCode: http.StatusOK,
			wantText:   "Short content",
		},
		{
			name:        "server error",
			htmlContent: "error",
			statusCode:  http.StatusInternalServerError,
			wantErr:     true,
		},
		{
			name:        "not found",
			htmlContent: "not found",
			statusCode:  http.StatusNotFound,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Contains(t, r.Header.Get("User-Agent"), "Blizbi")
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.htmlContent))
			}))
			defer srv.Close()

			page, err := NewHTTPExtractor(5*time.Second).Extract(context.Background(), srv.URL+"/event/1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, page.Text, tt.wantText)
			if tt.wantImage != "" {
				assert.Equal(t, srv.URL+tt.wantImage, page.Image)
			} else {
				assert.Empty(t, page.Image)
			}
		})
	}
}

func TestHTTPExtractor_InvalidURL(t *testing.T) {
	e := NewHTTPExtractor(time.Second)
	for _, u := range []string{"not a url", "/relative/path", "://bad"} {
		_, err := e.Extract(context.Background(), u)
		assert.Error(t, err, u)
	}
}

func TestOpenGraph(t *testing.T) {
	base, err := url.Parse("https://provider.example/events/1")
	require.NoError(t, err)

	body := []byte(`<html><head>
		<meta property="og:title" content="Teater">
		<meta property="og:image" content="https://cdn.example/a.png">
		<meta property="og:image" content="https://cdn.example/b.png">
		<meta name="description" content="ignored">
		</head><body><meta property="og:description" content="in body"></body></html>`)

	meta := openGraph(body, base)
	assert.Equal(t, "Teater", meta["og:title"])
	assert.Equal(t, "https://cdn.example/a.png", meta["og:image"], "first image wins")
	assert.NotContains(t, meta, "description")
	assert.NotContains(t, meta, "og:description", "body is not scanned")
}
