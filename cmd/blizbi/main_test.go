package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blizbi/blizbi/pkg/config"
	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/identity"
	"github.com/blizbi/blizbi/pkg/repository"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blizbi.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: writeConfig(t, "invalid: yaml: content: [")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	dbPath := filepath.Join(t.TempDir(), "blizbi.db")
	cfgPath := writeConfig(t, fmt.Sprintf(`
server:
  listen: %q
  timeout: 5s
database:
  dsn: "file:%s?mode=rwc&_txlock=immediate"
auth:
  secret: test-secret
ingest:
  providers:
    - id: kulturhuset
      name: Kulturhuset
      address: Storgata 1
`, addr, dbPath))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() { serverErr <- run(ctx, Opts{Config: cfgPath}) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/v1/providers", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && strings.Contains(string(body), "Kulturhuset")
	}, 5*time.Second, 50*time.Millisecond, "server serves seeded providers")

	// chat is disabled without assistant config
	resp, err := http.Post(fmt.Sprintf("http://%s/chat", addr), "application/json", strings.NewReader(`{"message":"hei"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	cancel()
	select {
	case err := <-serverErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestSeedProviders(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	providers := []config.Provider{
		{ID: "kulturhuset", Name: "Kulturhuset", Description: "House of culture", FeedURL: "https://kulturhuset.example/feed"},
		{ID: "biblioteket", Name: "Biblioteket"},
	}
	require.NoError(t, seedProviders(ctx, repos.Event, providers))

	// seeding again keeps the stored providers
	providers[0].Name = "Renamed"
	require.NoError(t, seedProviders(ctx, repos.Event, providers))

	p, err := repos.Event.GetProvider(ctx, "kulturhuset")
	require.NoError(t, err)
	assert.Equal(t, "Kulturhuset", p.Name)
	assert.Equal(t, "House of culture", p.ShortDescription)
	assert.Equal(t, "https://kulturhuset.example/feed", p.FeedURL)

	all, err := repos.Event.ListProviders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	withFeeds, err := repos.Event.ProvidersWithFeeds(ctx)
	require.NoError(t, err)
	require.Len(t, withFeeds, 1)
	assert.Equal(t, "kulturhuset", withFeeds[0].ID)
}

func TestIssueToken(t *testing.T) {
	opts := Opts{Config: writeConfig(t, "auth:\n  secret: test-secret\n  issuer: blizbi\n")}
	opts.Token.User = "user_42"
	opts.Token.Name = "Kari"

	var buf bytes.Buffer
	require.NoError(t, issueToken(opts, &buf))
	token := strings.TrimSpace(buf.String())
	require.NotEmpty(t, token)

	tokens, err := identity.NewTokens("test-secret", "blizbi", time.Hour)
	require.NoError(t, err)
	user, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "user_42", Name: "Kari"}, user)

	other, err := identity.NewTokens("other-secret", "blizbi", time.Hour)
	require.NoError(t, err)
	_, err = other.Verify(token)
	require.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestIssueToken_Admin(t *testing.T) {
	opts := Opts{Config: writeConfig(t, "auth:\n  secret: test-secret\n  issuer: blizbi\n")}
	opts.Token.User = "admin_1"
	opts.Token.Admin = true

	var buf bytes.Buffer
	require.NoError(t, issueToken(opts, &buf))
	tokens, err := identity.NewTokens("test-secret", "blizbi", time.Hour)
	require.NoError(t, err)
	user, err := tokens.Verify(strings.TrimSpace(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "admin_1", Admin: true}, user)
}

func TestIssueToken_MissingConfig(t *testing.T) {
	opts := Opts{Config: "non-existent-config.yml"}
	opts.Token.User = "user_42"
	err := issueToken(opts, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestNewImporter(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	cfg := &config.Config{}
	cfg.Ingest.Timezone = "Europe/Oslo"
	cfg.Ingest.Timeout = time.Second
	assert.NotNil(t, newImporter(cfg, repos))

	cfg.Ingest.Extract = true
	assert.NotNil(t, newImporter(cfg, repos))
}

func TestSecrets(t *testing.T) {
	cfg := &config.Config{}
	assert.Empty(t, secrets(cfg))

	cfg.Auth.Secret = "s1"
	cfg.Assistant.APIKey = "k1"
	assert.Equal(t, []string{"s1", "k1"}, secrets(cfg))
}
