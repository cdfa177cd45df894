package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"
	_ "time/tzdata" // event times are shown in the configured zone

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/blizbi/blizbi/pkg/assistant"
	"github.com/blizbi/blizbi/pkg/config"
	"github.com/blizbi/blizbi/pkg/content"
	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/feed"
	"github.com/blizbi/blizbi/pkg/identity"
	"github.com/blizbi/blizbi/pkg/ingest"
	"github.com/blizbi/blizbi/pkg/repository"
	"github.com/blizbi/blizbi/pkg/service"
	"github.com/blizbi/blizbi/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"blizbi.yml" description:"configuration file"`
	EnvFile string `long:"env-file" env:"ENV_FILE" description:"load environment variables from file"`

	Server struct{} `command:"server" description:"run the backend (default)"`
	Token  struct {
		User  string `long:"user" required:"true" description:"user id, the token subject"`
		Name  string `long:"name" description:"display name"`
		Admin bool   `long:"admin" description:"allow catalog management"`
	} `command:"token" description:"issue an identity token"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = true
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load env file %s: %v\n", opts.EnvFile, err)
			os.Exit(1)
		}
	}
	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)

	if parser.Active != nil && parser.Active.Name == "token" {
		if err := issueToken(opts, os.Stdout); err != nil {
			log.Printf("[ERROR] %v", err)
			os.Exit(1)
		}
		return
	}

	log.Printf("[INFO] starting blizbi version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the backend from the configuration and serves until the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLog(opts.Debug, secrets(cfg)...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	if err := seedProviders(ctx, repos.Event, cfg.Ingest.Providers); err != nil {
		return err
	}

	tokens, err := identity.NewTokens(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to make token verifier: %w", err)
	}

	assistantCfg := cfg.GetAssistantConfig()
	if !assistantCfg.Enabled() {
		log.Print("[WARN] assistant endpoint and api key are not set, chat is disabled")
	}
	asst := assistant.New(assistantCfg, repos.Event)

	if cfg.Ingest.Enabled {
		importer := newImporter(cfg, repos)
		importer.Start(ctx)
		defer importer.Stop()
	}

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), asst, tokens, revision, opts.Debug)
	return srv.Run(ctx)
}

// newImporter makes the feed importer, page extraction is on only if configured
func newImporter(cfg *config.Config, repos *repository.Repositories) *ingest.Importer {
	var extractor ingest.Extractor
	if cfg.Ingest.Extract {
		extractor = content.NewHTTPExtractor(cfg.Ingest.Timeout)
	}
	return ingest.New(
		service.NewIngestService(repos.Event, repos.Setting),
		feed.NewParser(cfg.Ingest.Timeout, cfg.Ingest.UserAgent),
		extractor,
		ingest.Config{Interval: cfg.Ingest.Interval, MaxWorkers: cfg.Ingest.MaxWorkers, Location: cfg.Location()},
	)
}

// providerCreator stores providers
type providerCreator interface {
	CreateProvider(ctx context.Context, p *domain.Provider) error
}

// seedProviders creates configured providers missing in the database, existing ones are kept as is
func seedProviders(ctx context.Context, repo providerCreator, providers []config.Provider) error {
	for _, p := range providers {
		err := repo.CreateProvider(ctx, &domain.Provider{
			ID:               p.ID,
			Name:             p.Name,
			ShortDescription: p.Description,
			WebsiteURL:       p.WebsiteURL,
			Address:          p.Address,
			FeedURL:          p.FeedURL,
		})
		if errors.Is(err, repository.ErrDuplicate) {
			log.Printf("[DEBUG] provider %s exists", p.ID)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed provider %s: %w", p.ID, err)
		}
		log.Printf("[INFO] provider %s created", p.ID)
	}
	return nil
}

// issueToken prints a signed identity token for the user, used to call the API from scripts and the cli
func issueToken(opts Opts, w io.Writer) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	tokens, err := identity.NewTokens(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to make token issuer: %w", err)
	}
	token, err := tokens.Issue(domain.User{ID: opts.Token.User, Name: opts.Token.Name, Admin: opts.Token.Admin})
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

// secrets returns config values masked in logs
func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.Auth.Secret, cfg.Assistant.APIKey} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
