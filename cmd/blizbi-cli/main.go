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
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/blizbi/blizbi/pkg/bookmark"
	"github.com/blizbi/blizbi/pkg/chat"
	"github.com/blizbi/blizbi/pkg/consent"
	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/identity"
	"github.com/blizbi/blizbi/pkg/language"
	"github.com/blizbi/blizbi/pkg/remote"
	"github.com/blizbi/blizbi/pkg/storage"
)

// Opts with all CLI options
type Opts struct {
	API       string        `short:"a" long:"api" env:"BLIZBI_API" default:"http://localhost:8080" description:"backend url"`
	Token     string        `short:"t" long:"token" env:"BLIZBI_TOKEN" description:"identity token, signed out if empty"`
	StorePath string        `short:"s" long:"storage" env:"BLIZBI_STORAGE" default:"blizbi-local.db" description:"local storage file"`
	Timeout   time.Duration `long:"timeout" env:"BLIZBI_TIMEOUT" default:"10s" description:"backend request timeout"`
	EnvFile   string        `long:"env-file" env:"ENV_FILE" description:"load environment variables from file"`

	Consent struct {
		Show       struct{} `command:"show" description:"show the consent decision"`
		Accept     struct{} `command:"accept" description:"grant every category"`
		Reject     struct{} `command:"reject" description:"keep essential only"`
		Reset      struct{} `command:"reset" description:"forget the decision"`
		DeleteData struct{} `command:"delete-data" description:"erase stored data of the user"`
		Set        struct {
			Functional      string `long:"functional" choice:"on" choice:"off" description:"functional storage"`
			Analytics       string `long:"analytics" choice:"on" choice:"off" description:"analytics"`
			Personalization string `long:"personalization" choice:"on" choice:"off" description:"personalization"`
		} `command:"set" description:"change single categories"`
	} `command:"consent" description:"manage consent"`

	Bookmarks struct {
		List    struct{} `command:"list" description:"list bookmarked event ids"`
		Details struct{} `command:"details" description:"list bookmarked events"`
		Toggle  struct {
			Args struct {
				EventID string `positional-arg-name:"event-id" required:"true"`
			} `positional-args:"yes"`
		} `command:"toggle" description:"bookmark or unbookmark an event"`
	} `command:"bookmarks" description:"manage bookmarks"`

	Chat struct {
		Send struct {
			Args struct {
				Message []string `positional-arg-name:"message" required:"true"`
			} `positional-args:"yes"`
		} `command:"send" description:"ask the assistant"`
		History struct{} `command:"history" description:"show the stored conversation"`
		Clear   struct{} `command:"clear" description:"clear the stored conversation"`
	} `command:"chat" description:"talk to the assistant"`

	Lang struct {
		Show struct{} `command:"show" description:"show the language"`
		Set  struct {
			Args struct {
				Lang string `positional-arg-name:"lang" required:"true" description:"no or en"`
			} `positional-args:"yes"`
		} `command:"set" description:"change the language"`
	} `command:"lang" description:"interface language"`

	Events struct {
		Args struct {
			Query []string `positional-arg-name:"query"`
		} `positional-args:"yes"`
		Provider string `long:"provider" description:"provider id"`
		Limit    int    `long:"limit" default:"20" description:"max events"`
	} `command:"events" description:"search upcoming events"`

	Ingest struct{} `command:"ingest" description:"show feed import state of providers"`

	Storage struct {
		Keys struct{} `command:"keys" description:"list local storage keys"`
	} `command:"storage" description:"inspect local storage"`

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
	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load env file %s: %v\n", opts.EnvFile, err)
			os.Exit(1)
		}
	}
	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug, opts.Token)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, opts, os.Stdout)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	defer a.close()

	if err := a.exec(ctx, commandPath(parser.Active), opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// commandPath joins names of the active command chain, i.e. "consent set"
func commandPath(cmd *flags.Command) string {
	var names []string
	for c := cmd; c != nil; c = c.Active {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

// app is the client core wired together the way a front end would use it
type app struct {
	out       io.Writer
	durable   *storage.Durable
	session   *identity.Session
	client    *remote.Client
	consent   *consent.Store
	bookmarks *bookmark.Cache
	chat      *chat.Session
	lang      *language.Preference
}

// newApp opens local storage, wires the client core and signs in with the token if given
func newApp(ctx context.Context, opts Opts, out io.Writer) (*app, error) {
	durable, err := storage.OpenDurable(ctx, opts.StorePath)
	if err != nil {
		return nil, err
	}

	a := &app{out: out, durable: durable, session: identity.NewSession()}
	a.client = remote.New(remote.Params{BaseURL: opts.API, Timeout: opts.Timeout, Tokens: a.session})
	a.consent = consent.New(consent.Params{
		Durable:  durable,
		Session:  storage.NewMemory(),
		Remote:   a.client,
		Eraser:   a.client,
		Identity: a.session,
	})
	a.bookmarks = bookmark.NewCache(a.client, a.session)
	a.lang = language.New(a.consent.Functional())
	a.lang.Watch(a.consent)
	a.chat = chat.NewSession(chat.Params{Remote: a.client, Identity: a.session, Language: a.lang.ChatLanguage})

	// identity changes drop bookmarks and chat of the previous user and reload consent
	a.session.OnChange(func(*domain.User) {
		a.bookmarks.Reset()
		a.chat.Reset()
		a.consent.Load(ctx)
	})

	if opts.Token == "" {
		a.consent.Load(ctx)
		return a, nil
	}
	if err := a.session.SignIn(opts.Token); err != nil {
		_ = durable.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) close() {
	if err := a.durable.Close(); err != nil {
		log.Printf("[WARN] failed to close local storage: %v", err)
	}
}

// exec runs the command, cmd is the active command path
func (a *app) exec(ctx context.Context, cmd string, opts Opts) error {
	switch cmd {
	case "consent show":
		a.printConsent()
	case "consent accept":
		a.consent.AcceptAll(ctx)
		a.printConsent()
	case "consent reject":
		a.consent.RejectAll(ctx)
		a.printConsent()
	case "consent set":
		s := opts.Consent.Set
		a.consent.UpdateConsent(ctx, domain.PartialPreferences{Functional: toggle(s.Functional),
			Analytics: toggle(s.Analytics), Personalization: toggle(s.Personalization)})
		a.printConsent()
	case "consent reset":
		a.consent.ResetConsent(ctx)
		a.printConsent()
	case "consent delete-data":
		res := a.consent.RequestDataDeletion(ctx)
		fmt.Fprintln(a.out, res.Message)
		if !res.Success {
			return fmt.Errorf("data deletion failed")
		}

	case "bookmarks list":
		if err := a.bookmarks.Refresh(ctx); err != nil {
			return err
		}
		for _, id := range a.bookmarks.IDs() {
			fmt.Fprintln(a.out, id)
		}
	case "bookmarks details":
		details, err := a.bookmarks.Details(ctx)
		if err != nil {
			return err
		}
		for _, d := range details {
			fmt.Fprintln(a.out, formatEvent(d.Event))
		}
	case "bookmarks toggle":
		if err := a.bookmarks.Refresh(ctx); err != nil {
			return err
		}
		res, err := a.bookmarks.Toggle(ctx, opts.Bookmarks.Toggle.Args.EventID)
		if err != nil {
			var te *bookmark.ToggleError
			if errors.As(err, &te) {
				fmt.Fprintln(a.out, te.Notice())
			}
			return err
		}
		fmt.Fprintln(a.out, res.Notice())

	case "chat send":
		text := strings.TrimSpace(strings.Join(opts.Chat.Send.Args.Message, " "))
		if text == "" {
			return fmt.Errorf("empty message")
		}
		if a.session.User() != nil {
			if err := a.chat.LoadHistory(ctx); err != nil {
				log.Printf("[WARN] %v", err)
			}
		}
		a.chat.SendMessage(ctx, text)
		msgs := a.chat.Messages()
		a.printMessage(msgs[len(msgs)-1])
	case "chat history":
		if err := a.chat.LoadHistory(ctx); err != nil {
			return err
		}
		for _, m := range a.chat.Messages() {
			a.printMessage(m)
		}
	case "chat clear":
		if err := a.chat.ClearChatHistory(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "chat history cleared")

	case "lang show":
		fmt.Fprintln(a.out, a.lang.Get())
	case "lang set":
		if err := a.lang.Set(opts.Lang.Set.Args.Lang); err != nil {
			return err
		}
		if !a.consent.HasConsent(domain.CategoryFunctional) {
			fmt.Fprintln(a.out, "language is used for this run only, functional storage is not allowed")
		}
		fmt.Fprintln(a.out, a.lang.Get())

	case "events":
		filter := domain.EventFilter{
			Query:      strings.Join(opts.Events.Args.Query, " "),
			From:       time.Now().Format(time.DateOnly),
			ProviderID: opts.Events.Provider,
			Limit:      opts.Events.Limit,
		}
		events, err := a.client.SearchEvents(ctx, filter)
		if err != nil {
			return err
		}
		for _, ev := range events {
			fmt.Fprintln(a.out, formatEvent(ev))
		}

	case "ingest":
		statuses, err := a.client.ImportStatus(ctx)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			last := "never"
			if st.LastRun != nil {
				last = st.LastRun.Local().Format(time.DateTime)
			}
			line := fmt.Sprintf("%s  last import: %s", st.Name, last)
			if st.LastError != "" {
				line += "  " + color.New(color.FgRed).Sprint("error: "+st.LastError)
			}
			fmt.Fprintln(a.out, line)
		}

	case "storage keys":
		keys, err := a.durable.Keys(ctx)
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(a.out, k)
		}

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (a *app) printConsent() {
	st := a.consent.State()
	if st == nil || !st.HasResponded {
		fmt.Fprintln(a.out, "no consent given")
		return
	}
	p := st.Preferences
	fmt.Fprintf(a.out, "essential: %v\nfunctional: %v\nanalytics: %v\npersonalization: %v\nversion: %s\ntimestamp: %s\n",
		p.Essential, p.Functional, p.Analytics, p.Personalization, st.Version, st.Timestamp)
}

func (a *app) printMessage(m domain.Message) {
	who := color.New(color.FgCyan).Sprint(string(m.Role))
	fmt.Fprintf(a.out, "%s: %s\n", who, m.Content)
	for _, ev := range m.Events {
		price := "free"
		if ev.Price.Type == domain.PricePaid && ev.Price.Amount != nil {
			price = fmt.Sprintf("%.0f NOK", *ev.Price.Amount)
		}
		fmt.Fprintf(a.out, "  - %s | %s %s | %s | %s\n", ev.Title, ev.Date, ev.Time, ev.Location, price)
	}
}

// toggle converts on/off flag value, nil if the flag is not set
func toggle(v string) *bool {
	if v == "" {
		return nil
	}
	res := v == "on"
	return &res
}

func formatEvent(ev domain.Event) string {
	when := strings.TrimSpace(ev.StartDate + " " + ev.StartTime)
	res := fmt.Sprintf("%s  %s  %s", ev.ID, when, ev.Title)
	if ev.Provider != nil && ev.Provider.Name != "" {
		res += " (" + ev.Provider.Name + ")"
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
	var masked []string
	for _, s := range secs {
		if s != "" {
			masked = append(masked, s)
		}
	}
	if len(masked) > 0 {
		logOpts = append(logOpts, lgr.Secret(masked...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
