package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/blizbi/blizbi/pkg/config"
)

type options struct {
	Check bool `long:"check" description:"fail if the file differs from the generated schema"`
	Args  struct {
		Out string `positional-arg-name:"file" default:"schema.json"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "schema: %v\n", err)
		os.Exit(1)
	}
}

// run writes the config schema to the file, or compares it with the file in check mode
func run(opts options, w io.Writer) error {
	data, err := render()
	if err != nil {
		return err
	}
	out := opts.Args.Out
	if out == "" {
		out = "schema.json"
	}

	if opts.Check {
		current, err := os.ReadFile(out) //nolint:gosec // path from the command line
		if err != nil {
			return fmt.Errorf("read %s: %w", out, err)
		}
		if !bytes.Equal(bytes.TrimSpace(current), bytes.TrimSpace(data)) {
			return fmt.Errorf("%s is stale, run go generate ./pkg/config", out)
		}
		_, err = fmt.Fprintf(w, "%s is up to date\n", out)
		return err
	}

	if err := os.WriteFile(out, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	_, err = fmt.Fprintf(w, "schema written to %s\n", out)
	return err
}

func render() ([]byte, error) {
	schema, err := config.GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
