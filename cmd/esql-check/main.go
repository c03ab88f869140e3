// Command esql-check validates ES|QL syntax tree dumps against a field
// schema, reporting unknown fields and literal type mismatches.
//
// Usage:
//
//	esql-check [flags] tree.json [tree.json.gz ...]
//
// Exit codes:
//
//	0  All trees are valid (no errors; warnings may be present unless --strict)
//	1  One or more trees have validation errors (or warnings with --strict)
//	2  Input or configuration error (missing file, invalid JSON, bad flags)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/foundry-zero/esqlcheck/internal/ast"
	"github.com/foundry-zero/esqlcheck/internal/checker"
	"github.com/foundry-zero/esqlcheck/internal/config"
	"github.com/foundry-zero/esqlcheck/internal/logging"
	"github.com/foundry-zero/esqlcheck/internal/report"
)

const version = "0.1.0"

// Output destinations; replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exitCode := 0
	app := newApp(&exitCode)
	if err := app.Run(append([]string{app.Name}, args...)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	return exitCode
}

func newApp(exitCode *int) *cli.App {
	app := cli.NewApp()
	app.Name = "esql-check"
	app.Usage = "validate ES|QL syntax tree dumps against a field schema"
	app.UsageText = "esql-check [flags] tree.json [tree.json.gz ...]"
	app.Version = version
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "schema, s", Usage: "field schema `FILE` (YAML or JSON)"},
		cli.StringFlag{Name: "config, c", Usage: "config `FILE` (default: first of " + fmt.Sprint(config.DefaultPaths) + ")"},
		cli.StringFlag{Name: "format, f", Usage: "output format: text or json"},
		cli.BoolFlag{Name: "quiet, q", Usage: "suppress output (exit code only)"},
		cli.BoolFlag{Name: "strict", Usage: "treat warnings as errors"},
		cli.BoolFlag{Name: "tree-only", Usage: "validate the dump format only, skip field checks"},
		cli.IntFlag{Name: "max-depth", Usage: "maximum syntax tree depth, 0 for no limit"},
		cli.IntFlag{Name: "max-nodes", Usage: "maximum syntax tree node count, 0 for no limit"},
	}
	app.Action = func(c *cli.Context) error {
		code, err := checkFiles(c)
		if err != nil {
			return err
		}
		*exitCode = code
		return nil
	}
	return app
}

// checkFiles runs the checker over every argument and returns the exit code.
func checkFiles(c *cli.Context) (int, error) {
	files := c.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "Error: no input files specified")
		cli.ShowAppHelp(c)
		return 2, nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return 0, err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Setup(stderr, level)

	chk, err := checker.NewChecker(cfg.CacheSize)
	if err != nil {
		return 0, err
	}

	opts := checker.CheckOptions{
		Schema:   cfg.Schema,
		TreeOnly: c.Bool("tree-only"),
		Limits:   ast.Limits{MaxDepth: cfg.MaxDepth, MaxNodes: cfg.MaxNodes},
	}
	quiet := c.Bool("quiet")

	exitCode := 0
	for _, path := range files {
		r := chk.Check(path, opts)

		if hasInputError(r) {
			exitCode = max(exitCode, 2)
		} else if r.HasErrors() {
			exitCode = max(exitCode, 1)
		} else if cfg.Strict && r.HasWarnings() {
			exitCode = max(exitCode, 1)
		}

		if !quiet {
			if err := printReport(r, cfg.Format); err != nil {
				return 0, err
			}
		}
	}
	return exitCode, nil
}

// loadConfig reads the config file and environment, then applies any flags
// given on the command line.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("schema") {
		cfg.Schema = c.String("schema")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("max-depth") {
		cfg.MaxDepth = c.Int("max-depth")
	}
	if c.IsSet("max-nodes") {
		cfg.MaxNodes = c.Int("max-nodes")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// hasInputError returns true if the report contains an INPUT error.
func hasInputError(r *report.Report) bool {
	for _, e := range r.Errors {
		if e.Rule == report.RuleInput {
			return true
		}
	}
	return false
}

// printReport outputs the report in the specified format.
func printReport(r *report.Report, format string) error {
	switch format {
	case "json":
		data, err := report.FormatJSON(r)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
	case "text":
		fmt.Fprint(stdout, report.FormatText(r))
	}
	return nil
}
