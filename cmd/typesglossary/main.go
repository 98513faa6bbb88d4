// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/typesglossary

// typesglossary renders markdown glossary from type catalog.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/typesglossary"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/typesglossary"
	_buildTime string
)

// errInvalidGroupFlag is returned when --group value is not "Name=TypeA,TypeB".
var errInvalidGroupFlag = errors.New("invalid group flag")

// cliOptions describes typesglossary CLI subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Render markdown glossary from type catalog"`
	Types    typesCommand    `command:"types" description:"List catalog types"`
}

// generateCommand renders catalog groups into markdown.
type generateCommand struct {
	runner *cliRunner
	Args   struct {
		Catalog string `positional-arg-name:"catalog" description:"Input catalog file path, YAML or JSON (optional; stdin when omitted)"`
		Output  string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Groups []string `short:"g" long:"group" description:"Group to render as Name=TypeA,TypeB; repeatable, replaces catalog groups" value-name:"GROUP"`
	Strict bool     `short:"s" long:"strict" description:"Fail when catalog types are not rendered by any group"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command.Args.Catalog, command.Args.Output, command.Groups, command.Strict)
}

// typesCommand lists catalog type identifiers with kinds.
type typesCommand struct {
	runner *cliRunner
	Args   struct {
		Catalog string `positional-arg-name:"catalog" description:"Input catalog file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs types subcommand.
func (command *typesCommand) Execute(_ []string) error {
	return command.runner.runTypes(command.Args.Catalog)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// groupFlag is one parsed --group flag value.
type groupFlag struct {
	Name  string
	Types []string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "typesglossary"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	if errors.Is(err, errInvalidGroupFlag) {
		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate loads catalog, registers groups and writes glossary to stdout or file.
func (runner *cliRunner) runGenerate(catalogPath, outputPath string, groupFlags []string, strict bool) error {
	groups, err := parseGroupFlags(groupFlags)
	if err != nil {
		return err
	}

	catalog, err := runner.loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		for _, group := range catalog.Groups() {
			groups = append(groups, groupFlag{Name: group.Name, Types: group.Types})
		}
	}

	if len(groups) == 0 {
		return errors.New("no groups to render; declare groups in catalog or pass --group")
	}

	generator := typesglossary.NewGenerator(catalog.Registry())
	for _, group := range groups {
		if err := generator.RegisterTypes(group.Name, group.Types...); err != nil {
			return fmt.Errorf("register group: %w", err)
		}
	}

	if unused := unusedTypes(catalog.TypeIDs(), groups); len(unused) > 0 {
		if strict {
			return fmt.Errorf("catalog types not rendered by any group: %s", strings.Join(unused, ", "))
		}

		for _, id := range unused {
			_, _ = fmt.Fprintf(runner.stderr, "warning: type %q is not rendered by any group\n", id)
		}
	}

	rendered, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generate glossary: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, rendered); err != nil {
			return fmt.Errorf("write glossary to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(rendered), 0o600); err != nil {
		return fmt.Errorf("write glossary file %q: %w", outputPath, err)
	}

	return nil
}

// runTypes prints sorted type identifiers with their kind.
func (runner *cliRunner) runTypes(catalogPath string) error {
	catalog, err := runner.loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	registry := catalog.Registry()
	for _, id := range registry.IDs() {
		schema, err := registry.ResolveSchema(id)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(runner.stdout, "%s\t%s\n", id, schema.Kind()); err != nil {
			return fmt.Errorf("write types to stdout: %w", err)
		}
	}

	return nil
}

// loadCatalog reads catalog from file path or stdin.
func (runner *cliRunner) loadCatalog(path string) (*typesglossary.Catalog, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		catalog, err := typesglossary.LoadCatalogFile(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog %q: %w", path, err)
		}

		return catalog, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read catalog from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read catalog from stdin: empty input")
	}

	catalog, err := typesglossary.LoadCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog from stdin: %w", err)
	}

	return catalog, nil
}

// parseGroupFlags parses "Name=TypeA,TypeB" values preserving flag order.
func parseGroupFlags(values []string) ([]groupFlag, error) {
	out := make([]groupFlag, 0, len(values))
	for _, value := range values {
		name, list, ok := strings.Cut(value, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w %q: want Name=TypeA,TypeB", errInvalidGroupFlag, value)
		}

		group := groupFlag{Name: name}
		for _, id := range strings.Split(list, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}

			group.Types = append(group.Types, id)
		}

		out = append(out, group)
	}

	return out, nil
}

// unusedTypes returns sorted catalog type identifiers missing from all groups.
func unusedTypes(ids []string, groups []groupFlag) []string {
	used := make(map[string]struct{})
	for _, group := range groups {
		for _, id := range group.Types {
			used[id] = struct{}{}
		}
	}

	out := make([]string, 0)
	for _, id := range ids {
		if _, ok := used[id]; ok {
			continue
		}

		out = append(out, id)
	}

	sort.Strings(out)
	return out
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Types.runner = runner
	options.Version.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Render markdown glossary from YAML or JSON type catalog.
Reads catalog from file argument or stdin; writes markdown to file argument or stdout.
Groups come from catalog "groups" unless --group flags are given.

Examples:
> $ %s generate types.yaml > GLOSSARY.md
> $ cat types.yaml | %s generate -g "Basics=SomeNumber,Date" -g "Shapes=SomeShape"
`, programName, programName)),
		"types": strings.TrimSpace(fmt.Sprintf(`
List catalog type identifiers and kinds, one per line, sorted by identifier.

Examples:
> $ %s types types.yaml
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
