// Package cli wraps a cmdtree command tree into a runnable application: it declares
// help and version options, renders help on request and turns parse failures into a
// one-line diagnostic and an exit code.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/napalu/cmdtree"
	"github.com/napalu/cmdtree/errs"
	"github.com/napalu/cmdtree/help"
	"github.com/napalu/cmdtree/parse"
	"github.com/napalu/cmdtree/util"
)

// Exit codes returned by Run
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const helpCommandName = "help"

// App runs a command tree against command-line arguments
type App struct {
	root        *cmdtree.Command
	name        string
	version     string
	stdout      io.Writer
	stderr      io.Writer
	printer     *help.Printer
	terminal    util.Terminal
	helpCommand bool
	installed   bool
}

// ConfigureAppFunc configures an App
type ConfigureAppFunc func(*App)

// New creates an App for root. Diagnostics are prefixed with the root's name.
func New(root *cmdtree.Command, configs ...ConfigureAppFunc) *App {
	a := &App{
		root:        root,
		name:        root.Name(),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		terminal:    util.SystemTerminal,
		helpCommand: true,
	}
	for _, config := range configs {
		config(a)
	}
	if a.printer == nil {
		a.printer = help.NewPrinter(help.WithTerminal(a.terminal))
	}

	return a
}

// WithVersion enables -V, --version on the root command
func WithVersion(version string) ConfigureAppFunc {
	return func(a *App) {
		a.version = version
	}
}

// WithName overrides the program name used in diagnostics and version output
func WithName(name string) ConfigureAppFunc {
	return func(a *App) {
		a.name = name
	}
}

// WithStdout sets the writer receiving help and version output
func WithStdout(w io.Writer) ConfigureAppFunc {
	return func(a *App) {
		a.stdout = w
	}
}

// WithStderr sets the writer receiving diagnostics
func WithStderr(w io.Writer) ConfigureAppFunc {
	return func(a *App) {
		a.stderr = w
	}
}

// WithPrinter replaces the help printer
func WithPrinter(p *help.Printer) ConfigureAppFunc {
	return func(a *App) {
		a.printer = p
	}
}

// WithTerminal sets the terminal queried for colour support
func WithTerminal(t util.Terminal) ConfigureAppFunc {
	return func(a *App) {
		a.terminal = t
	}
}

// WithHelpCommand toggles the "help <command>" form. It is enabled by default and
// never shadows a declared command named help.
func WithHelpCommand(enabled bool) ConfigureAppFunc {
	return func(a *App) {
		a.helpCommand = enabled
	}
}

// Root returns the wrapped command tree
func (a *App) Root() *cmdtree.Command {
	return a.root
}

// Run parses args and returns the process exit code: ExitOK on success or after
// printing help or the version, ExitUsage when the arguments are wrong and
// ExitFailure when an action failed.
func (a *App) Run(args []string) int {
	return a.exit(a.Execute(args))
}

// RunString splits s like a shell would and calls Run
func (a *App) RunString(s string) int {
	args, err := parse.Split(s)
	if err != nil {
		return a.exit(errs.ErrSplitFailed.WithArgs(s).Wrap(err))
	}

	return a.Run(args)
}

// Execute parses args and handles help and version requests. Any other failure is
// returned unchanged.
func (a *App) Execute(args []string) error {
	if err := a.install(); err != nil {
		return err
	}

	if a.helpCommand && len(args) > 0 && args[0] == helpCommandName && !a.root.HasCommand(helpCommandName) {
		target, err := a.root.Lookup(args[1:]...)
		if err != nil {
			return err
		}
		return a.printer.Print(a.stdout, target)
	}

	err := a.root.ParseAll(args)

	var helpRequest *HelpRequest
	if errors.As(err, &helpRequest) {
		return a.printer.Print(a.stdout, helpRequest.Command)
	}

	var versionRequest *VersionRequest
	if errors.As(err, &versionRequest) {
		_, err = fmt.Fprintf(a.stdout, "%s %s\n", a.name, versionRequest.Version)
		return err
	}

	return err
}

func (a *App) exit(err error) int {
	if err == nil {
		return ExitOK
	}

	a.report(err)
	if errs.IsUsageError(err) {
		return ExitUsage
	}

	return ExitFailure
}

func (a *App) report(err error) {
	prefix := color.New(color.FgRed, color.Bold)
	if util.IsTerminal(a.stderr, a.terminal) && !color.NoColor {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}

	_, _ = fmt.Fprintf(a.stderr, "%s %s\n", prefix.Sprint(a.name+":"), err)
}

// install declares -h, --help on every command and -V, --version on the root. Flags
// already taken by the tree are left alone.
func (a *App) install() error {
	if a.installed {
		return nil
	}

	var err error
	help.Visit(a.root, func(cmd *cmdtree.Command, _ int) bool {
		err = addInterrupt(cmd, "help", "show this help", "-h", "--help", func(string) error {
			return &HelpRequest{Command: cmd}
		})
		return err == nil
	}, 0)
	if err != nil {
		return err
	}

	if a.version != "" {
		version := a.version
		err = addInterrupt(a.root, "version", "print the version", "-V", "--version", func(string) error {
			return &VersionRequest{Version: version}
		})
		if err != nil {
			return err
		}
	}
	a.installed = true

	return nil
}

func addInterrupt(cmd *cmdtree.Command, name, description, short, long string, action cmdtree.OptionActionFunc) error {
	var flags []string
	for _, f := range []string{short, long} {
		if !cmd.HasFlag(f) {
			flags = append(flags, f)
		}
	}
	if len(flags) == 0 {
		return nil
	}

	spec := flags[0]
	if len(flags) > 1 {
		spec += ", " + flags[1]
	}
	_, err := cmd.AddOption(name, spec, nil, cmdtree.WithHelp(description), cmdtree.WithAction(action))

	return err
}
