package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/napalu/cmdtree"
	"github.com/napalu/cmdtree/coerce"
	"github.com/napalu/cmdtree/errs"
	"github.com/napalu/cmdtree/help"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	app    *App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	calls  []string
}

func newHarness(t *testing.T, configs ...ConfigureAppFunc) *harness {
	t.Helper()
	h := &harness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}

	record := func(cmd *cmdtree.Command, _ *cmdtree.Options, _ *cmdtree.Operands) error {
		h.calls = append(h.calls, cmd.Path())
		return nil
	}

	root := cmdtree.NewCommand("tool", cmdtree.WithCallback(record), cmdtree.WithCommandHelp("a tool"))
	_, err := root.AddOption("", "-n, --count <n>", coerce.Int())
	require.NoError(t, err)
	build, err := root.AddCommand("build", cmdtree.WithCallback(record), cmdtree.WithCommandHelp("build it"))
	require.NoError(t, err)
	_, err = build.AddOperand("target", "1")
	require.NoError(t, err)
	_, err = root.AddCommand("fail", cmdtree.WithCallback(func(*cmdtree.Command, *cmdtree.Options, *cmdtree.Operands) error {
		return errors.New("disk full")
	}))
	require.NoError(t, err)

	configs = append([]ConfigureAppFunc{
		WithStdout(h.stdout),
		WithStderr(h.stderr),
		WithPrinter(help.NewPrinter(help.WithWidth(80), help.WithColor(false))),
	}, configs...)
	h.app = New(root, configs...)

	return h
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		calls  []string
		stdout string
		stderr string
	}{
		{
			name:  "success",
			args:  []string{"-n", "2", "build", "x"},
			code:  ExitOK,
			calls: []string{"tool", "tool build"},
		},
		{
			name:   "unknown option",
			args:   []string{"--bogus"},
			code:   ExitUsage,
			stderr: "tool: unknown option '--bogus'\n",
		},
		{
			name:   "invalid value",
			args:   []string{"-n", "x"},
			code:   ExitUsage,
			stderr: "tool: invalid value 'x' for option '-n': malformed value: 'x' is not a valid integer\n",
		},
		{
			name:   "missing operand",
			args:   []string{"build"},
			code:   ExitUsage,
			calls:  []string{"tool"},
			stderr: "tool: too few operands for 'tool build': expected at least 1, got 0\n",
		},
		{
			name:   "extra argument",
			args:   []string{"build", "x", "y"},
			code:   ExitUsage,
			calls:  []string{"tool", "tool build"},
			stderr: "tool: unexpected extra argument 'y'\n",
		},
		{
			name:   "action failure",
			args:   []string{"fail"},
			code:   ExitFailure,
			calls:  []string{"tool"},
			stderr: "tool: action for 'tool fail' failed: disk full\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			assert.Equal(t, tt.code, h.app.Run(tt.args))
			assert.Equal(t, tt.calls, h.calls)
			assert.Equal(t, tt.stdout, h.stdout.String())
			assert.Equal(t, tt.stderr, h.stderr.String())
		})
	}
}

func TestApp_HelpOption(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, ExitOK, h.app.Run([]string{"--help"}))
	assert.Empty(t, h.calls)
	assert.Empty(t, h.stderr.String())
	out := h.stdout.String()
	assert.Contains(t, out, "Usage: tool [options] <command>")
	assert.Contains(t, out, "-h, --help")
	assert.Contains(t, out, "+ build")
	assert.NotContains(t, out, "--version")
}

func TestApp_HelpOnSubcommand(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, ExitOK, h.app.Run([]string{"build", "-h"}))
	assert.Equal(t, []string{"tool"}, h.calls)
	assert.Contains(t, h.stdout.String(), "Usage: tool build [options] <target>")
}

func TestApp_HelpCommand(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, ExitOK, h.app.Run([]string{"help", "build"}))
	assert.Empty(t, h.calls)
	assert.Contains(t, h.stdout.String(), "Usage: tool build")

	h = newHarness(t)
	assert.Equal(t, ExitUsage, h.app.Run([]string{"help", "deploy"}))
	assert.Equal(t, "tool: unknown command 'tool deploy'\n", h.stderr.String())

	h = newHarness(t, WithHelpCommand(false))
	assert.Equal(t, ExitUsage, h.app.Run([]string{"help"}))
	assert.Equal(t, "tool: unexpected extra argument 'help'\n", h.stderr.String())
}

func TestApp_Version(t *testing.T) {
	h := newHarness(t, WithVersion("1.2.3"))
	assert.Equal(t, ExitOK, h.app.Run([]string{"-V"}))
	assert.Equal(t, "tool 1.2.3\n", h.stdout.String())
	assert.Empty(t, h.calls)

	h = newHarness(t, WithVersion("1.2.3"), WithName("tl"))
	assert.Equal(t, ExitOK, h.app.Run([]string{"--version"}))
	assert.Equal(t, "tl 1.2.3\n", h.stdout.String())

	h = newHarness(t, WithVersion("1.2.3"))
	assert.Equal(t, ExitUsage, h.app.Run([]string{"build", "--version"}))
}

func TestApp_RespectsDeclaredFlags(t *testing.T) {
	root := cmdtree.NewCommand("tool")
	host, err := root.AddOption("", "-h, --host <addr>", nil)
	require.NoError(t, err)

	var stdout bytes.Buffer
	app := New(root, WithStdout(&stdout), WithStderr(&bytes.Buffer{}),
		WithPrinter(help.NewPrinter(help.WithWidth(80), help.WithColor(false))))

	assert.Equal(t, ExitOK, app.Run([]string{"-h", "localhost"}))
	assert.Equal(t, "localhost", host.Data())
	assert.Empty(t, stdout.String())

	opt, ok := root.GetOption("-h")
	require.True(t, ok)
	assert.Same(t, host, opt)

	opt, ok = root.GetOption("--help")
	require.True(t, ok)
	assert.Equal(t, []string{"--help"}, opt.Flags())
}

func TestApp_PartialHelpFlags(t *testing.T) {
	root := cmdtree.NewCommand("tool")
	_, err := root.AddOption("", "--help <topic>", nil)
	require.NoError(t, err)

	var stdout bytes.Buffer
	app := New(root, WithStdout(&stdout), WithStderr(&bytes.Buffer{}),
		WithPrinter(help.NewPrinter(help.WithWidth(80), help.WithColor(false))))

	assert.Equal(t, ExitOK, app.Run([]string{"-h"}))
	assert.Contains(t, stdout.String(), "Usage: tool")
}

func TestApp_RunString(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, ExitOK, h.app.RunString(`build "my target"`))
	assert.Equal(t, []string{"tool", "tool build"}, h.calls)

	h = newHarness(t)
	assert.Equal(t, ExitUsage, h.app.RunString(`build "open`))
	assert.Contains(t, h.stderr.String(), "tool: could not split")
}

func TestApp_ExecuteReturnsErrors(t *testing.T) {
	h := newHarness(t)
	err := h.app.Execute([]string{"--bogus"})
	assert.True(t, errors.Is(err, errs.ErrUnknownOption))

	assert.NoError(t, h.app.Execute([]string{"-h"}))
}

func TestRequests(t *testing.T) {
	var interrupt cmdtree.Interrupt = &HelpRequest{Command: cmdtree.NewCommand("x")}
	assert.Equal(t, "help requested for 'x'", interrupt.Error())

	interrupt = &VersionRequest{Version: "1"}
	assert.Equal(t, "version requested", interrupt.Error())
}
