package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/cmdtree/cli"
	"github.com/napalu/cmdtree/help"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root, err := newCommandTree(&stdout)
	require.NoError(t, err)

	app := cli.New(root, cli.WithVersion("9.9.9"), cli.WithStdout(&stdout), cli.WithStderr(&stderr),
		cli.WithPrinter(help.NewPrinter(help.WithWidth(100), help.WithColor(false))))

	return app.Run(args), stdout.String(), stderr.String()
}

func TestDemo(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0o600))

	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{
			name:   "build with defaults",
			args:   []string{"build", "api"},
			code:   cli.ExitOK,
			stdout: "building api into dist with 1 jobs\n",
		},
		{
			name:   "build with options",
			args:   []string{"-vv", "-D", "env=prod", "build", "-j4", "--tags", "linux,arm64", "-o", "out", "api", "web"},
			code:   cli.ExitOK,
			stdout: "verbosity: 2\ndefines: map[env:prod]\nbuilding api, web into out with 4 jobs\ntags: [linux arm64]\n",
		},
		{
			name:   "jobs out of range",
			args:   []string{"build", "-j", "100", "api"},
			code:   cli.ExitUsage,
			stderr: "cmdtree-demo: invalid value '100' for option '-j': must be an integer between 1 and 64\n",
		},
		{
			name:   "release",
			args:   []string{"release", "--tag", "1.4.0", "--pages", "1-3,7"},
			code:   cli.ExitOK,
			stdout: "tag: 1.4.0\npages: [1 2 3 7]\n",
		},
		{
			name:   "release requires a tag",
			args:   []string{"release"},
			code:   cli.ExitUsage,
			stderr: "cmdtree-demo: missing required option '-t, --tag'\n",
		},
		{
			name:   "copy",
			args:   []string{"copy", src, dir},
			code:   cli.ExitOK,
			stdout: "copy " + src + " -> " + dir + "\n",
		},
		{
			name:   "version",
			args:   []string{"--version"},
			code:   cli.ExitOK,
			stdout: "cmdtree-demo 9.9.9\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.stdout, stdout)
			assert.Equal(t, tt.stderr, stderr)
		})
	}
}

func TestDemo_Help(t *testing.T) {
	code, stdout, _ := run(t, "help", "release")
	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, "Usage: cmdtree-demo release [options]")
	assert.Contains(t, stdout, "-t, --tag <semver>")
	assert.Contains(t, stdout, "release version (required)")
}
