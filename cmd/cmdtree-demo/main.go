package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napalu/cmdtree"
	"github.com/napalu/cmdtree/cli"
	"github.com/napalu/cmdtree/coerce"
	"github.com/napalu/cmdtree/validation"
)

var version = "0.1.0"

func main() {
	root, err := newCommandTree(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitFailure)
	}

	os.Exit(cli.New(root, cli.WithVersion(version)).Run(os.Args[1:]))
}

// newCommandTree declares
//
//	cmdtree-demo [-v...] [-D key=value...] build [-o <dir>] [--tags <list>] [-j <n>] <target>...
//	cmdtree-demo [-v...] [-D key=value...] release --tag <semver> [--date <when>] [--id <uuid>] [--pages <ranges>]
//	cmdtree-demo [-v...] [-D key=value...] copy <src>... <dst>
func newCommandTree(out io.Writer) (*cmdtree.Command, error) {
	root := cmdtree.NewCommand("cmdtree-demo",
		cmdtree.WithCommandHelp("demonstrates declarative command-line parsing"),
		cmdtree.WithExample("cmdtree-demo -vv build -j 4 --tags linux,arm64 api web"))

	if _, err := root.AddOption("", "-v, --verbose", coerce.Count(), cmdtree.WithHelp("increase verbosity, may be repeated")); err != nil {
		return nil, err
	}
	if _, err := root.AddOption("define", "-D <key=value>", coerce.KeyValue(), cmdtree.WithHelp("define a variable")); err != nil {
		return nil, err
	}
	root.Set(cmdtree.WithCallback(func(_ *cmdtree.Command, options *cmdtree.Options, _ *cmdtree.Operands) error {
		if options.Has("verbose") {
			fmt.Fprintf(out, "verbosity: %s\n", options.String("verbose"))
		}
		if defines, ok := options.Get("define"); ok {
			fmt.Fprintf(out, "defines: %v\n", defines)
		}
		return nil
	}))

	if err := addBuild(root, out); err != nil {
		return nil, err
	}
	if err := addRelease(root, out); err != nil {
		return nil, err
	}
	if err := addCopy(root, out); err != nil {
		return nil, err
	}

	return root, nil
}

func addBuild(root *cmdtree.Command, out io.Writer) error {
	build, err := root.AddCommand("build",
		cmdtree.WithCommandHelp("build one or more targets"),
		cmdtree.WithCallback(func(_ *cmdtree.Command, options *cmdtree.Options, operands *cmdtree.Operands) error {
			fmt.Fprintf(out, "building %s into %v with %v jobs\n",
				strings.Join(operands.Strings("targets"), ", "), valueOr(options, "output", "dist"), valueOr(options, "jobs", 1))
			if tags, ok := options.Get("tags"); ok {
				fmt.Fprintf(out, "tags: %v\n", tags)
			}
			return nil
		}))
	if err != nil {
		return err
	}

	if _, err = build.AddOption("", "-o, --output <dir>", nil, cmdtree.WithHelp("output directory"), cmdtree.WithDefault("dist")); err != nil {
		return err
	}
	if _, err = build.AddOption("", "--tags <list>", coerce.Split(), cmdtree.WithHelp("comma separated build tags")); err != nil {
		return err
	}
	if _, err = build.AddOption("", "-j, --jobs <n>", coerce.Int(),
		cmdtree.WithHelp("parallel jobs"), cmdtree.WithDefault(1), cmdtree.WithValidators(validation.IntRange(1, 64))); err != nil {
		return err
	}
	_, err = build.AddOperand("targets", "+", cmdtree.WithOperandHelp("targets to build"))

	return err
}

func valueOr(options *cmdtree.Options, name string, fallback any) any {
	if v, ok := options.Get(name); ok {
		return v
	}

	return fallback
}

func addRelease(root *cmdtree.Command, out io.Writer) error {
	release, err := root.AddCommand("release",
		cmdtree.WithCommandHelp("cut a release"),
		cmdtree.WithCallback(func(_ *cmdtree.Command, options *cmdtree.Options, _ *cmdtree.Operands) error {
			for _, name := range options.Names() {
				fmt.Fprintf(out, "%s: %s\n", name, options.String(name))
			}
			return nil
		}))
	if err != nil {
		return err
	}

	constraint, err := validation.SemverConstraint(">= 0.1.0")
	if err != nil {
		return err
	}
	if _, err = release.AddOption("", "-t, --tag <semver>", coerce.Version(),
		cmdtree.SetRequired(true), cmdtree.WithHelp("release version"), cmdtree.WithValidators(constraint)); err != nil {
		return err
	}
	if _, err = release.AddOption("", "--date <when>", coerce.Date(), cmdtree.WithHelp("release date")); err != nil {
		return err
	}
	if _, err = release.AddOption("", "--id <uuid>", coerce.UUID(), cmdtree.WithHelp("build identifier")); err != nil {
		return err
	}
	_, err = release.AddOption("", "--pages <ranges>", coerce.Range(), cmdtree.WithHelp("changelog pages, e.g. 1-3,7"))

	return err
}

func addCopy(root *cmdtree.Command, out io.Writer) error {
	cp, err := root.AddCommand("copy",
		cmdtree.WithCommandHelp("copy files into a destination"),
		cmdtree.WithCallback(func(_ *cmdtree.Command, _ *cmdtree.Options, operands *cmdtree.Operands) error {
			fmt.Fprintf(out, "copy %s -> %v\n", strings.Join(operands.Strings("sources"), " "), operands.First("destination"))
			return nil
		}))
	if err != nil {
		return err
	}

	if _, err = cp.AddOperand("sources", "+", cmdtree.WithOperandHelp("files to copy"),
		cmdtree.WithOperandValidators(validation.FileExists())); err != nil {
		return err
	}
	_, err = cp.AddOperand("destination", "1", cmdtree.WithOperandHelp("target directory"))

	return err
}
