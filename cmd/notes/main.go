// notes builds a notes website from a folder of markdown files. Top-level
// folders become categories in the nav bar; their contents become the
// category sidebar.
//
// Usage:
//
//	notes generate [-config notes.yaml]
//	notes tree
//	notes build
//	notes dev [-addr :5173]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}
	var ue usageError
	if errors.As(err, &ue) || errors.Is(err, flag.ErrHelp) {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "%v\n\n", err)
		}
		printUsage(os.Stderr)
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// usageError is returned for bad command lines.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func run(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return usageError{"missing command"}
	}
	switch args[0] {
	case "generate":
		return runGenerate(args[1:], stdout)
	case "tree":
		return runTree(args[1:], stdout)
	case "build":
		return runBuild(args[1:])
	case "dev":
		return runDev(args[1:], stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		return usageError{fmt.Sprintf("unknown command: %s", args[0])}
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notes <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  generate [-config path]          Print the generated nav and sidebar as JSON")
	fmt.Fprintln(w, "  tree     [-config path]          Print the sidebar as a tree")
	fmt.Fprintln(w, "  build    [-config path]          Render the site into out_dir")
	fmt.Fprintln(w, "  dev      [-config path] [-addr]  Build, serve and rebuild on markdown changes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "All commands accept -v for debug logging.")
}

// commonFlags are shared by every command.
type commonFlags struct {
	config  string
	verbose bool
}

func newFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c := &commonFlags{}
	fs.StringVar(&c.config, "config", "", "path to the site config (default: ./notes.yaml if present)")
	fs.BoolVar(&c.verbose, "v", false, "enable debug logging")
	return fs, c
}

func parse(fs *flag.FlagSet, c *commonFlags, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err.Error()}
	}
	if fs.NArg() > 0 {
		return usageError{fmt.Sprintf("%s: unexpected argument %q", fs.Name(), fs.Arg(0))}
	}
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
