package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/brain-hol/notes/internal/nav"
	"github.com/brain-hol/notes/internal/output"
	"github.com/brain-hol/notes/internal/site"
)

// load reads the config and runs one navigation pass from the working
// directory.
func load(configPath string) (site.Config, string, nav.Result, error) {
	cfg, err := site.LoadConfig(configPath)
	if err != nil {
		return site.Config{}, "", nav.Result{}, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return site.Config{}, "", nav.Result{}, fmt.Errorf("get working directory: %w", err)
	}
	res, err := site.Generate(cfg, cwd)
	if err != nil {
		return site.Config{}, "", nav.Result{}, err
	}
	return cfg, cwd, res, nil
}

func runGenerate(args []string, stdout io.Writer) error {
	fs, c := newFlagSet("generate")
	if err := parse(fs, c, args); err != nil {
		return err
	}
	_, _, res, err := load(c.config)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func runTree(args []string, stdout io.Writer) error {
	fs, c := newFlagSet("tree")
	if err := parse(fs, c, args); err != nil {
		return err
	}
	cfg, _, res, err := load(c.config)
	if err != nil {
		return err
	}
	color := false
	if f, ok := stdout.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	_, err = io.WriteString(stdout, output.Tree(cfg.Title, res, color))
	return err
}
