package main

import (
	"context"
	"fmt"
	"os"

	"github.com/brain-hol/notes/internal/site"
)

func runBuild(args []string) error {
	fs, c := newFlagSet("build")
	if err := parse(fs, c, args); err != nil {
		return err
	}
	cfg, err := site.LoadConfig(c.config)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	_, err = site.Build(context.Background(), cfg, cwd)
	return err
}
